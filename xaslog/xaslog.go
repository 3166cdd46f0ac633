// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xaslog is a thin, colored top-level logging shim, so the batch
// driver can report per-record progress and failure counts without any
// pipeline package depending on a concrete logging interface — the same
// role gofem's gosl/io.Pf* calls play in its own top-level run messages.
package xaslog

import "github.com/cpmech/gosl/io"

// Info prints an informational message in the default color.
func Info(msg string, args ...interface{}) {
	io.Pf(msg+"\n", args...)
}

// Ok prints a success message in green.
func Ok(msg string, args ...interface{}) {
	io.PfGreen(msg+"\n", args...)
}

// Warn prints a warning message in yellow.
func Warn(msg string, args ...interface{}) {
	io.PfYel(msg+"\n", args...)
}

// Fail prints a failure message in red.
func Fail(msg string, args ...interface{}) {
	io.PfRed(msg+"\n", args...)
}

// BatchSummary reports how many of n records in a batch stage failed,
// choosing Ok/Warn/Fail by severity.
func BatchSummary(stage string, n, failed int) {
	switch {
	case failed == 0:
		Ok("%s: %d/%d records ok", stage, n, n)
	case failed == n:
		Fail("%s: all %d records failed", stage, n)
	default:
		Warn("%s: %d/%d records failed", stage, failed, n)
	}
}
