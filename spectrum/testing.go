// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import "math"

// SyntheticStep builds a smooth, monotonically-rising step-like mu(E)
// around e0, the same shape used across the package tests, mirroring
// gofem's fem/testing.go convention of centralizing synthetic fixtures one
// package's tests can all draw from.
func SyntheticStep(e0 float64, n int) (energy, mu []float64) {
	energy = make([]float64, n)
	mu = make([]float64, n)
	for i := range energy {
		e := e0 - 100 + float64(i)*1.0
		energy[i] = e
		pre := 0.2 + 0.0001*(e-e0)
		post := 1.2 + 0.0005*(e-e0) - 0.0000005*(e-e0)*(e-e0)
		edgeFrac := 1.0 / (1.0 + math.Exp(-(e-e0)/2.0))
		mu[i] = pre + edgeFrac*(post-pre)
	}
	return
}

// SyntheticGroup builds a Group of n independent synthetic records, each
// with a distinct e0 so batch-stage output can be checked per-record.
func SyntheticGroup(n int) *Group {
	g := NewGroup()
	for i := 0; i < n; i++ {
		e0 := 8000 + float64(i)*50
		energy, mu := SyntheticStep(e0, 300)
		s, err := New(recordName(i), energy, mu)
		if err != nil {
			continue
		}
		g.Add(s)
	}
	return g
}

func recordName(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	return "spectrum-" + string(letters[i%len(letters)]) + string(rune('0'+i/len(letters)))
}
