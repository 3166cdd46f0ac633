// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the JSON-tagged option structs recognized by each
// pipeline stage, following gofem/inp's SetDefault/PostProcess convention:
// every struct assigns its own defaults in one place, and fields whose
// default depends on another field are filled in afterwards.
package config

import (
	"encoding/json"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goxafs/xaserr"
)

// Data aggregates the recognized options for every stage of one pipeline
// run, the JSON shape a *.xas config file is expected to have.
type Data struct {
	Normalize NormalizeData `json:"normalize"`
	Autobk    AutobkData    `json:"autobk"`
	Xftf      XftfData      `json:"xftf"`
	Xftr      XftrData      `json:"xftr"`
	Workers   int           `json:"workers"` // batch worker count; 0 means GOMAXPROCS
}

// SetDefault assigns every stage's conventional defaults.
func (d *Data) SetDefault() {
	d.Normalize.SetDefault()
	d.Autobk.SetDefault()
	d.Xftf.SetDefault()
	d.Xftr.SetDefault()
	d.Workers = 0
}

// PostProcess fills in cross-field defaults for every stage.
func (d *Data) PostProcess() {
	d.Autobk.PostProcess()
	d.Xftf.PostProcess()
}

// Load reads a JSON config file, starting from SetDefault so a partial file
// only overrides the fields it mentions, then calls PostProcess.
func Load(path string) (Data, error) {
	var d Data
	d.SetDefault()

	b, err := io.ReadFile(path)
	if err != nil {
		return Data{}, &xaserr.DataError{Kind: xaserr.MissingData, Msg: "cannot read config file " + path + ": " + err.Error()}
	}
	if err := json.Unmarshal(b, &d); err != nil {
		return Data{}, &xaserr.DataError{Kind: xaserr.MissingData, Msg: "cannot parse config file " + path + ": " + err.Error()}
	}

	d.PostProcess()
	return d, nil
}
