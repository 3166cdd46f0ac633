// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the recognized options for each pipeline stage, in
// the style of gofem/inp: plain JSON-tagged structs with a SetDefault()
// method and, where a field's default depends on another field, a
// PostProcess() method. Apart from Load's JSON decode of a whole Data
// value, this package only defines the shape and the defaults.
package config

import "math"

// NormalizeData holds the options recognized by the normalize stage
// (spec.md §4.3).
type NormalizeData struct {
	Pre1      float64 `json:"pre1"`      // pre-edge fit range start, relative to e0 (eV)
	Pre2      float64 `json:"pre2"`      // pre-edge fit range end, relative to e0 (eV)
	Norm1     float64 `json:"norm1"`     // post-edge fit range start, relative to e0 (eV)
	Norm2     float64 `json:"norm2"`     // post-edge fit range end, relative to e0 (eV)
	Nvict     float64 `json:"nvict"`     // k-weight applied to the post-edge polynomial fit
	NormOrder int     `json:"normorder"` // post-edge polynomial order (2 or 3 typical)
}

// SetDefault assigns the conventional Athena/Larch-style defaults.
func (o *NormalizeData) SetDefault() {
	o.Pre1 = math.Inf(-1)
	o.Pre2 = -30
	o.Norm1 = 150
	o.Norm2 = math.Inf(1)
	o.Nvict = 0
	o.NormOrder = 3
}
