// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

// AutobkData holds the options recognized by the AUTOBK background-removal
// stage (spec.md §4.4).
type AutobkData struct {
	Rbkg   float64 `json:"rbkg"`   // background/signal R-space split (Å), > 0
	KMin   float64 `json:"kmin"`   // k-grid lower bound (Å⁻¹)
	KMax   float64 `json:"kmax"`   // k-grid upper bound (Å⁻¹); 0 means "derive from data"
	KStep  float64 `json:"kstep"`  // k-grid spacing (Å⁻¹)
	KWeight int    `json:"kweight"` // integer exponent weighting χ(k) inside the FT residual
	NFFT   int     `json:"nfft"`   // FFT size for residual evaluation, power of two

	Window string  `json:"window"` // hanning, kaiser-bessel, parzen, welch, gaussian, sine
	Dk     float64 `json:"dk"`     // k-window rising taper width (Å⁻¹)
	Dk2    float64 `json:"dk2"`    // k-window falling taper width (Å⁻¹); defaults to Dk

	NClamp  int `json:"nclamp"`  // number of boundary points clamped at each k-endpoint
	ClampLo int `json:"clamplo"` // low-k clamp weight; small nonnegative integer, conventionally 0-5
	ClampHi int `json:"clamphi"` // high-k clamp weight; small nonnegative integer, conventionally 0-5

	MaxIter int     `json:"maxiter"` // max Levenberg-Marquardt iterations
	TolP    float64 `json:"tolp"`    // relative parameter-step convergence tolerance
	TolR    float64 `json:"tolr"`    // relative residual-reduction convergence tolerance
}

// SetDefault assigns the conventional AUTOBK defaults.
func (o *AutobkData) SetDefault() {
	o.Rbkg = 1.0
	o.KMin = 0
	o.KMax = 0 // derive from data in autobk.Run
	o.KStep = 0.05
	o.KWeight = 1
	o.NFFT = 2048

	o.Window = "hanning"
	o.Dk = 1.0
	o.Dk2 = 0 // PostProcess defaults this to Dk

	o.NClamp = 1
	o.ClampLo = 1
	o.ClampHi = 1

	o.MaxIter = 30
	o.TolP = 1e-6
	o.TolR = 1e-6
}

// PostProcess fills in defaults that depend on other fields, mirroring
// gofem's inp.SolverData.PostProcess convention.
func (o *AutobkData) PostProcess() {
	if o.Dk2 == 0 {
		o.Dk2 = o.Dk
	}
}
