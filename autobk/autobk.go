// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autobk

import (
	"github.com/cpmech/goxafs/config"
	"github.com/cpmech/goxafs/xaserr"
)

// Result is everything Run derives for one spectrum's AUTOBK background.
type Result struct {
	K          []float64 // dense k-grid the background was fit on
	Background []float64 // s(k) evaluated on K
	Chi        []float64 // chiRaw - Background, the background-subtracted signal
	Coefs      []float64 // converged B-spline coefficients
	Status     string
	Iterations int
	FinalCost  float64
}

// Run removes the slowly-varying background from normalized chi(E) via a
// Levenberg-Marquardt fit of a B-spline whose low-R windowed Fourier
// content is driven toward zero (spec.md §4.4). When the fit stops at
// MaxIter, Run returns the best-so-far Result together with a
// ConvergenceFailure error.
func Run(energy, chiE []float64, e0 float64, opts config.AutobkData) (Result, error) {
	p, err := newProblem(energy, chiE, e0, opts)
	if err != nil {
		return Result{}, err
	}

	seed, err := p.seedCoefs()
	if err != nil {
		return Result{}, err
	}

	ls := p.buildLinearSystem()
	res := runLM(ls, seed, opts.MaxIter, opts.TolP, opts.TolR)
	if res.Status == NumericFailure {
		return Result{}, &xaserr.BackgroundError{Kind: xaserr.OptimizationFailed, Reason: "Levenberg-Marquardt damping diverged"}
	}

	bkg := p.background(res.Coefs)
	chi := make([]float64, len(p.kOut))
	for i := range chi {
		chi[i] = p.chiRaw[i] - bkg[i]
	}

	out := Result{
		K:          p.kOut,
		Background: bkg,
		Chi:        chi,
		Coefs:      []float64(res.Coefs),
		Status:     res.Status.String(),
		Iterations: res.Iterations,
		FinalCost:  res.FinalCost,
	}
	if res.Status == MaxIter {
		return out, &xaserr.BackgroundError{Kind: xaserr.ConvergenceFailure, Iterations: res.Iterations}
	}
	return out, nil
}
