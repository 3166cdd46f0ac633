// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package autobk implements the AUTOBK background-removal engine: a
// Levenberg-Marquardt fit of a B-spline background whose low-R windowed
// Fourier content is forced toward zero (spec.md §4.4). This is the
// hardest part of the pipeline; every term in the residual and Jacobian
// must be differentiable with respect to the spline coefficients, and the
// basis matrix that makes that differentiation cheap is computed once per
// run and never touched again until the run is done.
package autobk

import (
	"math"

	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/fourier"

	"github.com/cpmech/goxafs/config"
	"github.com/cpmech/goxafs/mathutil"
	"github.com/cpmech/goxafs/window"
	"github.com/cpmech/goxafs/xaserr"
)

// sqrtConst is 2*m_e/hbar^2 in eV/Å^-2 units, i.e. k = sqrt(sqrtConst*(E-E0))
// (spec.md §6 "Numeric conventions").
const sqrtConst = 0.2624682843

// problem is the internal AUTOBK problem state (spec.md §3 "AUTOBK problem
// state"): constructed once per spectrum just before the LM loop, and
// discarded (nothing retained) once the loop returns.
type problem struct {
	kOut  []float64 // dense k-grid the spline is evaluated on, fixed for the run
	kStep float64
	ftwin []float64 // k-window used inside the residual, fixed for the run

	chiRaw []float64 // chi(E) resampled onto kOut, fixed for the run

	knots   []float64
	nc      int
	basis   *la.Matrix // M x NC basis matrix, NEGATED: column i is -B_i(kOut)
	kWeight float64    // exponent of the k_out^kWeight weight applied before the FT

	nClamp           int
	clampLo, clampHi float64

	iRbkg int // number of complex FT bins kept in the residual/Jacobian
	nfft  int

	fft *fourier.FFT // instance-local plan, rebuilt fresh per Run call
}

// newProblem builds the AUTOBK problem state from normalized chi(E) and the
// recognized autobk options, validating R_bkg and the derived knot vector
// along the way.
func newProblem(energy, chiE []float64, e0 float64, opts config.AutobkData) (*problem, error) {
	if opts.Rbkg <= 0 {
		return nil, &xaserr.BackgroundError{Kind: xaserr.InvalidRbkg, Rbkg: opts.Rbkg}
	}

	kMin, kMax := opts.KMin, opts.KMax
	if kMax <= kMin {
		eMax := energy[len(energy)-1]
		if eMax > e0 {
			kMax = math.Sqrt(sqrtConst * (eMax - e0))
		} else {
			kMax = kMin + 1
		}
	}

	nPts := int(math.Round((kMax-kMin)/opts.KStep)) + 1
	if nPts < 2 {
		return nil, &xaserr.BackgroundError{Kind: xaserr.SplineKnotsFailed, KMin: kMin, KMax: kMax}
	}
	kOut := make([]float64, nPts)
	for i := range kOut {
		kOut[i] = kMin + float64(i)*opts.KStep
	}

	chiRaw := make([]float64, nPts)
	for i, k := range kOut {
		e := e0 + k*k/sqrtConst
		chiRaw[i] = mathutil.LinInterp(energy, chiE, e)
	}

	ftwin, err := window.Eval(opts.Window, kOut, window.Params{
		XMin: kMin, XMax: kMax, Dx1: opts.Dk, Dx2: opts.Dk2,
	})
	if err != nil {
		return nil, &xaserr.FFTError{Kind: xaserr.WindowCalculationFailed, Window: opts.Window, Msg: err.Error()}
	}

	nInterior := int(math.Round(2*opts.Rbkg*(kMax-kMin)/math.Pi + 1))
	if nInterior < 5 {
		nInterior = 5
	}
	knots, err := mathutil.Knots(nInterior, kMin, kMax)
	if err != nil {
		return nil, &xaserr.BackgroundError{Kind: xaserr.SplineKnotsFailed, KMin: kMin, KMax: kMax}
	}
	nc := mathutil.NumCoefs(len(knots))

	basisRaw := mathutil.BasisJacobian(knots, kOut)
	basis := la.NewMatrix(nPts, nc)
	for i := 0; i < nPts; i++ {
		for j := 0; j < nc; j++ {
			basis.Set(i, j, -basisRaw.Get(i, j))
		}
	}

	nfft := opts.NFFT
	if nfft < 2 {
		nfft = 2048
	}
	iRbkg := int(math.Round(opts.Rbkg * float64(nfft) * opts.KStep / math.Pi))
	if iRbkg < 1 {
		iRbkg = 1
	}
	if iRbkg > nfft/2+1 {
		iRbkg = nfft/2 + 1
	}

	p := &problem{
		kOut:    kOut,
		kStep:   opts.KStep,
		ftwin:   ftwin,
		chiRaw:  chiRaw,
		knots:   knots,
		nc:      nc,
		basis:   basis,
		kWeight: float64(opts.KWeight),
		nClamp:  opts.NClamp,
		clampLo: float64(opts.ClampLo),
		clampHi: float64(opts.ClampHi),
		iRbkg:   iRbkg,
		nfft:    nfft,
		fft:     fourier.NewFFT(nfft),
	}
	return p, nil
}

// seedCoefs produces the initial LM parameter vector: an ordinary least-
// squares fit of the (positive, i.e. un-negated) basis against chiRaw, so
// that the background starts as a smooth approximation of the raw signal
// (spec.md §9 Open Question 3).
func (p *problem) seedCoefs() (la.Vector, error) {
	posBasis := la.NewMatrix(len(p.kOut), p.nc)
	for i := 0; i < len(p.kOut); i++ {
		for j := 0; j < p.nc; j++ {
			posBasis.Set(i, j, -p.basis.Get(i, j))
		}
	}
	coefs, err := mathutil.SolveLeastSquares(posBasis, p.chiRaw)
	if err != nil {
		return nil, &xaserr.BackgroundError{Kind: xaserr.OptimizationFailed, Reason: "could not seed initial spline coefficients: " + err.Error()}
	}
	return coefs, nil
}

// background evaluates s(k_out) = sum_i coefs[i]*B_i(k_out) for the
// converged coefficients, used only to emit Result.Background on the k-grid,
// never inside the LM hot loop.
func (p *problem) background(coefs la.Vector) []float64 {
	s := make([]float64, len(p.kOut))
	for i := range s {
		sum := 0.0
		for j := 0; j < p.nc; j++ {
			sum -= p.basis.Get(i, j) * coefs[j]
		}
		s[i] = sum
	}
	return s
}

// weight returns ftwin[i] * kOut[i]^kWeight, used to shape both the
// residual's and the Jacobian's input before the forward FT.
func (p *problem) weight(i int) float64 {
	w := p.ftwin[i]
	if p.kWeight != 0 {
		w *= math.Pow(p.kOut[i], p.kWeight)
	}
	return w
}

// residualLen is the fixed length of the residual/Jacobian-row vector:
// 2*iRbkg complex-FT components (real+imag) plus 2*nClamp boundary clamps.
func (p *problem) residualLen() int {
	return 2*p.iRbkg + 2*p.nClamp
}
