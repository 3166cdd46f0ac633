// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fourier implements the forward and inverse windowed Fourier
// transforms between k-space and R-space chi (spec.md §4.5), sharing the
// window registry and normalization conventions used inside the AUTOBK
// residual.
package fourier

import (
	"math"

	"gonum.org/v1/gonum/fourier"

	"github.com/cpmech/goxafs/config"
	"github.com/cpmech/goxafs/window"
	"github.com/cpmech/goxafs/xaserr"
)

// Result holds a forward transform's outputs: magnitude, real, and
// imaginary parts of chi(R) on R-space grid R.
type Result struct {
	R    []float64
	Chi  []complex128
	Mag  []float64
	Real []float64
	Imag []float64
}

// Forward transforms chi(k) sampled uniformly on k into chi(R), applying
// the configured k-window and k-weighting before a zero-padded real FFT
// (spec.md §4.5/§6: forward scale k_step/sqrt(pi)).
func Forward(k, chiK []float64, opts config.XftfData) (Result, error) {
	n := len(k)
	if n != len(chiK) {
		return Result{}, &xaserr.DataError{Kind: xaserr.LengthMismatch, Have: len(chiK), Want: n}
	}
	if n < 2 {
		return Result{}, &xaserr.FFTError{Kind: xaserr.InsufficientPoints, Have: n, Want: 2}
	}

	kStep := k[1] - k[0]
	kMin, kMax := opts.KMin, opts.KMax
	if kMax <= kMin {
		kMin, kMax = k[0], k[n-1]
	}
	win, err := window.Eval(opts.Window, k, window.Params{
		XMin: kMin, XMax: kMax, Dx1: opts.Dk, Dx2: opts.Dk2,
	})
	if err != nil {
		return Result{}, &xaserr.FFTError{Kind: xaserr.WindowCalculationFailed, Window: opts.Window, Msg: err.Error()}
	}

	nfft := opts.NFFT
	if nfft < 2 {
		nfft = 2048
	}
	padded := make([]float64, nfft)
	for i := 0; i < n; i++ {
		w := win[i]
		if opts.KWeight != 0 {
			w *= math.Pow(k[i], float64(opts.KWeight))
		}
		padded[i] = w * chiK[i]
	}

	fft := fourier.NewFFT(nfft)
	coeffs := fft.Coefficients(nil, padded)

	scale := kStep / math.Sqrt(math.Pi)
	rStep := math.Pi / (float64(nfft) * kStep)

	out := Result{
		R:    make([]float64, len(coeffs)),
		Chi:  make([]complex128, len(coeffs)),
		Mag:  make([]float64, len(coeffs)),
		Real: make([]float64, len(coeffs)),
		Imag: make([]float64, len(coeffs)),
	}
	for i, c := range coeffs {
		scaled := c * complex(scale, 0)
		out.R[i] = float64(i) * rStep
		out.Chi[i] = scaled
		out.Real[i] = real(scaled)
		out.Imag[i] = imag(scaled)
		out.Mag[i] = math.Hypot(real(scaled), imag(scaled))
	}
	return out, nil
}
