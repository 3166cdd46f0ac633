// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fourier

import (
	"math"

	"gonum.org/v1/gonum/fourier"

	"github.com/cpmech/goxafs/config"
	"github.com/cpmech/goxafs/window"
	"github.com/cpmech/goxafs/xaserr"
)

// InverseResult holds an inverse transform's outputs: magnitude, real, and
// imaginary parts of chi(q) on a q-space grid that mirrors the original
// k-grid spacing.
type InverseResult struct {
	Q    []float64
	Chi  []complex128
	Mag  []float64
	Real []float64
	Imag []float64
}

// Inverse transforms chi(R) (as produced by Forward, resampled onto a
// uniform R grid by the caller) back into chi(q), applying the configured
// R-window before a zero-padded inverse FFT (spec.md §4.5/§6: inverse scale
// pi/(k_step*sqrt(pi))).
func Inverse(r []float64, chiR []complex128, kStep float64, opts config.XftrData) (InverseResult, error) {
	n := len(r)
	if n != len(chiR) {
		return InverseResult{}, &xaserr.DataError{Kind: xaserr.LengthMismatch, Have: len(chiR), Want: n}
	}
	if n < 2 {
		return InverseResult{}, &xaserr.FFTError{Kind: xaserr.InsufficientPoints, Have: n, Want: 2}
	}
	if kStep <= 0 {
		return InverseResult{}, &xaserr.FFTError{Kind: xaserr.InterpolationFailed, Msg: "k_step must be positive"}
	}

	rMin, rMax := opts.RMin, opts.RMax
	if rMax <= rMin {
		rMin, rMax = r[0], r[n-1]
	}
	win, err := window.Eval(opts.Window, r, window.Params{
		XMin: rMin, XMax: rMax, Dx1: opts.Dr, Dx2: opts.Dr,
	})
	if err != nil {
		return InverseResult{}, &xaserr.FFTError{Kind: xaserr.WindowCalculationFailed, Window: opts.Window, Msg: err.Error()}
	}

	nfft := opts.NFFT
	if nfft < 2 {
		nfft = 2048
	}
	if n > nfft/2+1 {
		return InverseResult{}, &xaserr.FFTError{Kind: xaserr.IFFTSizeMismatch, Have: n, Want: nfft/2 + 1}
	}

	padded := make([]complex128, nfft/2+1)
	for i := 0; i < n; i++ {
		padded[i] = chiR[i] * complex(win[i], 0)
	}

	fft := fourier.NewFFT(nfft)
	seq := fft.Sequence(nil, padded)

	scale := math.Pi / (kStep * math.Sqrt(math.Pi))
	qStep := math.Pi / (float64(nfft) * (r[1] - r[0]))

	half := nfft / 2
	out := InverseResult{
		Q:    make([]float64, half),
		Chi:  make([]complex128, half),
		Mag:  make([]float64, half),
		Real: make([]float64, half),
		Imag: make([]float64, half),
	}
	for i := 0; i < half; i++ {
		v := complex(seq[i]*scale, 0)
		out.Q[i] = float64(i) * qStep
		out.Chi[i] = v
		out.Real[i] = real(v)
		out.Imag[i] = imag(v)
		out.Mag[i] = math.Hypot(real(v), imag(v))
	}
	return out, nil
}
