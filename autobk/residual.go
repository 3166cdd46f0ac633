// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autobk

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// linearSystem is the precomputed, coefficient-independent half of the
// AUTOBK residual. Because the background is a linear combination of fixed
// B-spline basis functions, chiTrial = chiRaw - background(coefs) is affine
// in coefs, and so is its windowed Fourier transform: residual(coefs) =
// r0 + jac*coefs, with jac (built from the negated basis) constant for the
// whole run. Building it once
// here (rather than re-differentiating every LM iteration) is the
// "precomputed Jacobian" invariant the rest of the package relies on.
type linearSystem struct {
	r0  la.Vector  // residual at coefs = 0, i.e. the transform of chiRaw alone
	jac *la.Matrix // residualLen() x nc, d(residual)/d(coefs), constant
}

// buildLinearSystem computes r0 and jac once per AUTOBK run.
func (p *problem) buildLinearSystem() *linearSystem {
	n := p.residualLen()
	jac := la.NewMatrix(n, p.nc)
	col := make([]float64, len(p.kOut))
	for j := 0; j < p.nc; j++ {
		for i := range col {
			col[i] = p.weight(i) * p.basis.Get(i, j)
		}
		row := p.transformColumn(col, j, true)
		for r := 0; r < n; r++ {
			jac.Set(r, j, row[r])
		}
	}

	for i := range col {
		col[i] = p.weight(i) * p.chiRaw[i]
	}
	r0 := la.Vector(p.transformColumn(col, -1, false))

	return &linearSystem{r0: r0, jac: jac}
}

// transformColumn FFTs a weighted k-space column (zero-padded to nfft),
// keeps the first iRbkg complex bins scaled by the forward normalization
// (spec.md §6), and appends the boundary clamp rows. jacobianColumn selects
// whether the clamp rows use column basisCol of p.basis (a Jacobian column)
// or p.chiRaw (r0, where basisCol is unused).
func (p *problem) transformColumn(weighted []float64, basisCol int, jacobianColumn bool) []float64 {
	padded := make([]float64, p.nfft)
	copy(padded, weighted)
	coeffs := p.fft.Coefficients(nil, padded)

	scale := p.kStep / math.Sqrt(math.Pi)
	out := make([]float64, p.residualLen())
	for m := 0; m < p.iRbkg; m++ {
		out[2*m] = real(coeffs[m]) * scale
		out[2*m+1] = imag(coeffs[m]) * scale
	}

	base := 2 * p.iRbkg
	for c := 0; c < p.nClamp; c++ {
		lo := c
		hi := len(p.kOut) - 1 - c
		if jacobianColumn {
			out[base+2*c] = p.clampLo * p.basis.Get(lo, basisCol)
			out[base+2*c+1] = p.clampHi * p.basis.Get(hi, basisCol)
		} else {
			out[base+2*c] = p.clampLo * p.chiRaw[lo]
			out[base+2*c+1] = p.clampHi * p.chiRaw[hi]
		}
	}
	return out
}

// residual evaluates r0 + jac*coefs.
func (ls *linearSystem) residual(coefs la.Vector) la.Vector {
	n := len(ls.r0)
	r := make(la.Vector, n)
	copy(r, ls.r0)
	nc := len(coefs)
	for row := 0; row < n; row++ {
		sum := 0.0
		for j := 0; j < nc; j++ {
			sum += ls.jac.Get(row, j) * coefs[j]
		}
		r[row] += sum
	}
	return r
}

// sumSquares is the scalar objective ||r||^2.
func sumSquares(r la.Vector) float64 {
	s := 0.0
	for _, v := range r {
		s += v * v
	}
	return s
}
