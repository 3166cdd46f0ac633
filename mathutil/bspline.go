// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathutil

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/goxafs/xaserr"
)

// SplineDegree is the cubic B-spline degree AUTOBK uses throughout (order 3
// in spec.md's terminology: a degree-3 basis, order 4 in de Boor's counting,
// C2-continuous across simple interior knots).
const SplineDegree = 3

// Knots builds a clamped (open, p+1-repeated at each end) cubic B-spline
// knot vector over [kMin, kMax] with nInterior strictly-increasing interior
// knots placed uniformly. The resulting vector has length
// nInterior + 2*(SplineDegree+1), and supports exactly
// nInterior+SplineDegree+1 basis functions (NC coefficients).
func Knots(nInterior int, kMin, kMax float64) ([]float64, error) {
	if nInterior < 0 || kMax <= kMin {
		return nil, &xaserr.MathError{Kind: xaserr.SplineEvalFailed, Msg: "invalid knot construction range"}
	}
	p := SplineDegree
	t := make([]float64, 0, nInterior+2*(p+1))
	for i := 0; i <= p; i++ {
		t = append(t, kMin)
	}
	if nInterior > 0 {
		step := (kMax - kMin) / float64(nInterior+1)
		for i := 1; i <= nInterior; i++ {
			t = append(t, kMin+float64(i)*step)
		}
	}
	for i := 0; i <= p; i++ {
		t = append(t, kMax)
	}
	return t, nil
}

// NumCoefs returns how many B-spline coefficients a knot vector of the
// given length supports for the package's fixed cubic degree.
func NumCoefs(knotLen int) int {
	return knotLen - SplineDegree - 1
}

// findSpan returns the knot span index i such that t[i] <= x < t[i+1]
// (clamped so that x == t[last non-repeated] still resolves to the last
// valid span), via the standard NURBS-book search.
func findSpan(t []float64, nc int, x float64) int {
	p := SplineDegree
	if x >= t[nc] {
		return nc - 1
	}
	if x <= t[p] {
		return p
	}
	lo, hi := p, nc
	mid := (lo + hi) / 2
	for x < t[mid] || x >= t[mid+1] {
		if x < t[mid] {
			hi = mid
		} else {
			lo = mid
		}
		mid = (lo + hi) / 2
	}
	return mid
}

// basisFuns evaluates the SplineDegree+1 non-zero basis functions at x
// (the standard triangular-table algorithm from de Boor's recursion). The
// returned values belong to basis functions span-SplineDegree..span.
func basisFuns(t []float64, x float64, span int) []float64 {
	p := SplineDegree
	N := make([]float64, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	N[0] = 1.0
	for j := 1; j <= p; j++ {
		left[j] = x - t[span+1-j]
		right[j] = t[span+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			denom := right[r+1] + left[j-r]
			var temp float64
			if denom != 0 {
				temp = N[r] / denom
			}
			N[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		N[j] = saved
	}
	return N
}

// BasisJacobian evaluates the B-spline basis matrix on xs: column i holds
// B_i(xs[0..M)). Because this depends only on the knot vector, the fixed
// cubic degree, and xs, it can be computed once per AUTOBK run and reused
// read-only for every LM iteration (spec.md's precomputed_basis invariant).
func BasisJacobian(knots []float64, xs []float64) *la.Matrix {
	nc := NumCoefs(len(knots))
	M := len(xs)
	basis := la.NewMatrix(M, nc)
	for row, x := range xs {
		span := findSpan(knots, nc, x)
		N := basisFuns(knots, x, span)
		for j, v := range N {
			basis.Set(row, span-SplineDegree+j, v)
		}
	}
	return basis
}

// EvalSpline evaluates sum_i coefs[i]*B_i(xs) directly from the basis
// matrix. Used only outside AUTOBK's hot LM loop (seeding, diagnostics);
// the residual/Jacobian assembly multiplies the precomputed basis matrix
// itself rather than re-evaluating the spline pointwise.
func EvalSpline(basis *la.Matrix, coefs la.Vector) []float64 {
	m, n := basis.M, basis.N
	out := make([]float64, m)
	for i := 0; i < m; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += basis.Get(i, j) * coefs[j]
		}
		out[i] = sum
	}
	return out
}
