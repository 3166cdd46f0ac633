// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathutil

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/goxafs/xaserr"
)

// PolyFit fits an ordinary polynomial of the given order to (xs, ys) by
// least squares, returning the order+1 coefficients from lowest to highest
// power. weights, if non-nil, must have the same length as xs and ys and
// scales each residual's contribution to the normal equations (used by
// normalize's nvict k-weighting of the post-edge fit).
func PolyFit(xs, ys []float64, order int, weights []float64) ([]float64, error) {
	n := len(xs)
	if n != len(ys) {
		return nil, &xaserr.DataError{Kind: xaserr.LengthMismatch, Have: len(ys), Want: n}
	}
	ncoef := order + 1
	if n < ncoef {
		return nil, &xaserr.MathError{Kind: xaserr.PolyfitFailed, Msg: "fewer points than coefficients"}
	}

	A := la.NewMatrix(n, ncoef)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		xp := 1.0
		for j := 0; j < ncoef; j++ {
			A.Set(i, j, xp*w)
			xp *= xs[i]
		}
		b[i] = ys[i] * w
	}

	coefs, err := SolveLeastSquares(A, b)
	if err != nil {
		return nil, &xaserr.MathError{Kind: xaserr.PolyfitFailed, Msg: "singular normal equations"}
	}
	return coefs, nil
}

// PolyEval evaluates a polynomial with coefficients ordered lowest-to-
// highest power at x.
func PolyEval(coefs []float64, x float64) float64 {
	sum := 0.0
	xp := 1.0
	for _, c := range coefs {
		sum += c * xp
		xp *= x
	}
	return sum
}
