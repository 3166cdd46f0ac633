// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathutil

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/goxafs/xaserr"
)

var errSingular = &xaserr.MathError{Kind: xaserr.PolyfitFailed, Msg: "singular normal equations"}

// SolveLinear solves a x = b for a square a via Gaussian elimination with
// partial pivoting, writing into a freshly allocated result. It does not
// mutate a or b; it operates on local copies so repeated calls (e.g. one
// per Levenberg-Marquardt iteration) never alias caller-owned storage.
//
// gosl/la targets sparse (UMFPACK/MUMPS) and BLAS/LAPACK-backed dense
// solves for the problem sizes gofem's global stiffness matrices need; the
// small dense systems here (polynomial order, or the number of B-spline
// coefficients) are cheaper and simpler to solve directly than to round-trip
// through a LAPACK binding, so this one linear-algebra kernel is hand-
// written while la.Matrix/la.Vector remain the storage types threaded
// through the rest of the package.
func SolveLinear(a *la.Matrix, b la.Vector) (la.Vector, bool) {
	n := len(b)
	m := la.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, a.Get(i, j))
		}
	}
	x := make(la.Vector, n)
	copy(x, b)

	for col := 0; col < n; col++ {
		piv := col
		best := math.Abs(m.Get(col, col))
		for r := col + 1; r < n; r++ {
			if v := math.Abs(m.Get(r, col)); v > best {
				piv, best = r, v
			}
		}
		if best < 1e-14 {
			return nil, false
		}
		if piv != col {
			for j := 0; j < n; j++ {
				tmp := m.Get(col, j)
				m.Set(col, j, m.Get(piv, j))
				m.Set(piv, j, tmp)
			}
			x[col], x[piv] = x[piv], x[col]
		}
		pivVal := m.Get(col, col)
		for r := col + 1; r < n; r++ {
			factor := m.Get(r, col) / pivVal
			if factor == 0 {
				continue
			}
			for j := col; j < n; j++ {
				m.Set(r, j, m.Get(r, j)-factor*m.Get(col, j))
			}
			x[r] -= factor * x[col]
		}
	}

	for row := n - 1; row >= 0; row-- {
		sum := x[row]
		for j := row + 1; j < n; j++ {
			sum -= m.Get(row, j) * x[j]
		}
		x[row] = sum / m.Get(row, row)
	}
	return x, true
}

// NormalEquations builds AᵀA and Aᵀb for a least-squares fit A c ≈ b.
func NormalEquations(A *la.Matrix, b []float64) (ata *la.Matrix, atb la.Vector) {
	m, n := A.M, A.N
	ata = la.NewMatrix(n, n)
	atb = la.NewVector(n)
	for j := 0; j < n; j++ {
		for k := j; k < n; k++ {
			sum := 0.0
			for i := 0; i < m; i++ {
				sum += A.Get(i, j) * A.Get(i, k)
			}
			ata.Set(j, k, sum)
			ata.Set(k, j, sum)
		}
		sum := 0.0
		for i := 0; i < m; i++ {
			sum += A.Get(i, j) * b[i]
		}
		atb[j] = sum
	}
	return
}

// SolveLeastSquares solves A c ≈ b in the least-squares sense via the
// normal equations.
func SolveLeastSquares(A *la.Matrix, b []float64) (la.Vector, error) {
	ata, atb := NormalEquations(A, b)
	x, ok := SolveLinear(ata, atb)
	if !ok {
		return nil, errSingular
	}
	return x, nil
}
