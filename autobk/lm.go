// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autobk

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/goxafs/mathutil"
)

// lmStatus is the terminal state of a Levenberg-Marquardt run.
type lmStatus int

const (
	Converged lmStatus = iota
	MaxIter
	NumericFailure
)

func (s lmStatus) String() string {
	switch s {
	case Converged:
		return "Converged"
	case MaxIter:
		return "MaxIter"
	case NumericFailure:
		return "NumericFailure"
	}
	return "Unknown"
}

// lmResult is the outcome of one Levenberg-Marquardt run.
type lmResult struct {
	Coefs      la.Vector
	Status     lmStatus
	Iterations int
	FinalCost  float64
}

const (
	lmDampingInit = 1e-3
	lmDampingUp   = 10.0
	lmDampingDown = 0.1
)

// runLM solves the (here affine, in general nonlinear) least-squares
// problem defined by ls, starting from seed, with the damping schedule and
// convergence criteria of spec.md §4.4: stop on a small relative step
// (tolP), a small relative reduction of the cost (tolR), or maxIter.
func runLM(ls *linearSystem, seed la.Vector, maxIter int, tolP, tolR float64) lmResult {
	nc := len(seed)
	coefs := make(la.Vector, nc)
	copy(coefs, seed)

	r := ls.residual(coefs)
	cost := sumSquares(r)
	lambda := lmDampingInit

	jtj, jtr := normalEqs(ls.jac, r)

	for iter := 0; iter < maxIter; iter++ {
		damped := la.NewMatrix(nc, nc)
		for i := 0; i < nc; i++ {
			for j := 0; j < nc; j++ {
				damped.Set(i, j, jtj.Get(i, j))
			}
			damped.Set(i, i, damped.Get(i, i)*(1+lambda))
		}

		delta, ok := mathutil.SolveLinear(damped, jtr)
		if !ok {
			return lmResult{Coefs: coefs, Status: NumericFailure, Iterations: iter, FinalCost: cost}
		}

		trial := make(la.Vector, nc)
		for i := range trial {
			trial[i] = coefs[i] - delta[i]
		}
		trialR := ls.residual(trial)
		trialCost := sumSquares(trialR)

		stepNorm, coefNorm := 0.0, 0.0
		for i := range delta {
			stepNorm += delta[i] * delta[i]
			coefNorm += coefs[i] * coefs[i]
		}
		stepNorm = math.Sqrt(stepNorm)
		coefNorm = math.Sqrt(coefNorm)

		if trialCost < cost {
			relCostDrop := 0.0
			if cost > 0 {
				relCostDrop = (cost - trialCost) / cost
			}
			coefs = trial
			r = trialR
			cost = trialCost
			lambda *= lmDampingDown
			jtj, jtr = normalEqs(ls.jac, r)

			converged := relCostDrop < tolR
			if coefNorm > 0 {
				converged = converged || stepNorm/coefNorm < tolP
			}
			if converged {
				return lmResult{Coefs: coefs, Status: Converged, Iterations: iter + 1, FinalCost: cost}
			}
		} else {
			lambda *= lmDampingUp
			if lambda > 1e12 {
				return lmResult{Coefs: coefs, Status: NumericFailure, Iterations: iter, FinalCost: cost}
			}
		}
	}
	return lmResult{Coefs: coefs, Status: MaxIter, Iterations: maxIter, FinalCost: cost}
}

// normalEqs builds jac^T jac and jac^T r for the current residual.
func normalEqs(jac *la.Matrix, r la.Vector) (*la.Matrix, la.Vector) {
	m, n := jac.M, jac.N
	jtj := la.NewMatrix(n, n)
	jtr := la.NewVector(n)
	for a := 0; a < n; a++ {
		for b := a; b < n; b++ {
			sum := 0.0
			for i := 0; i < m; i++ {
				sum += jac.Get(i, a) * jac.Get(i, b)
			}
			jtj.Set(a, b, sum)
			jtj.Set(b, a, sum)
		}
		sum := 0.0
		for i := 0; i < m; i++ {
			sum += jac.Get(i, a) * r[i]
		}
		jtr[a] = sum
	}
	return jtj, jtr
}
