// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package normalize fits pre-edge and post-edge polynomials to a
// canonicalized (energy, mu, e0) spectrum and derives the edge step and the
// normalized/flattened curves (spec.md §4.3).
package normalize

import (
	"math"

	"github.com/cpmech/goxafs/mathutil"
	"github.com/cpmech/goxafs/xaserr"

	"github.com/cpmech/goxafs/config"
)

const preEdgeOrder = 1

// Result holds everything normalize.Run derives for one spectrum.
type Result struct {
	PreEdge  []float64 // pre-edge polynomial evaluated on energy
	PostEdge []float64 // post-edge polynomial evaluated on energy
	Norm     []float64 // (mu - preEdge) / edgeStep
	Flat     []float64 // norm with the post-edge curvature subtracted above e0
	EdgeStep float64
	ChiE     []float64 // normalized fine-structure signal, ready for AUTOBK
}

// Run fits pre/post-edge polynomials to (energy, mu) around e0 and derives
// the edge step and normalized curves, following spec.md §4.3.
func Run(energy, mu []float64, e0 float64, opts config.NormalizeData) (Result, error) {
	n := len(energy)
	if n != len(mu) {
		return Result{}, &xaserr.DataError{Kind: xaserr.LengthMismatch, Have: len(mu), Want: n}
	}
	if e0 <= energy[0] || e0 >= energy[n-1] {
		return Result{}, &xaserr.NormalizationError{Kind: xaserr.E0OutOfRange, E0: e0}
	}

	preIdx := selectRange(energy, e0+opts.Pre1, e0+opts.Pre2)
	if len(preIdx) < preEdgeOrder+1 {
		return Result{}, &xaserr.NormalizationError{Kind: xaserr.PreEdgeFitFailed, Msg: "too few pre-edge points"}
	}
	preCoefs, err := mathutil.PolyFit(subset(energy, preIdx), subset(mu, preIdx), preEdgeOrder, nil)
	if err != nil {
		return Result{}, &xaserr.NormalizationError{Kind: xaserr.PreEdgeFitFailed, Msg: err.Error()}
	}

	postIdx := selectRange(energy, e0+opts.Norm1, e0+opts.Norm2)
	if len(postIdx) < opts.NormOrder+1 {
		return Result{}, &xaserr.NormalizationError{Kind: xaserr.PostEdgeFitFailed, Msg: "too few post-edge points"}
	}
	var weights []float64
	if opts.Nvict != 0 {
		weights = make([]float64, len(postIdx))
		for i, idx := range postIdx {
			// k = sqrt(2*m_e/hbar^2 * (E-E0)), in Å^-1 for E in eV
			k := math.Sqrt(0.2624682843 * (energy[idx] - e0))
			if k <= 0 {
				k = 1e-9
			}
			weights[i] = math.Pow(k, opts.Nvict)
		}
	}
	postCoefs, err := mathutil.PolyFit(subset(energy, postIdx), subset(mu, postIdx), opts.NormOrder, weights)
	if err != nil {
		return Result{}, &xaserr.NormalizationError{Kind: xaserr.PostEdgeFitFailed, Msg: err.Error()}
	}

	preEdge := make([]float64, n)
	postEdge := make([]float64, n)
	for i, e := range energy {
		preEdge[i] = mathutil.PolyEval(preCoefs, e)
		postEdge[i] = mathutil.PolyEval(postCoefs, e)
	}

	edgeStep := mathutil.PolyEval(postCoefs, e0) - mathutil.PolyEval(preCoefs, e0)
	if edgeStep <= 0 {
		return Result{}, &xaserr.NormalizationError{Kind: xaserr.EdgeStepTooSmall, EdgeStep: edgeStep}
	}

	norm := make([]float64, n)
	flat := make([]float64, n)
	postAtE0 := mathutil.PolyEval(postCoefs, e0)
	for i, e := range energy {
		norm[i] = (mu[i] - preEdge[i]) / edgeStep
		flat[i] = norm[i]
		if e > e0 {
			flat[i] -= (postEdge[i] - postAtE0) / edgeStep
		}
	}

	chiE := make([]float64, n)
	for i := range energy {
		chiE[i] = (mu[i] - preEdge[i]) / edgeStep
	}

	return Result{
		PreEdge:  preEdge,
		PostEdge: postEdge,
		Norm:     norm,
		Flat:     flat,
		EdgeStep: edgeStep,
		ChiE:     chiE,
	}, nil
}

func selectRange(xs []float64, lo, hi float64) []int {
	var idx []int
	for i, x := range xs {
		if x >= lo && x <= hi {
			idx = append(idx, i)
		}
	}
	return idx
}

func subset(xs []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = xs[j]
	}
	return out
}
