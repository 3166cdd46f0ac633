// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathutil implements the small, pure, allocation-lean numerical
// primitives consumed by every later stage of the pipeline: interpolation,
// sorting, finite differences, smoothing kernels, polynomial fitting, and
// cubic B-spline basis evaluation. Nothing here mutates a caller-owned
// slice; every function returns new storage or writes into a buffer the
// caller explicitly passed in.
package mathutil

import (
	"math"
	"sort"

	"github.com/cpmech/goxafs/xaserr"
)

// LinInterp evaluates the piecewise-linear interpolant through (xs[i],
// ys[i]) at x, clamping to the nearest endpoint value when x falls outside
// [xs[0], xs[len(xs)-1]]. xs must be strictly increasing.
func LinInterp(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	// binary search for the bracketing interval
	i := sort.Search(n, func(i int) bool { return xs[i] >= x }) - 1
	if i < 0 {
		i = 0
	}
	if i >= n-1 {
		return ys[n-1]
	}
	t := (x - xs[i]) / (xs[i+1] - xs[i])
	return ys[i] + t*(ys[i+1]-ys[i])
}

// LinInterpSlice evaluates LinInterp at every point in xq, writing into out
// (which must already be sized len(xq)) when non-nil, else allocating a
// fresh slice.
func LinInterpSlice(xs, ys, xq []float64, out []float64) []float64 {
	if out == nil {
		out = make([]float64, len(xq))
	}
	for i, x := range xq {
		out[i] = LinInterp(xs, ys, x)
	}
	return out
}

// StrictlyIncreasing reports whether xs[i+1] > xs[i] for every i.
func StrictlyIncreasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}

// AllFinite reports whether every value in xs is finite, and returns the
// indices of any non-finite entries.
func AllFinite(xs []float64) (ok bool, bad []int) {
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad = append(bad, i)
		}
	}
	return len(bad) == 0, bad
}

// ArgSort returns the permutation that would sort xs in ascending order,
// without mutating xs.
func ArgSort(xs []float64) []int {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return xs[idx[i]] < xs[idx[j]] })
	return idx
}

// SortDedup sorts (energy, mu) by energy and removes duplicate energies
// (keeping the first occurrence), returning freshly-allocated slices. It
// fails if fewer than two distinct samples remain.
func SortDedup(energy, mu []float64) (e, m []float64, err error) {
	if len(energy) != len(mu) {
		return nil, nil, &xaserr.DataError{Kind: xaserr.LengthMismatch, Have: len(mu), Want: len(energy)}
	}
	perm := ArgSort(energy)
	e = make([]float64, 0, len(energy))
	m = make([]float64, 0, len(mu))
	for _, i := range perm {
		if len(e) > 0 && energy[i] == e[len(e)-1] {
			continue
		}
		e = append(e, energy[i])
		m = append(m, mu[i])
	}
	if len(e) < 2 {
		return nil, nil, &xaserr.DataError{Kind: xaserr.InsufficientData, Have: len(e), Want: 2}
	}
	return e, m, nil
}

// MinMax returns the minimum and maximum of xs.
func MinMax(xs []float64) (min, max float64) {
	min, max = xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return
}
