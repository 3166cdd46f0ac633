// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edge locates the absorption-edge energy E0 from derivative
// features of a canonicalized (energy, mu) curve (spec.md §4.2).
package edge

import (
	"math"

	"github.com/cpmech/goxafs/mathutil"
	"github.com/cpmech/goxafs/xaserr"
)

// minPoints is the minimum sample count spec.md §3 requires ("N_raw ≥ ~20").
const minPoints = 20

// leadingMaskFrac is the fraction of leading points masked off before
// searching for the half-max derivative crossing, to avoid locking onto a
// pre-edge spike.
const leadingMaskFrac = 0.05

// refineWindow is the half-width (in points) of the window searched around
// the half-max crossing for the true derivative maximum.
const refineWindow = 5

// smoothingWidthEv is the Lorentzian smoothing width, in eV, applied to mu
// before differentiating (spec.md §4.2 step 1). It is converted to the
// point-based width SmoothFFT expects via the grid's own characteristic
// step, so the same eV width smooths a coarse and a fine grid by the same
// physical amount of energy.
const smoothingWidthEv = 1.0

// FindE0 locates the absorption edge energy from a canonicalized
// (energy, mu) curve: energy must be strictly increasing and both slices
// finite. It returns the energy at the index where the derivative of the
// smoothed mu is maximal (near the steepest rise of mu), refined within a narrow window
// around the first half-max derivative crossing past the leading mask.
func FindE0(energy, mu []float64) (e0 float64, err error) {
	n := len(energy)
	if n != len(mu) {
		return 0, &xaserr.DataError{Kind: xaserr.LengthMismatch, Have: len(mu), Want: n}
	}
	if n < minPoints {
		return 0, &xaserr.DataError{Kind: xaserr.InsufficientData, Have: n, Want: minPoints}
	}
	if ok, bad := mathutil.AllFinite(energy); !ok {
		return 0, &xaserr.DataError{Kind: xaserr.NonFiniteValues, Indices: bad}
	}
	if ok, bad := mathutil.AllFinite(mu); !ok {
		return 0, &xaserr.DataError{Kind: xaserr.NonFiniteValues, Indices: bad}
	}

	step := mathutil.FindEnergyStep(energy)
	widthPts := smoothingWidthEv
	if step > 0 {
		widthPts = smoothingWidthEv / step
	}
	smoothed := mathutil.SmoothFFT(mu, widthPts)
	deriv := mathutil.Gradient(energy, smoothed)

	lead := int(leadingMaskFrac * float64(n))
	dmax := 0.0
	for i := lead; i < n; i++ {
		if deriv[i] > dmax {
			dmax = deriv[i]
		}
	}
	if dmax <= 0 {
		return 0, &xaserr.DataError{Kind: xaserr.InvalidEnergyRange, Msg: "derivative never rises above baseline; mu does not look like an absorption edge"}
	}

	threshold := 0.5 * dmax
	iCross := -1
	for i := lead; i < n; i++ {
		if deriv[i] >= threshold {
			iCross = i
			break
		}
	}
	if iCross < 0 {
		return 0, &xaserr.DataError{Kind: xaserr.InvalidEnergyRange, Msg: "no half-max derivative crossing found"}
	}

	lo := iCross - refineWindow
	if lo < 0 {
		lo = 0
	}
	hi := iCross + refineWindow
	if hi >= n {
		hi = n - 1
	}
	iMax := iCross
	best := deriv[iCross]
	for i := lo; i <= hi; i++ {
		if deriv[i] > best {
			best = deriv[i]
			iMax = i
		}
	}

	if math.IsNaN(energy[iMax]) {
		return 0, &xaserr.DataError{Kind: xaserr.NonFiniteValues, Indices: []int{iMax}}
	}
	return energy[iMax], nil
}
