// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edge

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goxafs/mathutil"
	"github.com/cpmech/goxafs/xaserr"
)

// stepSpectrum builds the S1 scenario of spec.md §8: a sharp step at E=0,
// pre-smoothed by a half-eV Lorentzian so the derivative has a clean peak
// rather than a discontinuity.
func stepSpectrum() (energy, mu []float64) {
	n := 401
	energy = make([]float64, n)
	raw := make([]float64, n)
	for i := range energy {
		energy[i] = -20 + float64(i)*0.1 // -20..20 eV in 0.1 eV steps
		if energy[i] >= 0 {
			raw[i] = 1
		}
	}
	mu = mathutil.SmoothFFT(raw, 5) // 5 points ~ 0.5 eV at this grid
	return
}

func TestFindE0OnStep(t *testing.T) {
	chk.PrintTitle("FindE0OnStep")
	energy, mu := stepSpectrum()
	e0, err := FindE0(energy, mu)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(e0) > 0.5 {
		t.Fatalf("e0 = %g, want within 0.5 eV of 0", e0)
	}
}

// TestFindE0IsGridStepInvariant checks that a coarser energy grid over the
// same physical step produces essentially the same E0, i.e. the smoothing
// width is seeded from the grid's actual eV spacing rather than a fixed
// point count (which would over- or under-smooth depending on grid density).
func TestFindE0IsGridStepInvariant(t *testing.T) {
	fine := func() (energy, mu []float64) {
		n := 801
		energy = make([]float64, n)
		raw := make([]float64, n)
		for i := range energy {
			energy[i] = -20 + float64(i)*0.05
			if energy[i] >= 0 {
				raw[i] = 1
			}
		}
		mu = mathutil.SmoothFFT(raw, 10) // 10 points ~ 0.5 eV at this grid
		return
	}
	coarse := func() (energy, mu []float64) {
		n := 201
		energy = make([]float64, n)
		raw := make([]float64, n)
		for i := range energy {
			energy[i] = -20 + float64(i)*0.2
			if energy[i] >= 0 {
				raw[i] = 1
			}
		}
		mu = mathutil.SmoothFFT(raw, 2.5) // 2.5 points ~ 0.5 eV at this grid
		return
	}

	e0Fine, err := FindE0(fine())
	if err != nil {
		t.Fatalf("unexpected error (fine grid): %v", err)
	}
	e0Coarse, err := FindE0(coarse())
	if err != nil {
		t.Fatalf("unexpected error (coarse grid): %v", err)
	}
	if math.Abs(e0Fine-e0Coarse) > 0.5 {
		t.Fatalf("e0 differs across grid densities: fine=%g coarse=%g", e0Fine, e0Coarse)
	}
}

func TestFindE0RejectsTooFewPoints(t *testing.T) {
	_, err := FindE0([]float64{1, 2, 3}, []float64{1, 2, 3})
	var de *xaserr.DataError
	if err == nil {
		t.Fatal("expected an error")
	}
	if !asDataError(err, &de) || de.Kind != xaserr.InsufficientData {
		t.Fatalf("expected InsufficientData, got %v", err)
	}
}

func TestFindE0RejectsNonFinite(t *testing.T) {
	energy, mu := stepSpectrum()
	mu[10] = math.NaN()
	_, err := FindE0(energy, mu)
	var de *xaserr.DataError
	if !asDataError(err, &de) || de.Kind != xaserr.NonFiniteValues {
		t.Fatalf("expected NonFiniteValues, got %v", err)
	}
}

func asDataError(err error, target **xaserr.DataError) bool {
	de, ok := err.(*xaserr.DataError)
	if ok {
		*target = de
	}
	return ok
}
