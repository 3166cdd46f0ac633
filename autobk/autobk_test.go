// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autobk

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goxafs/config"
)

// smoothBackground is the slowly-varying curve AUTOBK is expected to
// recover and remove, shared by both scenarios below.
func smoothBackground(k float64) float64 {
	return 0.02 + 0.01*k - 0.0008*k*k
}

// energyKGrid builds a uniform energy axis spanning k in [0, kMax], with
// e0 at the origin.
func energyKGrid(kMax float64, n int) (energy []float64, e0 float64) {
	e0 = 8000
	eMax := e0 + kMax*kMax/sqrtConst
	energy = make([]float64, n)
	for i := range energy {
		energy[i] = e0 + float64(i)*(eMax-e0)/float64(n-1)
	}
	return
}

// TestAutobkPureBackgroundIsRemoved is scenario S3: chi(E) is exactly the
// smooth background with no oscillatory signal, so after Run the residual
// chi should be close to zero everywhere.
func TestAutobkPureBackgroundIsRemoved(t *testing.T) {
	chk.PrintTitle("AutobkPureBackgroundIsRemoved")
	energy, e0 := energyKGrid(12, 400)
	chiE := make([]float64, len(energy))
	for i, e := range energy {
		k := math.Sqrt(sqrtConst * (e - e0))
		chiE[i] = smoothBackground(k)
	}

	opts := config.AutobkData{}
	opts.SetDefault()
	opts.KMax = 12
	opts.PostProcess()

	res, err := Run(energy, chiE, e0, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status == "NumericFailure" {
		t.Fatalf("LM failed numerically")
	}

	maxAbs := 0.0
	for _, v := range res.Chi {
		if math.Abs(v) > maxAbs {
			maxAbs = math.Abs(v)
		}
	}
	if maxAbs > 0.05 {
		t.Fatalf("pure-background chi not flattened: max|chi|=%g", maxAbs)
	}
}

// TestAutobkBackgroundPlusSinusoidPreservesSignal is scenario S4: chi(E) is
// the smooth background plus a high-frequency (large-R) sinusoid; AUTOBK's
// low-R-only constraint should remove the background but leave the
// sinusoid's amplitude roughly intact.
func TestAutobkBackgroundPlusSinusoidPreservesSignal(t *testing.T) {
	energy, e0 := energyKGrid(12, 400)
	const amp = 0.01
	const freqR = 2.5 // Å, well outside R_bkg=1.0's rejection band
	chiE := make([]float64, len(energy))
	for i, e := range energy {
		k := math.Sqrt(sqrtConst * (e - e0))
		chiE[i] = smoothBackground(k) + amp*math.Sin(2*freqR*k)
	}

	opts := config.AutobkData{}
	opts.SetDefault()
	opts.KMax = 12
	opts.PostProcess()

	res, err := Run(energy, chiE, e0, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Compare chi against the pure sinusoid in the interior, away from the
	// window's tapered edges where some signal leakage into the background
	// is expected.
	maxDiff := 0.0
	for i, k := range res.K {
		if k < opts.Dk || k > 12-opts.Dk {
			continue
		}
		want := amp * math.Sin(2*freqR*k)
		if d := math.Abs(res.Chi[i] - want); d > maxDiff {
			maxDiff = d
		}
	}
	if maxDiff > 0.02 {
		t.Fatalf("sinusoid not preserved: max diff=%g", maxDiff)
	}
}

func TestAutobkRejectsInvalidRbkg(t *testing.T) {
	energy, e0 := energyKGrid(10, 200)
	chiE := make([]float64, len(energy))
	opts := config.AutobkData{}
	opts.SetDefault()
	opts.Rbkg = 0
	opts.PostProcess()

	_, err := Run(energy, chiE, e0, opts)
	if err == nil {
		t.Fatalf("expected an error for Rbkg=0")
	}
}
