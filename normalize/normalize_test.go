// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normalize

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goxafs/config"
)

// syntheticSpectrum builds a smooth, monotonically-rising step-like mu(E)
// with a realistic pre/post-edge shape, used by both scenarios below.
func syntheticSpectrum() (energy, mu []float64, e0 float64) {
	n := 300
	energy = make([]float64, n)
	mu = make([]float64, n)
	e0 = 8000
	for i := range energy {
		e := e0 - 100 + float64(i)*1.0
		energy[i] = e
		pre := 0.2 + 0.0001*(e-e0)
		post := 1.2 + 0.0005*(e-e0) - 0.0000005*(e-e0)*(e-e0)
		edge := 1.0 / (1.0 + math.Exp(-(e-e0)/2.0))
		mu[i] = pre + edge*(post-pre)
	}
	return
}

func TestNormalizeLinearity(t *testing.T) {
	chk.PrintTitle("NormalizeLinearity")
	energy, mu, e0 := syntheticSpectrum()
	opts := config.NormalizeData{}
	opts.SetDefault()

	a, err := Run(energy, mu, e0, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scaled := make([]float64, len(mu))
	for i, m := range mu {
		scaled[i] = 3*m + 7
	}
	b, err := Run(energy, scaled, e0, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(b.EdgeStep-3*a.EdgeStep) > 1e-9*math.Abs(a.EdgeStep) {
		t.Fatalf("edge step not linear: a=%g b=%g", a.EdgeStep, b.EdgeStep)
	}
	for i := range a.Norm {
		if math.Abs(a.Norm[i]-b.Norm[i]) > 1e-9 {
			t.Fatalf("norm[%d] differs: a=%g b=%g", i, a.Norm[i], b.Norm[i])
		}
	}
}

func TestNormalizeEdgeStepPositive(t *testing.T) {
	energy, mu, e0 := syntheticSpectrum()
	opts := config.NormalizeData{}
	opts.SetDefault()
	res, err := Run(energy, mu, e0, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.EdgeStep <= 0 {
		t.Fatalf("edge step = %g, want > 0", res.EdgeStep)
	}
}

func TestNormalizeFlatTendsToOne(t *testing.T) {
	energy, mu, e0 := syntheticSpectrum()
	opts := config.NormalizeData{}
	opts.SetDefault()
	res, err := Run(energy, mu, e0, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := res.Flat[len(res.Flat)-1]
	if math.Abs(last-1) > 0.2 {
		t.Fatalf("flat(E) far above edge = %g, want near 1", last)
	}
}
