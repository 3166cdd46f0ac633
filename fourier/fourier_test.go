// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fourier

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goxafs/config"
)

func sampleChiK(n int, kStep float64) (k, chi []float64) {
	k = make([]float64, n)
	chi = make([]float64, n)
	for i := range k {
		k[i] = float64(i) * kStep
		chi[i] = math.Exp(-k[i]/4) * math.Sin(2*2.0*k[i])
	}
	return
}

// TestForwardOutputLength checks the forward transform output length is
// n_fft/2+1, per spec.md §4.5/§6.
func TestForwardOutputLength(t *testing.T) {
	chk.PrintTitle("ForwardOutputLength")
	k, chi := sampleChiK(200, 0.05)
	opts := config.XftfData{}
	opts.SetDefault()
	opts.PostProcess()

	res, err := Forward(k, chi, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := opts.NFFT/2 + 1
	if len(res.R) != want {
		t.Fatalf("len(R)=%d, want %d", len(res.R), want)
	}
	if len(res.Mag) != want {
		t.Fatalf("len(Mag)=%d, want %d", len(res.Mag), want)
	}
}

// TestForwardPeakNearExpectedR checks the forward transform of a damped
// sinusoid in k places its R-space peak near the expected R (scenario S5).
func TestForwardPeakNearExpectedR(t *testing.T) {
	k, chi := sampleChiK(240, 0.05)
	opts := config.XftfData{}
	opts.SetDefault()
	opts.PostProcess()

	res, err := Forward(k, chi, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	peakIdx, peakMag := 0, 0.0
	for i, m := range res.Mag {
		if m > peakMag {
			peakMag, peakIdx = m, i
		}
	}
	if math.Abs(res.R[peakIdx]-2.0) > 0.3 {
		t.Fatalf("peak at R=%g, want near 2.0", res.R[peakIdx])
	}
}

func TestForwardRejectsLengthMismatch(t *testing.T) {
	opts := config.XftfData{}
	opts.SetDefault()
	opts.PostProcess()
	_, err := Forward([]float64{1, 2, 3}, []float64{1, 2}, opts)
	if err == nil {
		t.Fatalf("expected a length-mismatch error")
	}
}

// TestInverseQGridMatchesKStep checks that Inverse's q-grid spacing equals
// the original k-grid spacing, as spec.md §4.5 requires ("output on the
// original uniform k-grid as chi_q") — a regression test for the q_step
// formula, which must mirror Forward's r_step formula exactly.
func TestInverseQGridMatchesKStep(t *testing.T) {
	const kStep = 0.05
	k, chi := sampleChiK(240, kStep)
	fOpts := config.XftfData{}
	fOpts.SetDefault()
	fOpts.PostProcess()

	fwd, err := Forward(k, chi, fOpts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rOpts := config.XftrData{}
	rOpts.SetDefault()
	rOpts.RMax = 4.0

	inv, err := Inverse(fwd.R, fwd.Chi, kStep, rOpts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	qStep := inv.Q[1] - inv.Q[0]
	if math.Abs(qStep-kStep) > 1e-9 {
		t.Fatalf("q-step=%g, want %g (the original k-step)", qStep, kStep)
	}
}

// TestForwardZeroesKWeightAtOrigin checks that a nonzero KWeight drives the
// weight at k=0 to zero (k^weight with k=0), rather than leaving the k=0
// sample weighted by the window alone — a huge chi(k=0) sample must not
// leak into the transform once KWeight is nonzero.
func TestForwardZeroesKWeightAtOrigin(t *testing.T) {
	k, chi := sampleChiK(240, 0.05)
	chi[0] = 1e6

	opts := config.XftfData{}
	opts.SetDefault()
	opts.KWeight = 2
	opts.PostProcess()

	res, err := Forward(k, chi, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, m := range res.Mag {
		if math.IsInf(m, 0) || math.IsNaN(m) || m > 1e3 {
			t.Fatalf("R-space bin %d blew up (mag=%g); k=0 sample was not zero-weighted", i, m)
		}
	}
}

func TestInverseRejectsLengthMismatch(t *testing.T) {
	opts := config.XftrData{}
	opts.SetDefault()
	_, err := Inverse([]float64{1, 2, 3}, []complex128{1, 2}, 0.05, opts)
	if err == nil {
		t.Fatalf("expected a length-mismatch error")
	}
}
