// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathutil

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestLinInterpClampsAtEndpoints(t *testing.T) {
	chk.PrintTitle("LinInterpClampsAtEndpoints")
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 10, 20, 30}
	if v := LinInterp(xs, ys, -5); v != 0 {
		t.Fatalf("expected clamp to 0, got %g", v)
	}
	if v := LinInterp(xs, ys, 50); v != 30 {
		t.Fatalf("expected clamp to 30, got %g", v)
	}
	if v := LinInterp(xs, ys, 1.5); math.Abs(v-15) > 1e-12 {
		t.Fatalf("expected 15, got %g", v)
	}
}

func TestSortDedupStrictlyIncreasing(t *testing.T) {
	energy := []float64{3, 1, 2, 2, 1, 4}
	mu := []float64{30, 10, 20, 21, 11, 40}
	e, m, err := SortDedup(energy, mu)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !StrictlyIncreasing(e) {
		t.Fatalf("expected strictly increasing, got %v", e)
	}
	if len(e) != 4 || len(m) != 4 {
		t.Fatalf("expected 4 unique points, got %d", len(e))
	}
}

func TestGradientCentralDifference(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = xi * xi
	}
	g := Gradient(x, y)
	// d/dx x^2 = 2x; interior points use central difference, exact for a
	// quadratic.
	for i := 1; i < len(x)-1; i++ {
		want := 2 * x[i]
		if math.Abs(g[i]-want) > 1e-9 {
			t.Fatalf("gradient[%d] = %g, want %g", i, g[i], want)
		}
	}
}

func TestPolyFitRecoversExactPolynomial(t *testing.T) {
	xs := make([]float64, 20)
	ys := make([]float64, 20)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = 2 + 3*xs[i] - 0.5*xs[i]*xs[i]
	}
	coefs, err := PolyFit(xs, ys, 2, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{2, 3, -0.5}
	for i, c := range want {
		if math.Abs(coefs[i]-c) > 1e-8 {
			t.Fatalf("coef[%d] = %g, want %g", i, coefs[i], c)
		}
	}
}

func TestBasisJacobianPartitionOfUnity(t *testing.T) {
	knots, err := Knots(5, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	xs := []float64{0, 1.3, 2.7, 5, 7.9, 9.9, 10}
	basis := BasisJacobian(knots, xs)
	for row := range xs {
		sum := 0.0
		for col := 0; col < basis.N; col++ {
			v := basis.Get(row, col)
			if v < -1e-9 {
				t.Fatalf("basis function negative at row=%d col=%d: %g", row, col, v)
			}
			sum += v
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("basis functions at x=%g sum to %g, want 1", xs[row], sum)
		}
	}
}

func TestSmoothFFTPreservesConstant(t *testing.T) {
	y := make([]float64, 64)
	for i := range y {
		y[i] = 5.0
	}
	out := SmoothFFT(y, 2.0)
	for i, v := range out {
		if math.Abs(v-5.0) > 1e-6 {
			t.Fatalf("smoothed constant signal at %d = %g, want 5", i, v)
		}
	}
}
