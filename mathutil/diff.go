// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathutil

// FirstDiff returns the forward first difference y[i+1]-y[i], length
// len(y)-1.
func FirstDiff(y []float64) []float64 {
	if len(y) < 2 {
		return nil
	}
	d := make([]float64, len(y)-1)
	for i := range d {
		d[i] = y[i+1] - y[i]
	}
	return d
}

// Gradient returns the derivative of y with respect to x using a central
// difference at interior points and one-sided (forward/backward)
// differences at the two endpoints. len(x) must equal len(y) and be >= 2.
func Gradient(x, y []float64) []float64 {
	n := len(y)
	g := make([]float64, n)
	if n < 2 {
		return g
	}
	g[0] = (y[1] - y[0]) / (x[1] - x[0])
	g[n-1] = (y[n-1] - y[n-2]) / (x[n-1] - x[n-2])
	for i := 1; i < n-1; i++ {
		g[i] = (y[i+1] - y[i-1]) / (x[i+1] - x[i-1])
	}
	return g
}
