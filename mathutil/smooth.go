// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathutil

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/fourier"
)

// LorentzianKernel evaluates a normalized Lorentzian of half-width-at-half-
// maximum gamma, centered at zero, at x.
func LorentzianKernel(x, gamma float64) float64 {
	if gamma <= 0 {
		gamma = 1e-12
	}
	return (gamma / math.Pi) / (x*x + gamma*gamma)
}

// GaussianKernel evaluates a normalized Gaussian of standard deviation sigma,
// centered at zero, at x.
func GaussianKernel(x, sigma float64) float64 {
	if sigma <= 0 {
		sigma = 1e-12
	}
	return math.Exp(-0.5*x*x/(sigma*sigma)) / (sigma * math.Sqrt(2*math.Pi))
}

// VoigtKernel evaluates a pseudo-Voigt mixture of a Lorentzian (HWHM gamma)
// and a Gaussian (sigma) at x, with mixing fraction eta in [0, 1].
func VoigtKernel(x, gamma, sigma, eta float64) float64 {
	if eta < 0 {
		eta = 0
	}
	if eta > 1 {
		eta = 1
	}
	return eta*LorentzianKernel(x, gamma) + (1-eta)*GaussianKernel(x, sigma)
}

// FindEnergyStep estimates the characteristic energy-grid spacing: the mean
// of adjacent differences after trimming the outer percentile tails (which
// otherwise skew the mean when a spectrum has a few coarse/fine regions),
// averaged over the whole array. Per spec.md this estimate seeds the
// Lorentzian smoothing width used by edge detection.
func FindEnergyStep(energy []float64) float64 {
	d := FirstDiff(energy)
	if len(d) == 0 {
		return 1.0
	}
	sorted := append([]float64(nil), d...)
	sort.Float64s(sorted)
	trim := len(sorted) / 10 // trim outer ~10% on each side
	lo, hi := trim, len(sorted)-trim
	if hi-lo < 1 {
		lo, hi = 0, len(sorted)
	}
	sum := 0.0
	for _, v := range sorted[lo:hi] {
		sum += v
	}
	return sum / float64(hi-lo)
}

// SmoothFFT convolves y with a Lorentzian of the given width (in points) by
// multiplying in the frequency domain, which is cheaper than a direct
// convolution once the kernel support spans more than a handful of points.
// The result has the same length as y.
func SmoothFFT(y []float64, widthPts float64) []float64 {
	n := len(y)
	if n == 0 {
		return nil
	}
	if widthPts <= 0 {
		out := make([]float64, n)
		copy(out, y)
		return out
	}

	// pad to at least twice the length (next power of two) to keep the FFT
	// cheap and to keep the end of the signal from wrapping onto its start.
	nfft := nextPow2(2 * n)

	padded := make([]float64, nfft)
	copy(padded, y)
	// fill the padding with the last value so the end of the signal doesn't
	// see a fake discontinuity at y[n-1]->0. The start of the signal wraps
	// around onto this padding, so samples within the kernel support of
	// y[0] are averaged with y[n-1].
	for i := n; i < nfft; i++ {
		padded[i] = y[n-1]
	}

	kernel := make([]float64, nfft)
	halfSupport := int(6 * widthPts)
	if halfSupport < 1 {
		halfSupport = 1
	}
	ksum := 0.0
	for i := -halfSupport; i <= halfSupport; i++ {
		v := LorentzianKernel(float64(i), widthPts)
		idx := ((i % nfft) + nfft) % nfft
		kernel[idx] += v
		ksum += v
	}
	if ksum > 0 {
		for i := range kernel {
			kernel[i] /= ksum
		}
	}

	fft := fourier.NewFFT(nfft)
	Y := fft.Coefficients(nil, padded)
	K := fft.Coefficients(nil, kernel)
	for i := range Y {
		Y[i] *= K[i]
	}
	conv := fft.Sequence(nil, Y)

	out := make([]float64, n)
	copy(out, conv[:n])
	return out
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
