// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import "math"

// kaiserBesselBeta is the standard EXAFS Kaiser-Bessel shape parameter;
// larger values lower the sidelobes at the cost of a wider main lobe.
const kaiserBesselBeta = 4.0

type kaiserBesselWindow struct{}

func (kaiserBesselWindow) Eval(x float64, p Params) float64 {
	t, flat, outside := taperFraction(x, p)
	if outside {
		return 0
	}
	if flat {
		return 1
	}
	arg := 1 - (1-t)*(1-t)
	if arg < 0 {
		arg = 0
	}
	return besselI0(kaiserBesselBeta*math.Sqrt(arg)) / besselI0(kaiserBesselBeta)
}

func init() {
	Register("kaiser-bessel", kaiserBesselWindow{})
}

// besselI0 evaluates the modified Bessel function of the first kind, order
// zero, via the Abramowitz & Stegun polynomial approximations (good to
// ~1e-7 relative error over the full real line).
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		t := x / 3.75
		t2 := t * t
		return 1.0 + t2*(3.5156229+t2*(3.0899424+t2*(1.2067492+
			t2*(0.2659732+t2*(0.0360768+t2*0.0045813)))))
	}
	t := 3.75 / ax
	return (math.Exp(ax) / math.Sqrt(ax)) * (0.39894228 + t*(0.01328592+
		t*(0.00225319+t*(-0.00157565+t*(0.00916281+
			t*(-0.02057706+t*(0.02635537+t*(-0.01647633+t*0.00392377))))))))
}
