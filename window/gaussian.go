// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import "math"

// gaussianAlpha controls how quickly the taper falls off; 0.4 matches the
// width commonly used for EXAFS k-windows (a taper that falls to
// exp(-3.125), about 0.044, at the outer edge of the support).
const gaussianAlpha = 0.4

type gaussianWindow struct{}

func (gaussianWindow) Eval(x float64, p Params) float64 {
	t, flat, outside := taperFraction(x, p)
	if outside {
		return 0
	}
	if flat {
		return 1
	}
	u := 1 - t // 0 at the flat interior, 1 at the outer edge
	return math.Exp(-0.5 * (u / gaussianAlpha) * (u / gaussianAlpha))
}

func init() {
	Register("gaussian", gaussianWindow{})
}
