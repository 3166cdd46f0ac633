// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import "math"

type sineWindow struct{}

func (sineWindow) Eval(x float64, p Params) float64 {
	t, flat, outside := taperFraction(x, p)
	if outside {
		return 0
	}
	if flat {
		return 1
	}
	return math.Sin(0.5 * math.Pi * t)
}

func init() {
	Register("sine", sineWindow{})
}
