// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import "math"

type hanningWindow struct{}

func (hanningWindow) Eval(x float64, p Params) float64 {
	t, flat, outside := taperFraction(x, p)
	if outside {
		return 0
	}
	if flat {
		return 1
	}
	return 0.5 * (1 - math.Cos(math.Pi*t))
}

func init() {
	Register("hanning", hanningWindow{})
}
