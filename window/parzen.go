// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

type parzenWindow struct{}

func (parzenWindow) Eval(x float64, p Params) float64 {
	t, flat, outside := taperFraction(x, p)
	if outside {
		return 0
	}
	if flat {
		return 1
	}
	u := 1 - t // 0 at the flat interior, 1 at the outer edge
	if u <= 0.5 {
		return 1 - 6*u*u*(1-u)
	}
	return 2 * (1 - u) * (1 - u) * (1 - u)
}

func init() {
	Register("parzen", parzenWindow{})
}
