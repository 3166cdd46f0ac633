// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

// taperFraction classifies x against the windowed band [xMin,xMax] with
// rising/falling taper widths dx1/dx2, returning the fraction t in [0,1]
// through whichever taper region x falls in (0 at the outer edge, 1 where
// the taper meets the flat interior), plus flat=true for the flat interior
// and outside=true outside the compact support entirely. Shared by every concrete
// window shape so each one only needs to supply the taper profile itself.
func taperFraction(x float64, p Params) (t float64, flat bool, outside bool) {
	switch {
	case x < p.XMin-p.Dx1 || x > p.XMax+p.Dx2:
		return 0, false, true
	case x < p.XMin:
		if p.Dx1 <= 0 {
			return 1, false, false
		}
		return (x - (p.XMin - p.Dx1)) / p.Dx1, false, false
	case x > p.XMax:
		if p.Dx2 <= 0 {
			return 1, false, false
		}
		return ((p.XMax + p.Dx2) - x) / p.Dx2, false, false
	default:
		return 1, true, false
	}
}
