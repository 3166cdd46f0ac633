// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window implements the taper functions used by the forward/inverse
// windowed Fourier transform and by AUTOBK's k-space residual weighting.
// Each taper is registered by name from its own file's init(), mirroring
// the material-model registry in gofem's mdl/solid package: a common
// interface, a package-level allocator map, and a New(name) lookup that
// fails loudly (an error, not a panic) when the name is unknown.
package window

import (
	"github.com/cpmech/goxafs/xaserr"
)

// Params bundles the taper parameters every window shares: the interval
// [xMin, xMax] being windowed and the rising/falling taper widths dx1, dx2.
// Outside [xMin-dx1, xMax+dx2] the window is exactly zero (compact
// support); everywhere in [xMin, xMax] interior to the tapers it is 1.
type Params struct {
	XMin, XMax float64
	Dx1, Dx2   float64
}

// Func is a window taper: Eval(x) is the taper amplitude at x.
type Func interface {
	Eval(x float64, p Params) float64
}

// allocators holds all available windows; name => implementation.
var allocators = map[string]Func{}

// Register adds a new window implementation to the registry. Called from
// each taper file's init(); panics on a duplicate name because that is a
// programmer error in this package's own source, not a runtime data error
// a caller could ever trigger.
func Register(name string, fn Func) {
	if _, ok := allocators[name]; ok {
		panic("window: duplicate registration for " + name)
	}
	allocators[name] = fn
}

// New looks up a window implementation by name.
func New(name string) (Func, error) {
	fn, ok := allocators[name]
	if !ok {
		return nil, &xaserr.FFTError{Kind: xaserr.InvalidWindow, Window: name}
	}
	return fn, nil
}

// Eval is a convenience that evaluates the named window at every point in
// xs, writing into a freshly allocated slice.
func Eval(name string, xs []float64, p Params) ([]float64, error) {
	fn, err := New(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = fn.Eval(x, p)
	}
	return out, nil
}

// Names returns the registered window names in map iteration order, which
// is not stable between calls.
func Names() []string {
	names := make([]string, 0, len(allocators))
	for n := range allocators {
		names = append(names, n)
	}
	return names
}
