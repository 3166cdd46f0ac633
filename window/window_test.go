// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllWindowsAreCompactlySupported(t *testing.T) {
	p := Params{XMin: 2, XMax: 10, Dx1: 1, Dx2: 1}
	for _, name := range []string{"hanning", "kaiser-bessel", "parzen", "welch", "gaussian", "sine"} {
		fn, err := New(name)
		assert.NoError(t, err, name)
		assert.Equal(t, 0.0, fn.Eval(p.XMin-p.Dx1-0.5, p), name+" below support")
		assert.Equal(t, 0.0, fn.Eval(p.XMax+p.Dx2+0.5, p), name+" above support")
		assert.InDelta(t, 1.0, fn.Eval((p.XMin+p.XMax)/2, p), 1e-9, name+" flat interior")
	}
}

func TestNewUnknownWindowIsError(t *testing.T) {
	_, err := New("does-not-exist")
	assert.Error(t, err)
}
