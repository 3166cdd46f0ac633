// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spectrum holds the Spectrum record (spec.md §3) and the batch
// driver that runs the pipeline stages (edge, normalize, autobk, fourier)
// over many independent records at once.
package spectrum

import (
	"github.com/cpmech/goxafs/autobk"
	"github.com/cpmech/goxafs/fourier"
	"github.com/cpmech/goxafs/mathutil"
	"github.com/cpmech/goxafs/normalize"
	"github.com/cpmech/goxafs/xaserr"
)

// Spectrum is one (energy, mu) absorption spectrum plus everything derived
// from it by the pipeline stages, built up in place as each stage runs
// (spec.md §3).
type Spectrum struct {
	Name string

	RawEnergy []float64 // as supplied to New, before sorting/de-duplication
	RawMu     []float64

	Energy []float64
	Mu     []float64

	E0 float64

	Norm normalize.Result

	Background autobk.Result

	Forward fourier.Result
	Inverse fourier.InverseResult

	Err error // set by whichever batch stage first failed on this record
}

// New canonicalizes (energy, mu) — sorting, de-duplicating, and validating
// strict monotonicity — and returns the resulting Spectrum, following the
// same canonicalization spec.md §3 requires before any stage may run.
func New(name string, energy, mu []float64) (*Spectrum, error) {
	e, m, err := canonicalize(energy, mu)
	if err != nil {
		return nil, err
	}
	return &Spectrum{
		Name:      name,
		RawEnergy: append([]float64(nil), energy...),
		RawMu:     append([]float64(nil), mu...),
		Energy:    e,
		Mu:        m,
	}, nil
}

// canonicalize sorts (energy, mu) by energy, de-duplicates repeated energy
// values (keeping the first mu seen), and rejects non-finite samples or
// fewer than two unique points.
func canonicalize(energy, mu []float64) (e, m []float64, err error) {
	if len(energy) != len(mu) {
		return nil, nil, &xaserr.DataError{Kind: xaserr.LengthMismatch, Have: len(mu), Want: len(energy)}
	}
	if ok, bad := mathutil.AllFinite(energy); !ok {
		return nil, nil, &xaserr.DataError{Kind: xaserr.NonFiniteValues, Indices: bad}
	}
	if ok, bad := mathutil.AllFinite(mu); !ok {
		return nil, nil, &xaserr.DataError{Kind: xaserr.NonFiniteValues, Indices: bad}
	}

	return mathutil.SortDedup(energy, mu)
}

// Clone returns a copy of s with its own RawEnergy, RawMu, Energy and Mu
// slices, used by Group.Clone. The stage results (Norm, Background,
// Forward, Inverse) are copied as structs, so their slices are shared with s.
func (s *Spectrum) Clone() *Spectrum {
	clone := *s
	clone.RawEnergy = append([]float64(nil), s.RawEnergy...)
	clone.RawMu = append([]float64(nil), s.RawMu...)
	clone.Energy = append([]float64(nil), s.Energy...)
	clone.Mu = append([]float64(nil), s.Mu...)
	return &clone
}
