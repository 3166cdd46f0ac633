// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"runtime"
	"sync"

	"github.com/cpmech/goxafs/autobk"
	"github.com/cpmech/goxafs/config"
	"github.com/cpmech/goxafs/edge"
	"github.com/cpmech/goxafs/fourier"
	"github.com/cpmech/goxafs/normalize"
)

// runBatch runs fn over every record in g concurrently across a bounded
// worker pool. One failing record never prevents the others from
// completing (spec.md §5's per-record isolation requirement): a goroutine
// only ever touches the single *Spectrum it was handed, and any error fn
// returns is both recorded on that record's Err field (so later stages can
// skip it) and returned in the index-aligned result vector, mirroring
// spec.md's "collected into a parallel result vector" wording.
func runBatch(g *Group, workers int, fn func(*Spectrum) error) []error {
	records := g.All()
	errs := make([]error, len(records))

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if len(records) < workers {
		workers = len(records)
	}
	if workers == 0 {
		return errs
	}

	type job struct {
		idx int
		s   *Spectrum
	}
	jobs := make(chan job)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				if j.s.Err != nil {
					errs[j.idx] = j.s.Err // a prior stage already failed this record
					continue
				}
				if err := fn(j.s); err != nil {
					j.s.Err = err
					errs[j.idx] = err
				}
			}
		}()
	}
	for i, s := range records {
		jobs <- job{idx: i, s: s}
	}
	close(jobs)
	wg.Wait()
	return errs
}

// FindE0Batch runs edge.FindE0 over every record in g concurrently, using
// workers goroutines (0 means GOMAXPROCS), and returns the per-record
// errors index-aligned to g.All() (nil where a record succeeded).
func FindE0Batch(g *Group, workers int) []error {
	return runBatch(g, workers, func(s *Spectrum) error {
		e0, err := edge.FindE0(s.Energy, s.Mu)
		if err != nil {
			return err
		}
		s.E0 = e0
		return nil
	})
}

// NormalizeBatch runs normalize.Run over every record in g concurrently,
// returning the per-record errors index-aligned to g.All().
func NormalizeBatch(g *Group, opts config.NormalizeData, workers int) []error {
	return runBatch(g, workers, func(s *Spectrum) error {
		res, err := normalize.Run(s.Energy, s.Mu, s.E0, opts)
		if err != nil {
			return err
		}
		s.Norm = res
		return nil
	})
}

// CalcBackgroundBatch runs autobk.Run over every record in g concurrently,
// returning the per-record errors index-aligned to g.All().
func CalcBackgroundBatch(g *Group, opts config.AutobkData, workers int) []error {
	return runBatch(g, workers, func(s *Spectrum) error {
		res, err := autobk.Run(s.Energy, s.Norm.ChiE, s.E0, opts)
		if err != nil {
			return err
		}
		s.Background = res
		return nil
	})
}

// FFTBatch runs fourier.Forward over every record in g concurrently,
// returning the per-record errors index-aligned to g.All().
func FFTBatch(g *Group, opts config.XftfData, workers int) []error {
	return runBatch(g, workers, func(s *Spectrum) error {
		res, err := fourier.Forward(s.Background.K, s.Background.Chi, opts)
		if err != nil {
			return err
		}
		s.Forward = res
		return nil
	})
}

// IFFTBatch runs fourier.Inverse over every record in g concurrently, using
// each record's own forward-transform R-grid and the one kStep given for
// all records, returning the
// per-record errors index-aligned to g.All().
func IFFTBatch(g *Group, opts config.XftrData, kStep float64, workers int) []error {
	return runBatch(g, workers, func(s *Spectrum) error {
		res, err := fourier.Inverse(s.Forward.R, s.Forward.Chi, kStep, opts)
		if err != nil {
			return err
		}
		s.Inverse = res
		return nil
	})
}
