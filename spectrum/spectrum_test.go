// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goxafs/config"
)

// TestBatchIsDeterministicAndIsolated is scenario S6: running FindE0Batch
// and NormalizeBatch over the same group with different worker counts must
// produce identical per-record results, and no record's output may depend
// on another's.
func TestBatchIsDeterministicAndIsolated(t *testing.T) {
	chk.PrintTitle("BatchIsDeterministicAndIsolated")
	opts := config.NormalizeData{}
	opts.SetDefault()

	run := func(workers int) []float64 {
		g := SyntheticGroup(8)
		FindE0Batch(g, workers)
		NormalizeBatch(g, opts, workers)
		out := make([]float64, g.Len())
		for i, s := range g.All() {
			if s.Err != nil {
				t.Fatalf("record %d failed: %v", i, s.Err)
			}
			out[i] = s.Norm.EdgeStep
		}
		return out
	}

	serial := run(1)
	parallel := run(4)
	if len(serial) != len(parallel) {
		t.Fatalf("length mismatch: %d vs %d", len(serial), len(parallel))
	}
	for i := range serial {
		if math.Abs(serial[i]-parallel[i]) > 1e-12 {
			t.Fatalf("record %d differs across worker counts: %g vs %g", i, serial[i], parallel[i])
		}
	}
}

// TestBatchIsolatesPerRecordFailure is scenario S7: two records in an
// otherwise-healthy group are corrupted with a non-finite mu sample; only
// those two records should end up with a non-nil Err, and every other
// record must still complete successfully.
func TestBatchIsolatesPerRecordFailure(t *testing.T) {
	g := SyntheticGroup(10)
	records := g.All()
	records[3].Mu[10] = math.NaN()
	records[7].Mu[20] = math.NaN()

	FindE0Batch(g, 0)

	for i, s := range g.All() {
		if i == 3 || i == 7 {
			if s.Err == nil {
				t.Fatalf("record %d (corrupted) expected an error, got none", i)
			}
			continue
		}
		if s.Err != nil {
			t.Fatalf("record %d (healthy) unexpectedly failed: %v", i, s.Err)
		}
	}
}

func TestGroupRemoveSet(t *testing.T) {
	g := SyntheticGroup(5)
	names := g.Names()
	g.RemoveSet(map[string]bool{names[1]: true, names[3]: true})
	if g.Len() != 3 {
		t.Fatalf("len=%d, want 3", g.Len())
	}
	if _, ok := g.Get(names[1]); ok {
		t.Fatalf("expected %s to be removed", names[1])
	}
}

func TestGroupGetAt(t *testing.T) {
	g := SyntheticGroup(4)
	names := g.Names()
	s, err := g.GetAt(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != names[2] {
		t.Fatalf("GetAt(2).Name=%q, want %q", s.Name, names[2])
	}
	if _, err := g.GetAt(g.Len()); err == nil {
		t.Fatalf("expected an out-of-range error")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := SyntheticGroup(3)
	clone := g.Clone()
	clone.All()[0].Mu[0] = 12345
	if g.All()[0].Mu[0] == 12345 {
		t.Fatalf("clone mutation leaked into original group")
	}
}
