// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import "github.com/cpmech/goxafs/xaserr"

// Group is an ordered, name-addressable collection of Spectrum records —
// the unit the batch driver operates on (spec.md §3 "Group of spectra").
type Group struct {
	order []string
	byName map[string]*Spectrum
}

// NewGroup returns an empty Group.
func NewGroup() *Group {
	return &Group{byName: make(map[string]*Spectrum)}
}

// Add appends s to the group, replacing any existing record of the same
// name in place (preserving its original position).
func (g *Group) Add(s *Spectrum) {
	if _, exists := g.byName[s.Name]; !exists {
		g.order = append(g.order, s.Name)
	}
	g.byName[s.Name] = s
}

// Get returns the named record, or nil and false if absent.
func (g *Group) Get(name string) (*Spectrum, bool) {
	s, ok := g.byName[name]
	return s, ok
}

// GetAt returns the record at position i (0-indexed, in insertion order),
// or a DataError if i is out of range.
func (g *Group) GetAt(i int) (*Spectrum, error) {
	if i < 0 || i >= len(g.order) {
		return nil, &xaserr.DataError{Kind: xaserr.IndexOutOfRange, Have: i, Want: len(g.order)}
	}
	return g.byName[g.order[i]], nil
}

// RemoveAt removes the record at position i (0-indexed, in insertion
// order), returning a DataError if i is out of range.
func (g *Group) RemoveAt(i int) error {
	if i < 0 || i >= len(g.order) {
		return &xaserr.DataError{Kind: xaserr.IndexOutOfRange, Have: i, Want: len(g.order)}
	}
	delete(g.byName, g.order[i])
	g.order = append(g.order[:i], g.order[i+1:]...)
	return nil
}

// RemoveSet removes every record whose name appears in names; names not
// present in the group are silently ignored.
func (g *Group) RemoveSet(names map[string]bool) {
	kept := g.order[:0]
	for _, n := range g.order {
		if names[n] {
			delete(g.byName, n)
			continue
		}
		kept = append(kept, n)
	}
	g.order = kept
}

// Len returns the number of records in the group.
func (g *Group) Len() int { return len(g.order) }

// IsEmpty reports whether the group has no records.
func (g *Group) IsEmpty() bool { return len(g.order) == 0 }

// Names returns the record names in insertion order.
func (g *Group) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// All returns the records in insertion order.
func (g *Group) All() []*Spectrum {
	out := make([]*Spectrum, len(g.order))
	for i, n := range g.order {
		out[i] = g.byName[n]
	}
	return out
}

// Filter returns a new Group containing only the records for which keep
// returns true, preserving relative order.
func (g *Group) Filter(keep func(*Spectrum) bool) *Group {
	out := NewGroup()
	for _, n := range g.order {
		s := g.byName[n]
		if keep(s) {
			out.Add(s)
		}
	}
	return out
}

// Clone returns a copy of the group in which every record is cloned with
// Spectrum.Clone: the records' input arrays are independent of g, while
// their stage-result slices are shared with g's records.
func (g *Group) Clone() *Group {
	out := NewGroup()
	for _, n := range g.order {
		out.Add(g.byName[n].Clone())
	}
	return out
}
