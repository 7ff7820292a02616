package tour

import (
	"maps"
	"slices"
)

// ── Set[T comparable] ─────────────────────────────────────────────────────────
// Go has no set type; a map with empty-struct values is the idiom. The
// zero-size value means the map stores keys only.

// Set is an unordered collection of unique values.
type Set[T comparable] struct {
	m map[T]struct{}
}

// NewSet returns a set holding vals, duplicates collapsed.
func NewSet[T comparable](vals ...T) *Set[T] {
	s := &Set[T]{m: make(map[T]struct{}, len(vals))}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// Add inserts v. Adding a present value changes nothing.
func (s *Set[T]) Add(v T)           { s.m[v] = struct{}{} }
func (s *Set[T]) Remove(v T)        { delete(s.m, v) }
func (s *Set[T]) Contains(v T) bool { _, ok := s.m[v]; return ok }
func (s *Set[T]) Len() int          { return len(s.m) }

// Slice returns the elements in no particular order.
func (s *Set[T]) Slice() []T {
	return slices.Collect(maps.Keys(s.m))
}

// demoCollections fills the three everyday containers: an ordered slice, a
// set and a map. None of them is printed here; the closures section walks
// the slice afterwards.
func (r *Runner) demoCollections() {
	var list []string // nil slice: append allocates on first use
	for _, v := range r.in.List {
		list = append(list, v)
	}

	set := NewSet[int]()
	for _, v := range r.in.Set {
		set.Add(v)
	}

	m := make(map[string]int, len(r.in.Map))
	for k, v := range r.in.Map {
		m[k] = v
	}

	r.state.List = list
	r.state.Set = set
	r.state.Map = m
}

// list returns the slice built by the collections section, building it when
// that section was skipped.
func (r *Runner) list() []string {
	if r.state.List == nil {
		r.state.List = slices.Clone(r.in.List)
	}
	return r.state.List
}
