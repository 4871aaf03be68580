// Package types holds small generic containers shared across packages.
package types

import (
	"iter"
	"maps"
)

// Set is a generic hash set for comparable types.
//
// Sets built at package initialisation and never mutated afterwards are
// safe for concurrent reads.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the provided elements.
//
// Parameters:
//   - data: zero or more initial members; duplicates collapse.
//
// Returns:
//   - A Set containing every element of data.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set.
//
// This method modifies the Set in place.
//
// Parameters:
//   - values: elements to insert; members already present are left as is.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Has reports whether value is a member of the set.
//
// Parameters:
//   - value: the element to look up.
//
// Returns:
//   - true when value was added to the set, false otherwise.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// ToIter returns an iterator over all elements in the set.
//
// Pair it with slices.Collect and slices.Sort when a stable order matters.
//
// Returns:
//   - A Seq[T] yielding each member once, in no particular order.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}
