// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package children implements a generic ordered container keyed by
// element value, the systems-language reading of "an ordered collection
// keyed by element value" from the set-trie design notes: a node's
// children must be found, inserted, and enumerated in O(log k) / O(k)
// ascending order, with no duplicate keys among siblings.
//
// It plays the role that a popcount-compressed sparse array plays for a
// fixed byte domain, generalized to an arbitrary cmp.Ordered key: a
// sorted slice of keys paired with a parallel slice of payloads, found by
// binary search.
package children

import (
	"cmp"
	"iter"
	"slices"
)

// Set is a sorted slice of (key, node) pairs, ascending by key, with no
// duplicate keys. The zero value is an empty, usable Set.
type Set[T cmp.Ordered, N any] struct {
	keys  []T
	items []N
}

// Len returns the number of children in the set.
func (s *Set[T, N]) Len() int {
	return len(s.keys)
}

// Get returns the node keyed by k, if present.
func (s *Set[T, N]) Get(k T) (N, bool) {
	if i, ok := s.search(k); ok {
		return s.items[i], true
	}
	var zero N
	return zero, false
}

// search finds the index of k among the sorted keys.
func (s *Set[T, N]) search(k T) (int, bool) {
	return slices.BinarySearchFunc(s.keys, k, cmp.Compare[T])
}

// GetOrInsert returns the existing node keyed by k if present; otherwise
// it calls newNode, inserts the result at the correct sorted position,
// and returns it. The bool result reports whether the node already
// existed.
func (s *Set[T, N]) GetOrInsert(k T, newNode func() N) (N, bool) {
	i, ok := s.search(k)
	if ok {
		return s.items[i], true
	}

	n := newNode()
	s.keys = slices.Insert(s.keys, i, k)
	s.items = slices.Insert(s.items, i, n)
	return n, false
}

// Ascend returns an iterator over the (key, node) pairs in ascending key
// order. Ranging over it and returning early (e.g. via a labeled break)
// is the idiomatic way to express the sorted-path pruning that superset
// and subset search rely on.
func (s *Set[T, N]) Ascend() iter.Seq2[T, N] {
	return func(yield func(T, N) bool) {
		for i, k := range s.keys {
			if !yield(k, s.items[i]) {
				return
			}
		}
	}
}
