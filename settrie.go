// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package settrie implements a set-trie: an in-memory index over sets of
// sets supporting exact membership, superset/subset containment queries
// (as existence predicates and as enumerations), and ordered traversal.
//
// SetTrie holds a plain collection of sets. SetTrieMap additionally maps
// each stored set to a single value, and SetTrieMultiMap maps each stored
// set to an ordered, possibly repeating list of values.
//
// All three containers are single-threaded: there is no internal
// synchronization, and mutating a container while ranging over an
// iterator obtained from it is undefined behavior.
package settrie

import (
	"cmp"
	"io"
	"iter"
)

// SetTrie is a set-trie container of sets of T, supporting efficient
// superset/subset containment queries over the stored collection.
type SetTrie[T cmp.Ordered] struct {
	root *node[T, struct{}]
	size int
}

// NewSetTrie returns an empty SetTrie.
func NewSetTrie[T cmp.Ordered]() *SetTrie[T] {
	return &SetTrie[T]{root: &node[T, struct{}]{}}
}

// NewFromSets returns a SetTrie populated with every set in sets, added in
// order. It is the Go-idiomatic counterpart of the original constructor
// that accepted an optional iterable of sets.
func NewFromSets[T cmp.Ordered](sets ...[]T) *SetTrie[T] {
	t := NewSetTrie[T]()
	for _, s := range sets {
		t.Add(s)
	}
	return t
}

// Add inserts set s into the trie. Adding an already-present set is
// idempotent.
func (t *SetTrie[T]) Add(s []T) {
	path := sortedCopy(s)
	if insert(t.root, path, func(struct{}, bool) struct{} { return struct{}{} }) {
		t.size++
	}
}

// Contains reports whether s is present, exactly, in the trie.
func (t *SetTrie[T]) Contains(s []T) bool {
	_, ok := lookup(t.root, sortedCopy(s))
	return ok
}

// HasSuperset reports whether any stored set is a superset of q
// (including equal to q).
func (t *SetTrie[T]) HasSuperset(q []T) bool {
	return hasSuperset(t.root, sortedCopy(q), 0)
}

// HasSubset reports whether any stored set is a subset of q (including
// equal to q).
func (t *SetTrie[T]) HasSubset(q []T) bool {
	return hasSubset(t.root, sortedCopy(q), 0)
}

// Supersets returns a lazy, pre-order sequence of every stored set that
// is a superset of q. Each call returns an independent traversal.
func (t *SetTrie[T]) Supersets(q []T) iter.Seq[[]T] {
	return projectKeys(supersets(t.root, sortedCopy(q)))
}

// Subsets returns a lazy, pre-order sequence of every stored set that is
// a subset of q. Each call returns an independent traversal.
func (t *SetTrie[T]) Subsets(q []T) iter.Seq[[]T] {
	return projectKeys(subsets(t.root, sortedCopy(q)))
}

// All returns a lazy, pre-order sequence of every stored set.
func (t *SetTrie[T]) All() iter.Seq[[]T] {
	return projectKeys(all(t.root))
}

// Len returns the number of distinct sets stored in the trie.
func (t *SetTrie[T]) Len() int {
	return t.size
}

// Fprint writes a pre-order, indented debugging dump of the trie to w.
// Indentation at each level is tabSize copies of padChar; terminal lines
// end with "#". The root prints literally as "None".
func (t *SetTrie[T]) Fprint(w io.Writer, padChar byte, tabSize int) error {
	return dumpNode(w, t.root, 0, padChar, tabSize, plainTerminalSuffix[struct{}])
}

// String returns the list-representation of the trie's full pre-order
// enumeration.
func (t *SetTrie[T]) String() string {
	var paths [][]T
	for s := range t.All() {
		paths = append(paths, s)
	}
	return listRepr(paths)
}
