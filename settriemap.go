// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package settrie

import (
	"cmp"
	"fmt"
	"io"
	"iter"
)

// KV is a key/value pair, used by NewMapFromPairs to seed a SetTrieMap.
type KV[T cmp.Ordered, V any] struct {
	Key   []T
	Value V
}

// SetTrieMap is a set-trie keyed by sets of T, mapping each stored key to
// a single value of type V.
type SetTrieMap[T cmp.Ordered, V any] struct {
	root *node[T, V]
	size int
}

// NewSetTrieMap returns an empty SetTrieMap.
func NewSetTrieMap[T cmp.Ordered, V any]() *SetTrieMap[T, V] {
	return &SetTrieMap[T, V]{root: &node[T, V]{}}
}

// NewMapFromPairs returns a SetTrieMap populated by assigning every pair
// in order, the Go-idiomatic counterpart of the original constructor that
// accepted an optional iterable of (key, value) pairs.
func NewMapFromPairs[T cmp.Ordered, V any](pairs ...KV[T, V]) *SetTrieMap[T, V] {
	m := NewSetTrieMap[T, V]()
	for _, kv := range pairs {
		m.Assign(kv.Key, kv.Value)
	}
	return m
}

// Assign stores v under key k, overwriting any value already stored
// there.
func (m *SetTrieMap[T, V]) Assign(k []T, v V) {
	path := sortedCopy(k)
	if insert(m.root, path, func(V, bool) V { return v }) {
		m.size++
	}
}

// Get returns the value stored under k, if present.
func (m *SetTrieMap[T, V]) Get(k []T) (V, bool) {
	return lookup(m.root, sortedCopy(k))
}

// GetOr returns the value stored under k, or def if k is not present.
func (m *SetTrieMap[T, V]) GetOr(k []T, def V) V {
	if v, ok := m.Get(k); ok {
		return v
	}
	return def
}

// Contains reports whether k is present, exactly, as a key.
func (m *SetTrieMap[T, V]) Contains(k []T) bool {
	_, ok := m.Get(k)
	return ok
}

// HasSuperset reports whether any stored key is a superset of q.
func (m *SetTrieMap[T, V]) HasSuperset(q []T) bool {
	return hasSuperset(m.root, sortedCopy(q), 0)
}

// HasSubset reports whether any stored key is a subset of q.
func (m *SetTrieMap[T, V]) HasSubset(q []T) bool {
	return hasSubset(m.root, sortedCopy(q), 0)
}

// SupersetKeys returns the key sets of every stored pair whose key is a
// superset of q, in pre-order.
func (m *SetTrieMap[T, V]) SupersetKeys(q []T) iter.Seq[[]T] {
	return projectKeys(supersets(m.root, sortedCopy(q)))
}

// SupersetValues returns the values of every stored pair whose key is a
// superset of q, in pre-order.
func (m *SetTrieMap[T, V]) SupersetValues(q []T) iter.Seq[V] {
	return projectValues(supersets(m.root, sortedCopy(q)))
}

// Supersets returns (key, value) pairs for every stored entry whose key
// is a superset of q, in pre-order.
func (m *SetTrieMap[T, V]) Supersets(q []T) iter.Seq2[[]T, V] {
	return projectPairs(supersets(m.root, sortedCopy(q)))
}

// SubsetKeys returns the key sets of every stored pair whose key is a
// subset of q, in pre-order.
func (m *SetTrieMap[T, V]) SubsetKeys(q []T) iter.Seq[[]T] {
	return projectKeys(subsets(m.root, sortedCopy(q)))
}

// SubsetValues returns the values of every stored pair whose key is a
// subset of q, in pre-order.
func (m *SetTrieMap[T, V]) SubsetValues(q []T) iter.Seq[V] {
	return projectValues(subsets(m.root, sortedCopy(q)))
}

// Subsets returns (key, value) pairs for every stored entry whose key is
// a subset of q, in pre-order.
func (m *SetTrieMap[T, V]) Subsets(q []T) iter.Seq2[[]T, V] {
	return projectPairs(subsets(m.root, sortedCopy(q)))
}

// Keys returns the key sets of every stored entry, in pre-order. It is an
// alias for full iteration in keys mode.
func (m *SetTrieMap[T, V]) Keys() iter.Seq[[]T] {
	return projectKeys(all(m.root))
}

// Values returns the values of every stored entry, in pre-order. It is an
// alias for full iteration in values mode.
func (m *SetTrieMap[T, V]) Values() iter.Seq[V] {
	return projectValues(all(m.root))
}

// Items returns (key, value) pairs for every stored entry, in pre-order.
// It is an alias for full iteration in pairs mode, the default
// projection.
func (m *SetTrieMap[T, V]) Items() iter.Seq2[[]T, V] {
	return projectPairs(all(m.root))
}

// Len returns the number of distinct keys stored in the map.
func (m *SetTrieMap[T, V]) Len() int {
	return m.size
}

// Fprint writes a pre-order, indented debugging dump of the map to w.
// Terminal lines end with ": <value-repr>".
func (m *SetTrieMap[T, V]) Fprint(w io.Writer, padChar byte, tabSize int) error {
	return dumpNode(w, m.root, 0, padChar, tabSize, valueTerminalSuffix[V])
}

// String returns the list-representation of the map's full pre-order
// (key, value) enumeration.
func (m *SetTrieMap[T, V]) String() string {
	var items []string
	for k, v := range m.Items() {
		items = append(items, fmt.Sprintf("(%v, %#v)", k, v))
	}
	return listRepr(items)
}
