// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package settrie

import (
	"cmp"
	"fmt"
	"io"
	"iter"
)

// SetTrieMultiMap is a set-trie keyed by sets of T, mapping each stored
// key to an ordered, possibly-repeating list of values of type V.
type SetTrieMultiMap[T cmp.Ordered, V any] struct {
	root *node[T, []V]
	size int
}

// NewSetTrieMultiMap returns an empty SetTrieMultiMap.
func NewSetTrieMultiMap[T cmp.Ordered, V any]() *SetTrieMultiMap[T, V] {
	return &SetTrieMultiMap[T, V]{root: &node[T, []V]{}}
}

// NewMultiMapFromPairs returns a SetTrieMultiMap populated by assigning
// every pair in order, the Go-idiomatic counterpart of the original
// constructor that accepted an optional iterable of (key, value) pairs.
func NewMultiMapFromPairs[T cmp.Ordered, V any](pairs ...KV[T, V]) *SetTrieMultiMap[T, V] {
	m := NewSetTrieMultiMap[T, V]()
	for _, kv := range pairs {
		m.Assign(kv.Key, kv.Value)
	}
	return m
}

// Assign appends v to the list of values stored under key k, creating
// the list on first assignment. It returns the post-assignment length of
// the value list.
func (m *SetTrieMultiMap[T, V]) Assign(k []T, v V) int {
	path := sortedCopy(k)
	var count int
	isNewKey := insert(m.root, path, func(old []V, _ bool) []V {
		count = len(old) + 1
		return append(old, v)
	})
	if isNewKey {
		m.size++
	}
	return count
}

// Get returns the full ordered list of values stored under k, if k is
// present.
func (m *SetTrieMultiMap[T, V]) Get(k []T) ([]V, bool) {
	return lookup(m.root, sortedCopy(k))
}

// GetOr returns the list of values stored under k, or def if k is not
// present.
func (m *SetTrieMultiMap[T, V]) GetOr(k []T, def []V) []V {
	if v, ok := m.Get(k); ok {
		return v
	}
	return def
}

// Count returns the number of values stored under k, or 0 if k is not
// present.
func (m *SetTrieMultiMap[T, V]) Count(k []T) int {
	v, _ := m.Get(k)
	return len(v)
}

// IterGet yields each value stored under k, in insertion order.
func (m *SetTrieMultiMap[T, V]) IterGet(k []T) iter.Seq[V] {
	values, _ := m.Get(k)
	return func(yield func(V) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// Contains reports whether k is present, exactly, as a key.
func (m *SetTrieMultiMap[T, V]) Contains(k []T) bool {
	_, ok := m.Get(k)
	return ok
}

// HasSuperset reports whether any stored key is a superset of q.
func (m *SetTrieMultiMap[T, V]) HasSuperset(q []T) bool {
	return hasSuperset(m.root, sortedCopy(q), 0)
}

// HasSubset reports whether any stored key is a subset of q.
func (m *SetTrieMultiMap[T, V]) HasSubset(q []T) bool {
	return hasSubset(m.root, sortedCopy(q), 0)
}

// SupersetKeys returns the key sets of every stored entry whose key is a
// superset of q, one emission per key regardless of how many values it
// holds.
func (m *SetTrieMultiMap[T, V]) SupersetKeys(q []T) iter.Seq[[]T] {
	return projectKeys(supersets(m.root, sortedCopy(q)))
}

// SupersetValues returns every value stored under a key that is a
// superset of q, one emission per stored value occurrence.
func (m *SetTrieMultiMap[T, V]) SupersetValues(q []T) iter.Seq[V] {
	return projectMultiValues(supersets(m.root, sortedCopy(q)))
}

// Supersets returns (key, value) pairs for every value stored under a key
// that is a superset of q, one emission per stored value occurrence.
func (m *SetTrieMultiMap[T, V]) Supersets(q []T) iter.Seq2[[]T, V] {
	return projectMultiPairs(supersets(m.root, sortedCopy(q)))
}

// SubsetKeys returns the key sets of every stored entry whose key is a
// subset of q, one emission per key.
func (m *SetTrieMultiMap[T, V]) SubsetKeys(q []T) iter.Seq[[]T] {
	return projectKeys(subsets(m.root, sortedCopy(q)))
}

// SubsetValues returns every value stored under a key that is a subset of
// q, one emission per stored value occurrence.
func (m *SetTrieMultiMap[T, V]) SubsetValues(q []T) iter.Seq[V] {
	return projectMultiValues(subsets(m.root, sortedCopy(q)))
}

// Subsets returns (key, value) pairs for every value stored under a key
// that is a subset of q, one emission per stored value occurrence.
func (m *SetTrieMultiMap[T, V]) Subsets(q []T) iter.Seq2[[]T, V] {
	return projectMultiPairs(subsets(m.root, sortedCopy(q)))
}

// Keys returns the key sets of every stored entry, one emission per key.
func (m *SetTrieMultiMap[T, V]) Keys() iter.Seq[[]T] {
	return projectKeys(all(m.root))
}

// Values returns every stored value, one emission per stored value
// occurrence.
func (m *SetTrieMultiMap[T, V]) Values() iter.Seq[V] {
	return projectMultiValues(all(m.root))
}

// Items returns (key, value) pairs for every stored value, one emission
// per stored value occurrence.
func (m *SetTrieMultiMap[T, V]) Items() iter.Seq2[[]T, V] {
	return projectMultiPairs(all(m.root))
}

// Len returns the number of distinct keys stored in the multimap.
func (m *SetTrieMultiMap[T, V]) Len() int {
	return m.size
}

// Fprint writes a pre-order, indented debugging dump of the multimap to
// w. Terminal lines end with ": <value-repr>", where <value-repr> is the
// Go debug rendering of the stored value list.
func (m *SetTrieMultiMap[T, V]) Fprint(w io.Writer, padChar byte, tabSize int) error {
	return dumpNode(w, m.root, 0, padChar, tabSize, valueTerminalSuffix[[]V])
}

// String returns the list-representation of the multimap's full
// pre-order (key, value) enumeration, one entry per stored value.
func (m *SetTrieMultiMap[T, V]) String() string {
	var items []string
	for k, v := range m.Items() {
		items = append(items, fmt.Sprintf("(%v, %#v)", k, v))
	}
	return listRepr(items)
}
