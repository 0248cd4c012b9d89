// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package settrie

import (
	"cmp"
	"iter"
	"slices"

	"github.com/go-settrie/settrie/internal/children"
)

// node is a single trie vertex shared by SetTrie, SetTrieMap and
// SetTrieMultiMap. Rather than a three-level inheritance chain
// (MultiMap-from-Map-from-Trie), the terminal payload is generic over P:
// SetTrie uses P = struct{}, SetTrieMap uses P = V, SetTrieMultiMap uses
// P = []V. A fold function (passed in by the three public wrappers, never
// stored on the node) decides how a new assignment merges into an existing
// terminal, and the project* functions below decide how many results a
// terminal contributes during enumeration.
//
// The root node has hasData == false and carries no label; every other
// node carries exactly one element of T, strictly greater than its
// parent's (the sorted-path invariant).
type node[T cmp.Ordered, P any] struct {
	data     T
	hasData  bool
	terminal bool
	payload  P
	kids     children.Set[T, *node[T, P]]
}

// fold computes the new payload for a terminal node given its previous
// payload (zero value and exists=false if the node was not terminal yet).
type fold[P any] func(old P, exists bool) P

// insert walks/extends the path for the sorted elements in path, creating
// nodes as needed, and applies f to the final node's payload. It reports
// whether the final node was not already terminal (i.e. this is a newly
// stored key).
func insert[T cmp.Ordered, P any](root *node[T, P], path []T, f fold[P]) (isNewKey bool) {
	n := root
	for _, e := range path {
		elem := e
		child, _ := n.kids.GetOrInsert(elem, func() *node[T, P] {
			return &node[T, P]{data: elem, hasData: true}
		})
		n = child
	}

	isNewKey = !n.terminal
	n.payload = f(n.payload, n.terminal)
	n.terminal = true
	return isNewKey
}

// lookup walks the exact path of elements and returns the terminal
// payload, if the path exists and ends at a terminal node.
func lookup[T cmp.Ordered, P any](root *node[T, P], path []T) (p P, ok bool) {
	n := root
	for _, e := range path {
		child, found := n.kids.Get(e)
		if !found {
			return p, false
		}
		n = child
	}
	if !n.terminal {
		return p, false
	}
	return n.payload, true
}

// hasSuperset reports whether any stored path is a superset of q, the
// sorted query elements not yet consumed starting at q[idx].
//
// Children are scanned in ascending order: a child greater than q[idx]
// can be skipped entirely (no later sibling can equal q[idx] either,
// since siblings are sorted and any greater sibling skips past it), a
// child equal to q[idx] consumes it, and a child smaller than q[idx] is
// still worth descending into since it may lead to a deeper match.
func hasSuperset[T cmp.Ordered, P any](n *node[T, P], q []T, idx int) bool {
	if idx == len(q) {
		return true
	}

	for _, child := range n.kids.Ascend() {
		if child.data > q[idx] {
			break
		}
		if child.data == q[idx] {
			if hasSuperset(child, q, idx+1) {
				return true
			}
			continue
		}
		if hasSuperset(child, q, idx) {
			return true
		}
	}
	return false
}

// hasSubset reports whether any stored path is a subset of q[idx:], q
// sorted ascending. Skipping q[idx] (searching the same node at idx+1)
// tries candidate subsets that simply don't use that element.
func hasSubset[T cmp.Ordered, P any](n *node[T, P], q []T, idx int) bool {
	if n.terminal {
		return true
	}
	if idx == len(q) {
		return false
	}
	if child, ok := n.kids.Get(q[idx]); ok {
		if hasSubset(child, q, idx+1) {
			return true
		}
	}
	return hasSubset(n, q, idx+1)
}

// result is one terminal reached during a trie walk: the sorted path of
// element labels from (but not including) the root, and the payload
// stored there.
type result[T any, P any] struct {
	path    []T
	payload P
}

// supersets walks the trie yielding one result per stored path that is a
// superset of q (q sorted ascending), in pre-order.
func supersets[T cmp.Ordered, P any](root *node[T, P], q []T) iter.Seq[result[T, P]] {
	return func(yield func(result[T, P]) bool) {
		var path []T
		var walk func(n *node[T, P], rem []T) bool
		walk = func(n *node[T, P], rem []T) bool {
			if n.hasData {
				path = append(path, n.data)
				defer func() { path = path[:len(path)-1] }()
			}

			if len(rem) > 0 {
				cur := rem[0]
				for _, child := range n.kids.Ascend() {
					if child.data < cur {
						if !walk(child, rem) {
							return false
						}
						continue
					}
					if child.data == cur {
						if !walk(child, rem[1:]) {
							return false
						}
						continue
					}
					break
				}
				return true
			}

			if n.terminal {
				if !yield(result[T, P]{path: slices.Clone(path), payload: n.payload}) {
					return false
				}
			}
			for _, child := range n.kids.Ascend() {
				if !walkAll(child, &path, yield) {
					return false
				}
			}
			return true
		}
		walk(root, q)
	}
}

// walkAll performs an unrestricted pre-order traversal beneath n, used
// once a superset query has consumed all of its remaining elements: every
// terminal below is a valid result.
func walkAll[T cmp.Ordered, P any](n *node[T, P], path *[]T, yield func(result[T, P]) bool) bool {
	if n.hasData {
		*path = append(*path, n.data)
		defer func() { *path = (*path)[:len(*path)-1] }()
	}

	if n.terminal {
		if !yield(result[T, P]{path: slices.Clone(*path), payload: n.payload}) {
			return false
		}
	}
	for _, child := range n.kids.Ascend() {
		if !walkAll(child, path, yield) {
			return false
		}
	}
	return true
}

// subsets walks the trie yielding one result per stored path that is a
// subset of q, treating q as a membership oracle: at each node, only
// children whose label is in q are descended into.
func subsets[T cmp.Ordered, P any](root *node[T, P], q []T) iter.Seq[result[T, P]] {
	in := func(e T) bool {
		_, ok := slices.BinarySearch(q, e)
		return ok
	}

	return func(yield func(result[T, P]) bool) {
		var path []T
		var walk func(n *node[T, P]) bool
		walk = func(n *node[T, P]) bool {
			if n.hasData {
				path = append(path, n.data)
				defer func() { path = path[:len(path)-1] }()
			}

			if n.terminal {
				if !yield(result[T, P]{path: slices.Clone(path), payload: n.payload}) {
					return false
				}
			}
			for _, child := range n.kids.Ascend() {
				if in(child.data) {
					if !walk(child) {
						return false
					}
				}
			}
			return true
		}
		walk(root)
	}
}

// all performs the full pre-order traversal, yielding every stored path.
func all[T cmp.Ordered, P any](root *node[T, P]) iter.Seq[result[T, P]] {
	return func(yield func(result[T, P]) bool) {
		var path []T
		walkAll(root, &path, yield)
	}
}

// sortedCopy returns a freshly sorted copy of s with repeated elements
// collapsed, so callers' slices are never mutated, the original iteration
// order is never observed, and labels along a path stay strictly
// ascending.
func sortedCopy[T cmp.Ordered](s []T) []T {
	out := slices.Clone(s)
	slices.Sort(out)
	return slices.Compact(out)
}

// projectKeys discards the payload of each result, yielding only the key
// path. Shared by SetTrie (whose payload carries nothing) and the
// keys-mode projection of SetTrieMap/SetTrieMultiMap, where a key is
// emitted exactly once per terminal regardless of how many values it
// holds.
func projectKeys[T cmp.Ordered, P any](seq iter.Seq[result[T, P]]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for r := range seq {
			if !yield(r.path) {
				return
			}
		}
	}
}

// projectPairs pairs each key with its single stored value, the
// SetTrieMap projection strategy: one emission per terminal.
func projectPairs[T cmp.Ordered, V any](seq iter.Seq[result[T, V]]) iter.Seq2[[]T, V] {
	return func(yield func([]T, V) bool) {
		for r := range seq {
			if !yield(r.path, r.payload) {
				return
			}
		}
	}
}

// projectValues yields each terminal's single stored value, discarding
// the key.
func projectValues[T cmp.Ordered, V any](seq iter.Seq[result[T, V]]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for r := range seq {
			if !yield(r.payload) {
				return
			}
		}
	}
}

// projectMultiPairs pairs each key with every value stored under it, in
// insertion order: the SetTrieMultiMap projection strategy, one emission
// per stored value occurrence rather than per terminal.
func projectMultiPairs[T cmp.Ordered, V any](seq iter.Seq[result[T, []V]]) iter.Seq2[[]T, V] {
	return func(yield func([]T, V) bool) {
		for r := range seq {
			for _, v := range r.payload {
				if !yield(r.path, v) {
					return
				}
			}
		}
	}
}

// projectMultiValues yields every value stored under each matching key,
// in insertion order, discarding the key.
func projectMultiValues[T cmp.Ordered, V any](seq iter.Seq[result[T, []V]]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for r := range seq {
			for _, v := range r.payload {
				if !yield(v) {
					return
				}
			}
		}
	}
}
