// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package settrie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioASets is the population from spec Scenario A, added in the
// given order.
var scenarioASets = [][]int{
	{1, 3},
	{1, 3, 5},
	{1, 4},
	{1, 2, 4},
	{2, 4},
	{2, 3, 5},
}

func newScenarioA() *SetTrie[int] {
	return NewFromSets(scenarioASets...)
}

func collect[E any](seq func(func(E) bool)) []E {
	var out []E
	for v := range seq {
		out = append(out, v)
	}
	return out
}

func TestSetTrieFullIterationOrder(t *testing.T) {
	tr := newScenarioA()
	want := [][]int{{1, 2, 4}, {1, 3}, {1, 3, 5}, {1, 4}, {2, 3, 5}, {2, 4}}
	assert.Equal(t, want, collect(tr.All()))
}

func TestSetTrieContains(t *testing.T) {
	tr := newScenarioA()
	assert.True(t, tr.Contains([]int{1, 3}))
	assert.False(t, tr.Contains([]int{1}))
	assert.False(t, tr.Contains([]int{1, 3, 5, 7}))
}

func TestSetTrieHasSuperset(t *testing.T) {
	tr := newScenarioA()
	assert.True(t, tr.HasSuperset([]int{3, 5}))
	assert.False(t, tr.HasSuperset([]int{6}))
	assert.False(t, tr.HasSuperset([]int{2, 4, 5}))
}

func TestSetTrieSupersets(t *testing.T) {
	tr := newScenarioA()

	assert.Equal(t, [][]int{{1, 3, 5}, {2, 3, 5}}, collect(tr.Supersets([]int{3, 5})))
	assert.Equal(t, [][]int{{1, 2, 4}, {1, 3}, {1, 3, 5}, {1, 4}}, collect(tr.Supersets([]int{1})))
	assert.Empty(t, collect(tr.Supersets([]int{1, 2, 4, 5})))
}

func TestSetTrieHasSubset(t *testing.T) {
	tr := newScenarioA()
	assert.True(t, tr.HasSubset([]int{1, 2, 3}))
	assert.False(t, tr.HasSubset([]int{3, 4, 5}))
}

func TestSetTrieSubsets(t *testing.T) {
	tr := newScenarioA()

	assert.Equal(t, [][]int{{1, 2, 4}, {1, 4}, {2, 4}}, collect(tr.Subsets([]int{1, 2, 4, 11})))
	assert.Equal(t, [][]int{{1, 3}, {1, 3, 5}}, collect(tr.Subsets([]int{0, 1, 3, 5})))
	assert.Equal(t, collect(tr.All()), collect(tr.Subsets([]int{1, 2, 3, 4, 5})))
}

func TestSetTrieEmpty(t *testing.T) {
	tr := NewSetTrie[int]()
	assert.Empty(t, collect(tr.All()))
	assert.True(t, tr.HasSuperset(nil))
	assert.False(t, tr.HasSuperset([]int{1}))
	assert.False(t, tr.HasSubset([]int{1, 2, 3}))
	assert.False(t, tr.HasSubset(nil))
}

func TestSetTrieAddIdempotent(t *testing.T) {
	tr := NewSetTrie[int]()
	tr.Add([]int{1, 3})
	tr.Add([]int{1, 3})
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, [][]int{{1, 3}}, collect(tr.All()))
}

func TestSetTrieLen(t *testing.T) {
	tr := newScenarioA()
	assert.Equal(t, len(scenarioASets), tr.Len())
}

func TestSetTrieAddSortsElements(t *testing.T) {
	tr := NewSetTrie[int]()
	tr.Add([]int{5, 1, 3})
	assert.True(t, tr.Contains([]int{1, 3, 5}))
}

func TestSetTrieString(t *testing.T) {
	tr := newScenarioA()
	got := tr.String()
	require.True(t, strings.HasPrefix(got, "["))
	require.True(t, strings.HasSuffix(got, "]"))
	assert.Contains(t, got, "[1 3]")
}

func TestSetTrieFprint(t *testing.T) {
	tr := NewSetTrie[int]()
	tr.Add([]int{1, 3})

	var b strings.Builder
	require.NoError(t, tr.Fprint(&b, ' ', 2))

	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "None", lines[0])
	assert.Equal(t, "  1", lines[1])
	assert.Equal(t, "    3#", lines[2])
}

func TestSetTrieFprintEmptyRootIsNone(t *testing.T) {
	tr := NewSetTrie[int]()
	var b strings.Builder
	require.NoError(t, tr.Fprint(&b, ' ', 2))
	assert.Equal(t, "None\n", b.String())
}
