// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package settrie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioBValues pairs with scenarioASets, in order, per spec Scenario B.
var scenarioBValues = []string{"A", "B", "C", "D", "E", "F"}

func newScenarioB() *SetTrieMap[int, string] {
	m := NewSetTrieMap[int, string]()
	for i, s := range scenarioASets {
		m.Assign(s, scenarioBValues[i])
	}
	return m
}

func TestSetTrieMapGet(t *testing.T) {
	m := newScenarioB()

	v, ok := m.Get([]int{1, 3})
	require.True(t, ok)
	assert.Equal(t, "A", v)

	v, ok = m.Get([]int{2, 3, 5})
	require.True(t, ok)
	assert.Equal(t, "F", v)

	_, ok = m.Get([]int{1, 2, 3})
	assert.False(t, ok)
}

func TestSetTrieMapGetOrDefault(t *testing.T) {
	m := NewSetTrieMap[int, int]()
	assert.Equal(t, 0xDEADBEEF, m.GetOr([]int{100, 101, 102}, 0xDEADBEEF))
}

func TestSetTrieMapSupersetsPairs(t *testing.T) {
	m := newScenarioB()

	var got [][2]any
	for k, v := range m.Supersets([]int{3, 5}) {
		got = append(got, [2]any{k, v})
	}
	require.Len(t, got, 2)
	assert.Equal(t, []int{1, 3, 5}, got[0][0])
	assert.Equal(t, "B", got[0][1])
	assert.Equal(t, []int{2, 3, 5}, got[1][0])
	assert.Equal(t, "F", got[1][1])
}

func TestSetTrieMapSupersetValues(t *testing.T) {
	m := newScenarioB()

	var got []string
	for v := range m.SupersetValues([]int{1}) {
		got = append(got, v)
	}
	assert.Equal(t, []string{"D", "A", "B", "C"}, got)
}

func TestSetTrieMapAssignOverwrites(t *testing.T) {
	m := newScenarioB()
	m.Assign([]int{1, 3}, "AAA")

	v, ok := m.Get([]int{1, 3})
	require.True(t, ok)
	assert.Equal(t, "AAA", v)
	assert.Equal(t, len(scenarioASets), m.Len())
}

func TestSetTrieMapKeysValuesItemsAliases(t *testing.T) {
	m := newScenarioB()

	var keys [][]int
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	var fromItemsKeys [][]int
	var fromItemsValues []string
	for k, v := range m.Items() {
		fromItemsKeys = append(fromItemsKeys, k)
		fromItemsValues = append(fromItemsValues, v)
	}
	assert.Equal(t, keys, fromItemsKeys)

	var values []string
	for v := range m.Values() {
		values = append(values, v)
	}
	assert.Equal(t, values, fromItemsValues)
}

func TestSetTrieMapContainsAndHasSuperSub(t *testing.T) {
	m := newScenarioB()
	assert.True(t, m.Contains([]int{1, 3}))
	assert.False(t, m.Contains([]int{9, 9, 9}))
	assert.True(t, m.HasSuperset([]int{3, 5}))
	assert.True(t, m.HasSubset([]int{1, 2, 3}))
}

func TestSetTrieMapFprintValueRepr(t *testing.T) {
	m := NewSetTrieMap[int, string]()
	m.Assign([]int{1, 3}, "A")

	var b strings.Builder
	require.NoError(t, m.Fprint(&b, ' ', 2))
	assert.Contains(t, b.String(), `3: "A"`)
}
