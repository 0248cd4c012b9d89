// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package settrie

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpNode writes one line per node in pre-order, starting at n, to w.
// Indentation is level*tabSize copies of padChar. The root (hasData ==
// false) prints literally as "None" — tests elsewhere pin this exact
// string, carried over from the original pysettrie pretty-printer
// verbatim. A terminal line gets a trailing suffix from terminalSuffix.
func dumpNode[T cmp.Ordered, P any](w io.Writer, n *node[T, P], level int, padChar byte, tabSize int, terminalSuffix func(P) string) error {
	indent := strings.Repeat(string(padChar), level*tabSize)

	label := "None"
	if n.hasData {
		label = fmt.Sprint(n.data)
	}

	line := indent + label
	if n.terminal {
		line += terminalSuffix(n.payload)
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	for _, child := range n.kids.Ascend() {
		if err := dumpNode(w, child, level+1, padChar, tabSize, terminalSuffix); err != nil {
			return err
		}
	}
	return nil
}

// plainTerminalSuffix marks a terminal node with "#", the plain-trie
// pretty-print convention (no payload to show).
func plainTerminalSuffix[P any](P) string {
	return "#"
}

// valueTerminalSuffix renders a terminal node as ": <value-repr>" for the
// Map/MultiMap variants, where <value-repr> is the Go debug rendering of
// the stored payload (or payload list, for MultiMap).
func valueTerminalSuffix[P any](p P) string {
	return fmt.Sprintf(": %#v", p)
}

// listRepr renders items as a bracketed, space-separated list, the
// container's String() value per the stringification rule
// ("list-representation of its full enumeration in pre-order").
func listRepr[E any](items []E) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", it)
	}
	b.WriteByte(']')
	return b.String()
}
