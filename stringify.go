// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package trie

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String returns a hierarchical tree diagram of the trie as string,
// just a wrapper for [Trie.Fprint].
// If Fprint returns an error, String panics.
func (t *Trie[K]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the trie to w,
// one symbol per line, children in ascending order.
// Nodes terminating an entry are marked with a bullet.
// If w is nil, Fprint panics.
//
// After inserting "bar", "barn", "bat" and "do":
//
//	▼
//	├─ b
//	│  └─ a
//	│     ├─ r •
//	│     │  └─ n •
//	│     └─ t •
//	└─ d
//	   └─ o •
//
// An empty trie writes nothing.
func (t *Trie[K]) Fprint(w io.Writer) error {
	if t == nil || t.root.isEmpty() {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	return t.root.fprintRec(w, "")
}

// fprintRec, the output is a hierarchical tree starting with the kids of n.
func (n *node[K]) fprintRec(w io.Writer, pad string) error {
	keys := n.sortedKeys()

	// symbols used in tree
	glyphe := "├─ "
	spacer := "│  "

	for i, k := range keys {
		// ... treat last kid special
		if i == len(keys)-1 {
			glyphe = "└─ "
			spacer = "   "
		}

		kid := n.children[k]

		mark := ""
		if kid.isEnd {
			mark = " •"
		}

		if _, err := fmt.Fprintf(w, "%s%s%s\n", pad+glyphe, symbolString(k), mark); err != nil {
			return err
		}

		if err := kid.fprintRec(w, pad+spacer); err != nil {
			return err
		}
	}

	return nil
}

// symbolString formats a symbol for printing.
// A rune (int32) is printed as escaped character, everything else
// in default format.
func symbolString[K any](k K) string {
	if r, ok := any(k).(rune); ok {
		q := strconv.QuoteRune(r)
		return q[1 : len(q)-1]
	}
	return fmt.Sprint(k)
}
