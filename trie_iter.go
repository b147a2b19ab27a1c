// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package trie

import (
	"iter"
	"slices"
)

// All returns an iterator over all entries in lexicographic order.
//
// The trie must not be modified during iteration.
func (t *Trie[K]) All() iter.Seq[[]K] {
	return func(yield func([]K) bool) {
		if t == nil {
			return
		}
		t.root.allRec(nil, yield)
	}
}

// WithPrefix returns an iterator over all entries starting with prefix,
// in lexicographic order. An entry equal to prefix is yielded first.
//
// This is the autocomplete query, WithPrefix(nil) is the same as All.
func (t *Trie[K]) WithPrefix(prefix []K) iter.Seq[[]K] {
	return func(yield func([]K) bool) {
		if t == nil {
			return
		}

		n := t.find(prefix)
		if n == nil {
			return
		}

		// the path is extended during the descent, don't alias the input
		path := make([]K, len(prefix), len(prefix)+8)
		copy(path, prefix)

		n.allRec(path, yield)
	}
}

// Prefixes returns an iterator over all entries that are a prefix of seq,
// from the shortest to the longest. The last one yielded is the
// [Trie.LongestPrefix] of seq.
func (t *Trie[K]) Prefixes(seq []K) iter.Seq[[]K] {
	return func(yield func([]K) bool) {
		if t == nil {
			return
		}

		n := &t.root
		for i, k := range seq {
			if n = n.getChild(k); n == nil {
				return
			}

			if n.isEnd && !yield(slices.Clone(seq[:i+1])) {
				// early exit
				return
			}
		}
	}
}
