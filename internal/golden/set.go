// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden provides a simple and slow reference implementation
// of the trie operations, as a golden model for property and fuzz tests.
package golden

import (
	"cmp"
	"slices"
)

// Set is a simple and slow set of sequences, implemented as a slice.
type Set[K cmp.Ordered] [][]K

// Insert adds seq, duplicates are ignored.
// Zero-length sequences are rejected, the same as the trie does.
func (s *Set[K]) Insert(seq []K) bool {
	if len(seq) == 0 {
		return false
	}
	if s.Contains(seq) {
		return false
	}
	*s = append(*s, slices.Clone(seq))
	return true
}

// Delete removes seq and reports whether it was present.
func (s *Set[K]) Delete(seq []K) bool {
	for i, item := range *s {
		if slices.Equal(item, seq) {
			*s = slices.Delete(*s, i, i+1)
			return true
		}
	}
	return false
}

// Contains reports whether seq is in the set.
func (s Set[K]) Contains(seq []K) bool {
	for _, item := range s {
		if slices.Equal(item, seq) {
			return true
		}
	}
	return false
}

// HasPrefix reports whether any item starts with prefix.
func (s Set[K]) HasPrefix(prefix []K) bool {
	for _, item := range s {
		if hasPrefix(item, prefix) {
			return true
		}
	}
	return false
}

// LongestPrefix returns the longest item that is a prefix of seq.
func (s Set[K]) LongestPrefix(seq []K) (lpm []K, ok bool) {
	for _, item := range s {
		if hasPrefix(seq, item) && len(item) > len(lpm) {
			lpm = item
			ok = true
		}
	}
	return slices.Clone(lpm), ok
}

// WithPrefix returns all items starting with prefix, sorted.
func (s Set[K]) WithPrefix(prefix []K) [][]K {
	var result [][]K
	for _, item := range s {
		if hasPrefix(item, prefix) {
			result = append(result, slices.Clone(item))
		}
	}
	slices.SortFunc(result, slices.Compare[[]K])
	return result
}

// Prefixes returns all items that are a prefix of seq, shortest first.
func (s Set[K]) Prefixes(seq []K) [][]K {
	var result [][]K
	for _, item := range s {
		if hasPrefix(seq, item) {
			result = append(result, slices.Clone(item))
		}
	}
	slices.SortFunc(result, func(a, b []K) int {
		return cmp.Compare(len(a), len(b))
	})
	return result
}

// AllSorted returns all items in lexicographic order.
func (s Set[K]) AllSorted() [][]K {
	return s.WithPrefix(nil)
}

// hasPrefix, a generic strings.HasPrefix.
func hasPrefix[K comparable](seq, prefix []K) bool {
	return len(seq) >= len(prefix) && slices.Equal(seq[:len(prefix)], prefix)
}
