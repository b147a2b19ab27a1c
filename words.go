// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package trie

import (
	"iter"
)

// Words is a trie of strings, the symbols are the runes of the words.
// The zero value is ready to use.
//
// No case folding or normalization is applied, this is a policy
// of the caller. Invalid UTF-8 bytes are stored as U+FFFD,
// the same as a range over the string yields.
type Words struct {
	Trie[rune]
}

// adapter method, string to runes
func (w *Words) Insert(word string) error {
	return w.Trie.Insert(runes(word))
}

// adapter method, string to runes
func (w *Words) Contains(word string) bool {
	return w.Trie.Contains(runes(word))
}

// adapter method, string to runes
func (w *Words) HasPrefix(prefix string) bool {
	return w.Trie.HasPrefix(runes(prefix))
}

// adapter method, string to runes
func (w *Words) Lookup(word string) (isEntry, isPrefix bool) {
	return w.Trie.Lookup(runes(word))
}

// adapter method, string to runes
func (w *Words) Delete(word string) bool {
	return w.Trie.Delete(runes(word))
}

// LongestPrefix returns the longest word that is a prefix of s.
func (w *Words) LongestPrefix(s string) (string, bool) {
	lpm, ok := w.Trie.LongestPrefix(runes(s))
	return string(lpm), ok
}

// All returns an iterator over all words in lexicographic rune order.
func (w *Words) All() iter.Seq[string] {
	return asStrings(w.Trie.All())
}

// Complete returns an iterator over all words starting with prefix,
// in lexicographic rune order.
func (w *Words) Complete(prefix string) iter.Seq[string] {
	return asStrings(w.Trie.WithPrefix(runes(prefix)))
}

// Prefixes returns an iterator over all words that are a prefix of s,
// shortest first.
func (w *Words) Prefixes(s string) iter.Seq[string] {
	return asStrings(w.Trie.Prefixes(runes(s)))
}

// Clone returns a deep copy.
func (w *Words) Clone() *Words {
	if w == nil {
		return nil
	}

	c := new(Words)
	c.root = *w.root.cloneRec()
	c.size = w.size

	return c
}

// Equal reports whether w and o hold the same words.
func (w *Words) Equal(o *Words) bool {
	if w == nil || o == nil {
		return w.wordCount() == 0 && o.wordCount() == 0
	}
	return w.Trie.Equal(&o.Trie)
}

// wordCount is Size, safe for a nil receiver.
func (w *Words) wordCount() int {
	if w == nil {
		return 0
	}
	return w.size
}

// runes converts a word to a non-nil rune slice.
// The empty word results in a non-nil zero-length slice,
// Insert reports ErrEmptySequence and not ErrInvalidInput.
func runes(s string) []rune {
	rs := []rune(s)
	if rs == nil {
		rs = []rune{}
	}
	return rs
}

// asStrings converts an iterator of rune slices into strings.
func asStrings(seq iter.Seq[[]rune]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for rs := range seq {
			if !yield(string(rs)) {
				return
			}
		}
	}
}
