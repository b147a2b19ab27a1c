// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package trie provides an in-memory prefix tree for fast prefix based
// lookups of sequences of symbols, typically the characters of strings.
//
// Two types are provided:
//
//   - Trie[K]: generic over any ordered symbol type K, sequences are []K
//   - Words:   an adapter for strings, the symbols are the runes of a word
//
// Supported queries are exact membership (Contains), prefix existence
// (HasPrefix), longest-prefix match (LongestPrefix), and sorted enumeration
// of all entries or of all entries below a prefix (All, WithPrefix), which
// is the core of autocompletion.
//
// Delete unlinks all nodes no longer needed by another entry, the tree is
// always minimal: every leaf terminates an entry. Nodes are never merged,
// the trie is not path compressed.
//
// Empty sequences are not accepted as entries, Insert returns
// ErrEmptySequence for them. The zero-length prefix is a prefix of every
// entry.
//
// The zero value of Trie and Words is ready to use. Neither is safe for
// concurrent mutation. InsertPersist and DeletePersist return a new version
// and leave the receiver untouched, unchanged subtrees are shared. Together
// with an atomic pointer they allow lock-free readers, see the SyncTrie
// example.
package trie
