// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package trie

import (
	"cmp"
	"errors"
	"slices"
	"sync"
)

var (
	// ErrInvalidInput is returned by Insert for a nil sequence.
	ErrInvalidInput = errors.New("trie: invalid input, nil sequence")

	// ErrEmptySequence is returned by Insert for a zero-length sequence.
	// The root is never the terminus of an entry.
	ErrEmptySequence = errors.New("trie: empty sequence")
)

// Trie is a prefix tree over sequences of symbols K.
// The zero value is ready to use.
//
// A Trie is not safe for concurrent mutation, see the SyncTrie example
// for a copy-on-write wrapper with lock-free readers.
type Trie[K cmp.Ordered] struct {
	// used by -copylocks checker from `go vet`.
	_ [0]sync.Mutex

	// the root node has no incoming symbol and is never an entry
	root node[K]

	// the number of entries in the trie
	size int
}

// pathItem records one edge of a descent,
// parent --sym--> child.
type pathItem[K cmp.Ordered] struct {
	parent *node[K]
	sym    K
	child  *node[K]
}

// Insert adds seq to the trie (idempotent).
// If seq is already present, the operation is a no-op.
//
// Insert returns ErrInvalidInput for a nil seq and ErrEmptySequence
// for a zero-length seq. The trie is not modified in both cases.
func (t *Trie[K]) Insert(seq []K) error {
	if err := validate(seq); err != nil {
		return err
	}

	n := &t.root
	for _, k := range seq {
		n, _ = n.getOrCreateChild(k)
	}

	if n.isEnd {
		return nil
	}

	// true insert, update size
	n.isEnd = true
	t.size++

	return nil
}

// Contains reports whether seq was inserted as a complete entry.
// The runtime is O(len(seq)), independent of the trie size.
func (t *Trie[K]) Contains(seq []K) bool {
	if len(seq) == 0 {
		return false
	}

	n := t.find(seq)
	return n != nil && n.isEnd
}

// HasPrefix reports whether any entry starts with prefix.
// It is not required that prefix itself is an entry.
//
// The zero-length prefix is a prefix of every entry,
// HasPrefix(nil) reports whether the trie is non-empty.
func (t *Trie[K]) HasPrefix(prefix []K) bool {
	n := t.find(prefix)
	return n != nil && (n.isEnd || n.hasChildren())
}

// Lookup answers Contains and HasPrefix with a single descent.
func (t *Trie[K]) Lookup(seq []K) (isEntry, isPrefix bool) {
	n := t.find(seq)
	if n == nil {
		return false, false
	}

	isPrefix = n.isEnd || n.hasChildren()
	isEntry = n.isEnd && len(seq) != 0

	return isEntry, isPrefix
}

// Delete removes seq as a complete entry and reports whether it was present.
//
// Nodes no longer needed by any other entry are unlinked bottom-up.
// If seq was not inserted, maybe just a prefix of longer entries,
// Delete returns false and the trie is not modified.
func (t *Trie[K]) Delete(seq []K) (found bool) {
	if len(seq) == 0 {
		return false
	}

	// record the edges on the path to the deleted node,
	// needed to purge nodes after the deletion of an entry
	stack := make([]pathItem[K], 0, len(seq))

	n := &t.root
	for _, k := range seq {
		kid := n.getChild(k)
		if kid == nil {
			// path breaks, seq was never present
			return false
		}

		stack = append(stack, pathItem[K]{parent: n, sym: k, child: kid})
		n = kid
	}

	// seq exists only as a prefix of longer entries
	if !n.isEnd {
		return false
	}

	n.isEnd = false
	t.size--

	purge(stack)

	return true
}

// purge unlinks now useless nodes, bottom-up along the recorded path.
// It stops at the first node still needed, either as terminus of another
// entry or as shared prefix. The root is never a child in the stack
// and therefore never unlinked.
func purge[K cmp.Ordered](stack []pathItem[K]) {
	for i := len(stack) - 1; i >= 0; i-- {
		item := stack[i]

		if item.child.isEnd || item.child.hasChildren() {
			return
		}

		item.parent.removeChild(item.sym)
	}
}

// LongestPrefix returns the longest entry that is a prefix of seq.
// The entry may be seq itself.
func (t *Trie[K]) LongestPrefix(seq []K) (lpm []K, ok bool) {
	if t == nil {
		return nil, false
	}

	best := -1

	n := &t.root
	for i, k := range seq {
		if n = n.getChild(k); n == nil {
			break
		}
		if n.isEnd {
			best = i + 1
		}
	}

	if best < 0 {
		return nil, false
	}

	return slices.Clone(seq[:best]), true
}

// Size returns the number of entries in the trie.
func (t *Trie[K]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the trie holds no entries.
func (t *Trie[K]) IsEmpty() bool {
	return t.Size() == 0
}

// Clone returns a deep copy of the trie.
func (t *Trie[K]) Clone() *Trie[K] {
	if t == nil {
		return nil
	}

	c := new(Trie[K])
	c.root = *t.root.cloneRec()
	c.size = t.size

	return c
}

// Equal reports whether t and o hold the same entries.
func (t *Trie[K]) Equal(o *Trie[K]) bool {
	if t == nil || o == nil {
		return t.IsEmpty() && o.IsEmpty()
	}
	if t == o {
		return true
	}

	if t.size != o.size {
		return false
	}

	return t.root.equalRec(&o.root)
}

// find descends from the root along seq and returns the
// node at the end of the path or nil if the path breaks.
func (t *Trie[K]) find(seq []K) *node[K] {
	if t == nil {
		return nil
	}

	n := &t.root
	for _, k := range seq {
		if n = n.getChild(k); n == nil {
			return nil
		}
	}
	return n
}

// validate rejects nil and zero-length sequences for Insert.
func validate[K any](seq []K) error {
	if seq == nil {
		return ErrInvalidInput
	}
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	return nil
}
