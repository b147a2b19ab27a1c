// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package trie

// InsertPersist is similar to Insert but the receiver isn't modified.
//
// All nodes touched during insert are cloned and a new Trie is returned.
// This is not a full [Trie.Clone], all untouched nodes are still referenced
// from both tries.
//
// On error the receiver is returned unchanged.
//
// The bulk load could be done with [Trie.Insert] and then you can
// use InsertPersist and [Trie.DeletePersist] for lock-free lookups.
func (t *Trie[K]) InsertPersist(seq []K) (*Trie[K], error) {
	if err := validate(seq); err != nil {
		return t, err
	}

	pt := &Trie[K]{size: t.size}
	pt.root = *t.root.cloneFlat()

	// clone along the path, every touched node is a private copy
	n := &pt.root
	for _, k := range seq {
		kid := n.getChild(k)
		if kid == nil {
			kid = new(node[K])
		} else {
			kid = kid.cloneFlat()
		}

		n.setChild(k, kid)
		n = kid
	}

	// idempotent
	if n.isEnd {
		return pt, nil
	}

	n.isEnd = true
	pt.size++

	return pt, nil
}

// DeletePersist is similar to Delete but the receiver isn't modified.
// All nodes touched during delete are cloned and a new Trie is returned.
//
// If seq is not present, the receiver itself is returned with found == false.
func (t *Trie[K]) DeletePersist(seq []K) (pt *Trie[K], found bool) {
	// fast exit without any allocation
	if !t.Contains(seq) {
		return t, false
	}

	pt = &Trie[K]{size: t.size}
	pt.root = *t.root.cloneFlat()

	stack := make([]pathItem[K], 0, len(seq))

	n := &pt.root
	for _, k := range seq {
		kid := n.getChild(k).cloneFlat()
		n.setChild(k, kid)

		stack = append(stack, pathItem[K]{parent: n, sym: k, child: kid})
		n = kid
	}

	n.isEnd = false
	pt.size--

	purge(stack)

	return pt, true
}
