// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package trie

import (
	"cmp"
	"maps"
	"slices"
)

// node is a single trie vertex.
//
// A node has no path information about its predecessors, the symbol
// leading to a node is the key in the parent's children map.
type node[K cmp.Ordered] struct {
	// children, exclusively owned, allocated on first child
	children map[K]*node[K]

	// an inserted sequence terminates at this node
	isEnd bool
}

// isLeaf reports whether the node has no children.
func (n *node[K]) isLeaf() bool {
	return len(n.children) == 0
}

// hasChildren is the negation of isLeaf, for readability at call sites.
func (n *node[K]) hasChildren() bool {
	return len(n.children) != 0
}

// isEmpty reports whether the node neither terminates a sequence nor has children.
func (n *node[K]) isEmpty() bool {
	return n == nil || (!n.isEnd && len(n.children) == 0)
}

// getChild returns the child for symbol k or nil.
func (n *node[K]) getChild(k K) *node[K] {
	return n.children[k]
}

// getOrCreateChild returns the child for symbol k, a new empty child
// is created and linked if absent. The bool reports a creation.
func (n *node[K]) getOrCreateChild(k K) (*node[K], bool) {
	if c, ok := n.children[k]; ok {
		return c, false
	}

	if n.children == nil {
		n.children = make(map[K]*node[K], 1)
	}

	c := new(node[K])
	n.children[k] = c

	return c, true
}

// removeChild unlinks the child for symbol k.
// The caller must ensure that the subtree is no longer needed.
func (n *node[K]) removeChild(k K) {
	delete(n.children, k)

	// release the empty map, a leaf costs no map
	if len(n.children) == 0 {
		n.children = nil
	}
}

// setChild links c under symbol k, overwriting any existing child.
func (n *node[K]) setChild(k K, c *node[K]) {
	if n.children == nil {
		n.children = make(map[K]*node[K], 1)
	}
	n.children[k] = c
}

// sortedKeys returns the child symbols in ascending order.
func (n *node[K]) sortedKeys() []K {
	if len(n.children) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(n.children))
}

// cloneFlat returns a copy of the node, the children map is copied
// but the child nodes are still shared.
func (n *node[K]) cloneFlat() *node[K] {
	if n == nil {
		return nil
	}

	c := &node[K]{isEnd: n.isEnd}
	if len(n.children) != 0 {
		c.children = maps.Clone(n.children)
	}

	return c
}

// cloneRec returns a deep copy of the node and all its descendants.
func (n *node[K]) cloneRec() *node[K] {
	if n == nil {
		return nil
	}

	c := &node[K]{isEnd: n.isEnd}
	if len(n.children) == 0 {
		return c
	}

	c.children = make(map[K]*node[K], len(n.children))
	for k, kid := range n.children {
		c.children[k] = kid.cloneRec()
	}

	return c
}

// equalRec compares two nodes recursively.
func (n *node[K]) equalRec(o *node[K]) bool {
	if n == nil || o == nil {
		return n.isEmpty() && o.isEmpty()
	}
	if n == o {
		return true
	}

	if n.isEnd != o.isEnd || len(n.children) != len(o.children) {
		return false
	}

	for k, nKid := range n.children {
		oKid, ok := o.children[k]
		if !ok {
			return false
		}
		if !nKid.equalRec(oKid) {
			return false
		}
	}

	return true
}

// allRec runs recursive the trie in lexicographic order, starting at node
// with the already consumed path. The yield function is called for each
// entry. If the yield function returns false the recursion ends prematurely
// and the false value is propagated.
//
// The path slice is reused during the descent, a fresh copy is yielded.
func (n *node[K]) allRec(path []K, yield func([]K) bool) bool {
	if n.isEnd {
		if !yield(slices.Clone(path)) {
			return false
		}
	}

	for _, k := range n.sortedKeys() {
		if !n.children[k].allRec(append(path, k), yield) {
			return false
		}
	}

	return true
}
