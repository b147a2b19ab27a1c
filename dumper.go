// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package trie

import (
	"fmt"
	"io"
	"strings"
)

type nodeType byte

const (
	rootNode         nodeType = iota // the root, never an entry
	leafNode                         // entry, no children
	fullNode                         // entry and children
	intermediateNode                 // only children, no entry
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (t *Trie[K]) dumpString() string {
	w := new(strings.Builder)
	t.dump(w)

	return w.String()
}

// dump the trie structure and all the nodes to w.
func (t *Trie[K]) dump(w io.Writer) {
	if t == nil {
		return
	}

	s := t.root.nodeStatsRec()
	fmt.Fprintf(w, "### size(%d), nodes(%d), ends(%d), leaves(%d), depth(%d)\n",
		t.size, s.nodes, s.ends, s.leaves, s.depth)

	t.root.dumpRec(w, nil, 0)
}

// dumpRec, rec-descent the trie in sorted order.
func (n *node[K]) dumpRec(w io.Writer, path []K, depth int) {
	n.dump(w, path, depth)

	for _, k := range n.sortedKeys() {
		n.children[k].dumpRec(w, append(path, k), depth+1)
	}
}

// dump the node to w.
func (n *node[K]) dump(w io.Writer, path []K, depth int) {
	indent := strings.Repeat(".", depth)

	typ := n.hasType()
	if depth == 0 {
		typ = rootNode
	}

	fmt.Fprintf(w, "%s[%s] depth: %d path: [%s]", indent, typ, depth, pathString(path))

	if keys := n.sortedKeys(); len(keys) != 0 {
		syms := make([]string, 0, len(keys))
		for _, k := range keys {
			syms = append(syms, symbolString(k))
		}
		fmt.Fprintf(w, " childs(#%d): %s", len(keys), strings.Join(syms, " "))
	}

	fmt.Fprintln(w)
}

// hasType returns the nodeType.
func (n *node[K]) hasType() nodeType {
	switch {
	case n.isEnd && n.isLeaf():
		return leafNode
	case n.isEnd:
		return fullNode
	default:
		return intermediateNode
	}
}

// String implements Stringer for nodeType.
func (nt nodeType) String() string {
	switch nt {
	case rootNode:
		return "ROOT"
	case leafNode:
		return "LEAF"
	case fullNode:
		return "FULL"
	case intermediateNode:
		return "IMED"
	default:
		return "unreachable"
	}
}

// pathString, the symbols of path, space separated.
func pathString[K any](path []K) string {
	syms := make([]string, 0, len(path))
	for _, k := range path {
		syms = append(syms, symbolString(k))
	}
	return strings.Join(syms, " ")
}

// stats of a subtrie, the starting node included.
type stats struct {
	nodes  int // all nodes
	ends   int // nodes with an entry
	leaves int // nodes without children
	depth  int // max depth below the starting node
}

// nodeStatsRec, calculate the stats for n and all its descendants.
func (n *node[K]) nodeStatsRec() stats {
	var s stats
	if n == nil {
		return s
	}

	s.nodes = 1
	if n.isEnd {
		s.ends = 1
	}
	if n.isLeaf() {
		s.leaves = 1
	}

	for _, kid := range n.children {
		rs := kid.nodeStatsRec()

		s.nodes += rs.nodes
		s.ends += rs.ends
		s.leaves += rs.leaves
		s.depth = max(s.depth, rs.depth+1)
	}

	return s
}

// Stats holds structural statistics of a trie.
type Stats struct {
	Size   int // entries
	Nodes  int // all nodes, the root included
	Leaves int // nodes without children
	Depth  int // length of the longest entry
}

// Stats returns the structural statistics of the trie.
// It walks all nodes, the cost is O(n).
func (t *Trie[K]) Stats() Stats {
	if t == nil {
		return Stats{}
	}

	s := t.root.nodeStatsRec()

	return Stats{
		Size:   t.size,
		Nodes:  s.nodes,
		Leaves: s.leaves,
		Depth:  s.depth,
	}
}
