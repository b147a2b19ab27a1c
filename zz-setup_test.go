// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package trie

import (
	"bufio"
	"cmp"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"sync"
	"testing"
)

// location of the test dictionary
const wordFile = "./internal/tests/testdata/words.txt"

// workLoadN to adjust loops for tests with -short
func workLoadN() int {
	if testing.Short() {
		return 100
	}
	return 1_000
}

// this file contains helpers for other test functions

// holds the dictionary words
var dict = &dictT{}

type dictT struct {
	_once sync.Once // load and parse it only once

	_words []string // all words, shuffled
}

// abbreviation, string to runes
func rs(s string) []rune { return []rune(s) }

// strs converts a slice of rune slices to strings, for readable diffs.
func strs(seqs [][]rune) []string {
	out := make([]string, 0, len(seqs))
	for _, seq := range seqs {
		out = append(out, string(seq))
	}
	return out
}

// words returns the shuffled dictionary, parsed once at first use.
func (d *dictT) words() []string {
	d._once.Do(func() {
		file, err := os.Open(wordFile)
		if err != nil {
			panic(err)
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			d._words = append(d._words, line)
		}

		if err = scanner.Err(); err != nil {
			panic(fmt.Errorf("reading %s, %w", wordFile, err))
		}

		// shuffle the words
		prng := rand.New(rand.NewPCG(42, 42))
		prng.Shuffle(len(d._words), func(i, j int) {
			d._words[i], d._words[j] = d._words[j], d._words[i]
		})
	})

	return d._words
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s must panic", name)
		}
	}()
	fn()
}

func noPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("%s panicked: %v", name, r)
		}
	}()
	fn()
}

// checkInvariants verifies the structural invariants of the trie:
//   - the root is never an entry
//   - the size counter equals the number of entry nodes
//   - every leaf below the root terminates an entry, no orphan paths
func checkInvariants[K cmp.Ordered](t *testing.T, tr *Trie[K]) {
	t.Helper()

	if tr.root.isEnd {
		t.Fatalf("root is marked as entry")
	}

	if s := tr.root.nodeStatsRec(); s.ends != tr.Size() {
		t.Fatalf("size(%d) diverges from entry nodes(%d)", tr.Size(), s.ends)
	}

	for k, kid := range tr.root.children {
		if path, ok := findOrphan(kid, []K{k}); ok {
			t.Fatalf("orphan leaf at path %v\n%s", path, tr.dumpString())
		}
	}
}

// findOrphan returns the path to the first leaf that is no entry.
func findOrphan[K cmp.Ordered](n *node[K], path []K) ([]K, bool) {
	if n.isLeaf() && !n.isEnd {
		return path, true
	}
	for k, kid := range n.children {
		if p, ok := findOrphan(kid, append(path, k)); ok {
			return p, true
		}
	}
	return nil, false
}

// nodeCount, all nodes including the root.
func nodeCount[K cmp.Ordered](tr *Trie[K]) int {
	return tr.root.nodeStatsRec().nodes
}
