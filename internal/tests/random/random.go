// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package random generates deterministic pseudo random words for tests.
//
// The words are drawn from a small alphabet, so that random sets of words
// share prefixes and exercise the branching and pruning paths of the trie.
package random

import (
	"math/rand/v2"
)

// Alphabet, small on purpose: many shared prefixes.
const Alphabet = "abcde"

// Word returns a random word of length 1..maxLen over Alphabet.
func Word(prng *rand.Rand, maxLen int) string {
	return string(Runes(prng, maxLen))
}

// Runes returns a random rune slice of length 1..maxLen over Alphabet.
func Runes(prng *rand.Rand, maxLen int) []rune {
	if maxLen < 1 {
		maxLen = 1
	}

	alpha := []rune(Alphabet)

	rs := make([]rune, 1+prng.IntN(maxLen))
	for i := range rs {
		rs[i] = alpha[prng.IntN(len(alpha))]
	}
	return rs
}

// Words returns n random words, duplicates are possible.
func Words(prng *rand.Rand, n, maxLen int) []string {
	words := make([]string, 0, n)
	for range n {
		words = append(words, Word(prng, maxLen))
	}
	return words
}

// UniqueWords returns n distinct random words.
// If n exceeds the number of possible words, UniqueWords panics.
func UniqueWords(prng *rand.Rand, n, maxLen int) []string {
	if n > possible(maxLen) {
		panic("random: n exceeds the number of possible words")
	}

	seen := make(map[string]bool, n)
	words := make([]string, 0, n)

	for len(words) < n {
		w := Word(prng, maxLen)
		if seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words
}

// possible, the number of distinct words with length 1..maxLen.
func possible(maxLen int) int {
	total, pow := 0, 1
	for range max(maxLen, 1) {
		pow *= len(Alphabet)
		total += pow
	}
	return total
}
