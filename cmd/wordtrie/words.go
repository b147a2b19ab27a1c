// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gaissmai/trie"
)

// loader fills a trie.Words from word files.
type loader struct {
	log       logger
	foldCase  bool
	minLength int
}

// normalize applies the case policy to a word or a query.
func (ld loader) normalize(s string) string {
	if ld.foldCase {
		return strings.ToLower(s)
	}
	return s
}

// loadFiles reads all files into w.
func (ld loader) loadFiles(w *trie.Words, files []string) error {
	for _, file := range files {
		if err := ld.loadFile(w, file); err != nil {
			return err
		}
	}
	return nil
}

func (ld loader) loadFile(w *trie.Words, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open word file: %w", err)
	}
	defer f.Close()

	before := w.Size()
	if err := ld.load(w, f, file); err != nil {
		return err
	}

	ld.log.Debugf("loaded %d words from %s", w.Size()-before, file)

	return nil
}

// load reads one word per line from r.
// Blank lines and lines starting with '#' are skipped.
// Lines with invalid UTF-8 are logged as error and skipped.
func (ld loader) load(w *trie.Words, r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}

		if !utf8.ValidString(word) {
			ld.log.Errorf("%s:%d: invalid UTF-8, skipped", name, lineNo)
			continue
		}

		word = ld.normalize(word)
		if utf8.RuneCountInString(word) < ld.minLength {
			continue
		}

		if err := w.Insert(word); err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	return nil
}
