// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config of the word trie, read from a TOML file and
// overridden by command line flags.
type Config struct {
	Words     []string `toml:"words"`
	FoldCase  bool     `toml:"fold_case"`
	MinLength int      `toml:"min_length"`
	Limit     int      `toml:"limit"`

	// the file the config was read from, empty for defaults
	LoadPath string `toml:"-"`
}

var (
	errNegativeMinLength = errors.New("min_length must not be negative")
	errNegativeLimit     = errors.New("limit must not be negative")
)

// loadConfig parses the TOML file at configPath.
// Unknown keys are an error. Relative word file paths
// are resolved against the directory of the config file.
func loadConfig(configPath string) (Config, error) {
	config := Config{}

	m, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if unknownKeys := m.Undecoded(); len(unknownKeys) > 0 {
		keys := make([]string, 0, len(unknownKeys))
		for _, key := range unknownKeys {
			keys = append(keys, key.String())
		}

		return Config{}, fmt.Errorf("unknown keys in config file: %s", strings.Join(keys, ", "))
	}

	dir := filepath.Dir(configPath)
	for i, file := range config.Words {
		if !filepath.IsAbs(file) {
			config.Words[i] = filepath.Join(dir, file)
		}
	}

	config.LoadPath = configPath

	return config, config.validate()
}

func (c Config) validate() error {
	if c.MinLength < 0 {
		return errNegativeMinLength
	}
	if c.Limit < 0 {
		return errNegativeLimit
	}
	return nil
}
