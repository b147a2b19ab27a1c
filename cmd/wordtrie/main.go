// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command wordtrie loads word lists into a prefix trie and answers
// membership, prefix and completion queries.
//
//	wordtrie [--config FILE] [--words FILE ...] [--fold-case] [--min-length N] [--verbose] <command>
//
// Commands:
//
//	check    WORD...     for each word print "<word>\t<entry|prefix|absent>"
//	complete PREFIX...   print the words starting with PREFIX (--limit N)
//	longest  TEXT...     print the longest word prefixing TEXT
//	remove   WORD...     delete words, then print the remaining size
//	tree                 print the trie as tree diagram
//	stats                print size and node statistics
//
// Exit codes: 0 on success, 1 on error, 127 if an error was logged
// but the command completed, e.g. a skipped line in a word file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/gaissmai/trie"
	"github.com/urfave/cli/v3"
)

var (
	errNoCommand = errors.New("no command given, --help for usage information")
	errNoArgs    = errors.New("at least one argument required")
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// application holds the state of one run.
type application struct {
	stdout  io.Writer
	handler *logHandler
	log     logger
}

func run(args []string, stdout, stderr io.Writer) int {
	// urfave/cli uses a global for its help flag which races
	// in parallel tests, hide the help flag when testing.
	shouldHideHelp := testing.Testing() && os.Getenv("TEST_SHOW_HELP") != "true"

	handler := newLogHandler(stdout, stderr)
	app := &application{
		stdout:  stdout,
		handler: handler,
		log:     logger{slog.New(handler)},
	}

	cmds := app.commands()
	for _, c := range cmds {
		c.HideHelp = shouldHideHelp
	}

	root := &cli.Command{
		Name:      "wordtrie",
		Usage:     "loads word lists into a prefix trie and answers queries",
		Suggest:   true,
		HideHelp:  shouldHideHelp,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     globalFlags(),
		Commands:  cmds,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return fmt.Errorf("unknown command %q", cmd.Args().First())
			}
			return errNoCommand
		},
	}

	// errors are logged below, never exit from within cli
	root.ExitErrHandler = func(_ context.Context, _ *cli.Command, _ error) {}

	if err := root.Run(context.Background(), args); err != nil {
		app.log.Errorf("%v", err)
		return 1
	}

	if handler.HasErrored() {
		return 127
	}

	return 0
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "config",
			Usage:     "read the configuration from this TOML file",
			TakesFile: true,
		},
		&cli.StringSliceFlag{
			Name:      "words",
			Aliases:   []string{"w"},
			Usage:     "word file to load, one word per line, may be repeated",
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:  "fold-case",
			Usage: "lowercase words and queries",
		},
		&cli.IntFlag{
			Name:  "min-length",
			Usage: "skip words shorter than this number of characters",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log debug messages",
		},
	}
}

// session is the loaded state a command works on.
type session struct {
	words  *trie.Words
	config Config
	loader loader
}

// setup merges config file and flags and loads the word files.
func (app *application) setup(cmd *cli.Command) (*session, error) {
	if cmd.Bool("verbose") {
		app.handler.setLevel(slog.LevelDebug)
	}

	config := Config{}
	if path := cmd.String("config"); path != "" {
		c, err := loadConfig(path)
		if err != nil {
			return nil, err
		}
		config = c
		app.log.Debugf("loaded config from %s", path)
	}

	if cmd.IsSet("words") {
		config.Words = cmd.StringSlice("words")
	}
	if cmd.IsSet("fold-case") {
		config.FoldCase = cmd.Bool("fold-case")
	}
	if cmd.IsSet("min-length") {
		config.MinLength = cmd.Int("min-length")
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	if len(config.Words) == 0 {
		app.log.Warnf("no word files given, the trie is empty")
	}

	s := &session{
		words:  new(trie.Words),
		config: config,
		loader: loader{
			log:       app.log,
			foldCase:  config.FoldCase,
			minLength: config.MinLength,
		},
	}

	if err := s.loader.loadFiles(s.words, config.Words); err != nil {
		return nil, err
	}

	app.log.Debugf("trie holds %d words", s.words.Size())

	return s, nil
}
