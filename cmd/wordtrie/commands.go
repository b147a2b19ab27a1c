// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func (app *application) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "check",
			Usage:     "report for each word whether it is an entry, a prefix or absent",
			ArgsUsage: "WORD...",
			Action:    app.withSession(app.check),
		},
		{
			Name:      "complete",
			Usage:     "print the words starting with each prefix",
			ArgsUsage: "PREFIX...",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "limit",
					Usage: "print at most this number of words per prefix, 0 means all",
				},
			},
			Action: app.withSession(app.complete),
		},
		{
			Name:      "longest",
			Usage:     "print the longest word that is a prefix of each text",
			ArgsUsage: "TEXT...",
			Action:    app.withSession(app.longest),
		},
		{
			Name:      "remove",
			Usage:     "delete words, then print the remaining size",
			ArgsUsage: "WORD...",
			Action:    app.withSession(app.remove),
		},
		{
			Name:   "tree",
			Usage:  "print the trie as tree diagram",
			Action: app.withSession(app.tree),
		},
		{
			Name:   "stats",
			Usage:  "print size and node statistics",
			Action: app.withSession(app.stats),
		},
	}
}

type sessionFunc func(cmd *cli.Command, s *session) error

// withSession loads the words before calling fn.
func (app *application) withSession(fn sessionFunc) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		s, err := app.setup(cmd)
		if err != nil {
			return err
		}
		return fn(cmd, s)
	}
}

// requireArgs returns the positional arguments, at least one.
func requireArgs(cmd *cli.Command) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return nil, fmt.Errorf("%s: %w", cmd.Name, errNoArgs)
	}
	return args, nil
}

func (app *application) check(cmd *cli.Command, s *session) error {
	args, err := requireArgs(cmd)
	if err != nil {
		return err
	}

	for _, arg := range args {
		status := "absent"

		switch isEntry, isPrefix := s.words.Lookup(s.loader.normalize(arg)); {
		case isEntry:
			status = "entry"
		case isPrefix:
			status = "prefix"
		}

		fmt.Fprintf(app.stdout, "%s\t%s\n", arg, status)
	}

	return nil
}

func (app *application) complete(cmd *cli.Command, s *session) error {
	args, err := requireArgs(cmd)
	if err != nil {
		return err
	}

	limit := s.config.Limit
	if cmd.IsSet("limit") {
		limit = cmd.Int("limit")
	}
	if limit < 0 {
		return errNegativeLimit
	}

	for _, prefix := range args {
		n := 0
		for word := range s.words.Complete(s.loader.normalize(prefix)) {
			if limit > 0 && n == limit {
				break
			}
			fmt.Fprintln(app.stdout, word)
			n++
		}

		if n == 0 {
			app.log.Warnf("no completions for %q", prefix)
		}
	}

	return nil
}

func (app *application) longest(cmd *cli.Command, s *session) error {
	args, err := requireArgs(cmd)
	if err != nil {
		return err
	}

	for _, text := range args {
		lpm, ok := s.words.LongestPrefix(s.loader.normalize(text))
		if !ok {
			app.log.Warnf("no word is a prefix of %q", text)
			continue
		}

		fmt.Fprintf(app.stdout, "%s\t%s\n", text, lpm)
	}

	return nil
}

func (app *application) remove(cmd *cli.Command, s *session) error {
	args, err := requireArgs(cmd)
	if err != nil {
		return err
	}

	for _, word := range args {
		if !s.words.Delete(s.loader.normalize(word)) {
			app.log.Warnf("%q not found", word)
		}
	}

	fmt.Fprintln(app.stdout, s.words.Size())

	return nil
}

func (app *application) tree(_ *cli.Command, s *session) error {
	return s.words.Fprint(app.stdout)
}

func (app *application) stats(_ *cli.Command, s *session) error {
	st := s.words.Stats()

	fmt.Fprintf(app.stdout, "size:   %d\n", st.Size)
	fmt.Fprintf(app.stdout, "nodes:  %d\n", st.Nodes)
	fmt.Fprintf(app.stdout, "leaves: %d\n", st.Leaves)
	fmt.Fprintf(app.stdout, "depth:  %d\n", st.Depth)

	return nil
}
