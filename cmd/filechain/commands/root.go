// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/filechain/cmd/filechain/cli"
	"github.com/bureau-foundation/filechain/lib/clock"
)

// Environment is what commands take from the process.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer

	// Clock timestamps new blocks.
	Clock clock.Clock

	// Interactive is true when stderr is a terminal. Hash progress is
	// drawn only in interactive sessions, and ui refuses to start
	// otherwise.
	Interactive bool

	// Logger builds the command logger at the configured level.
	// Defaults to cli.NewCommandLogger.
	Logger func(level slog.Level) *slog.Logger
}

func (env Environment) withDefaults() Environment {
	if env.Stdout == nil {
		env.Stdout = os.Stdout
	}
	if env.Stderr == nil {
		env.Stderr = os.Stderr
	}
	if env.Clock == nil {
		env.Clock = clock.Real()
	}
	if env.Logger == nil {
		env.Logger = cli.NewCommandLogger
	}
	return env
}

// Root returns the filechain command tree.
func Root(env Environment) *cli.Command {
	env = env.withDefaults()
	return &cli.Command{
		Name:    "filechain",
		Summary: "Hash-linked file integrity ledger",
		Description: `filechain records files into an append-only ledger in which every
block carries the digest of the block before it. Editing, removing, or
reordering any recorded block breaks the chain, and "filechain verify"
reports the first block where it breaks.`,
		HelpOutput: env.Stderr,
		Subcommands: []*cli.Command{
			initCommand(env),
			hashCommand(env),
			registerCommand(env),
			verifyCommand(env),
			showCommand(env),
			tamperCommand(env),
			uiCommand(env),
			versionCommand(env),
		},
	}
}
