// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command filechain maintains a hash-linked ledger of file digests.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/bureau-foundation/filechain/cmd/filechain/cli"
	"github.com/bureau-foundation/filechain/cmd/filechain/commands"
	"github.com/bureau-foundation/filechain/lib/clock"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	os.Exit(exitCode(err))
}

func run(ctx context.Context) error {
	env := commands.Environment{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Clock:       clock.Real(),
		Interactive: term.IsTerminal(int(os.Stderr.Fd())),
	}
	return cli.Classify(commands.Root(env).Execute(ctx, os.Args[1:]))
}

// exitCode prints err (unless the command already reported it) and
// maps it to a process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	// Commands that print their own output (like verify) return an
	// ExitError with the desired exit code.
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	if cli.CategoryOf(err) == cli.CategoryCancelled {
		return 130
	}
	return 1
}
