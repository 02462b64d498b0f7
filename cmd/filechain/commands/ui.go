// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/filechain/cmd/filechain/cli"
	"github.com/bureau-foundation/filechain/lib/ledgerui"
)

type uiParams struct {
	ledgerOptions
}

func uiCommand(env Environment) *cli.Command {
	var params uiParams
	return &cli.Command{
		Name:    "ui",
		Summary: "Browse, extend, and verify the ledger interactively",
		Description: `Open the ledger in a full-screen terminal view. FILE arguments are
hashed and registered on startup. Press a to add more files, v to
verify, t to simulate tampering, s to save, r to reload from disk.`,
		Usage: "filechain ui [FILE...] [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("ui", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if !env.Interactive {
				return cli.Validation("ui requires a terminal")
			}
			s, err := params.open(env, "ui")
			if err != nil {
				return err
			}
			options, err := s.hashOptions()
			if err != nil {
				return err
			}
			chain, err := s.loadOrCreateChain()
			if err != nil {
				return err
			}

			result, err := ledgerui.Run(ctx, ledgerui.Options{
				Chain:      chain,
				LedgerPath: s.ledgerPath,
				Hashing:    options,
				Pending:    args,
			})
			if err != nil {
				return cli.Classify(err)
			}
			if result.Unsaved {
				s.logger.Warn("quit without saving changes", "blocks", result.Blocks)
			}
			return nil
		},
	}
}
