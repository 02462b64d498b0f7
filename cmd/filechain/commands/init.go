// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/filechain/cmd/filechain/cli"
	"github.com/bureau-foundation/filechain/lib/ledger"
)

type initParams struct {
	cli.JSONOutput
	ledgerOptions
	Force bool `json:"-" flag:"force" desc:"overwrite an existing ledger"`
}

type initResult struct {
	Path    string       `json:"path"`
	Genesis ledger.Block `json:"genesis"`
}

func initCommand(env Environment) *cli.Command {
	var params initParams
	return &cli.Command{
		Name:    "init",
		Summary: "Create a ledger holding only the genesis block",
		Usage:   "filechain init [flags]",
		Examples: []cli.Example{
			{Description: "Create the default ledger", Command: "filechain init"},
			{Description: "Start over with a compressed CBOR ledger", Command: "filechain init --ledger chain.cbor.zst --force"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("init", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) != 0 {
				return cli.Validation("init takes no arguments, got %d", len(args))
			}
			s, err := params.open(env, "init")
			if err != nil {
				return err
			}

			if _, err := os.Stat(s.ledgerPath); err == nil && !params.Force {
				return cli.Conflict("ledger %s already exists (use --force to replace it)", s.ledgerPath)
			}

			if err := s.config.EnsurePaths(); err != nil {
				return cli.Internal("preparing directories: %w", err)
			}
			chain := ledger.New(env.Clock)
			if err := s.saveChain(chain); err != nil {
				return err
			}
			genesis, err := chain.Latest()
			if err != nil {
				return cli.Internal("%w", err)
			}
			s.logger.Info("ledger initialized", "genesis", genesis.Hash)

			if done, err := params.EmitJSON(env.Stdout, initResult{Path: s.ledgerPath, Genesis: genesis}); done {
				return err
			}
			fmt.Fprintf(env.Stdout, "Initialized ledger %s\n  genesis %s\n", s.ledgerPath, genesis.Hash)
			return nil
		},
	}
}
