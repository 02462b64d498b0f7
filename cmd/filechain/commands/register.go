// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/filechain/cmd/filechain/cli"
	"github.com/bureau-foundation/filechain/lib/ledger"
)

type registerParams struct {
	cli.JSONOutput
	ledgerOptions
}

func registerCommand(env Environment) *cli.Command {
	var params registerParams
	return &cli.Command{
		Name:    "register",
		Summary: "Hash files and append them to the ledger",
		Description: `Hash each FILE and append one block per file, named by the file's base
name. The ledger is created if it does not exist. Blocks are written
only after every file hashed successfully, in a single atomic save.`,
		Usage: "filechain register FILE... [flags]",
		Examples: []cli.Example{
			{Description: "Register two files", Command: "filechain register report.pdf data.csv"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("register", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return cli.Validation("at least one FILE is required")
			}
			s, err := params.open(env, "register")
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
			if report := chain.Validate(); !report.Valid {
				s.logger.Warn("appending to a ledger that fails verification", "detail", report.Detail)
			}

			appended := make([]ledger.Block, 0, len(args))
			for _, path := range args {
				result, err := hashOne(ctx, env, path, options)
				if err != nil {
					return cli.Classify(fmt.Errorf("registering %s: %w", path, err))
				}
				block := chain.Append(filepath.Base(path), result.Digest)
				s.logger.Info("block appended", "index", block.Index, "file", block.FileName, "size", result.Size)
				appended = append(appended, block)
			}

			if err := s.saveChain(chain); err != nil {
				return err
			}

			if done, err := params.EmitJSON(env.Stdout, appended); done {
				return err
			}
			for _, block := range appended {
				fmt.Fprintf(env.Stdout, "block %d  %s  %s\n", block.Index, block.Hash, block.FileName)
			}
			return nil
		},
	}
}
