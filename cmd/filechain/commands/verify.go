// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/filechain/cmd/filechain/cli"
)

type verifyParams struct {
	cli.JSONOutput
	ledgerOptions
}

func verifyCommand(env Environment) *cli.Command {
	var params verifyParams
	return &cli.Command{
		Name:    "verify",
		Summary: "Validate the ledger and report the first broken block",
		Description: `Recompute every block's digest and check every link to the block
before it. Prints "Chain is valid" and exits 0, or describes the first
failing block and exits 1.`,
		Usage: "filechain verify [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("verify", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) != 0 {
				return cli.Validation("verify takes no arguments, got %d", len(args))
			}
			s, err := params.open(env, "verify")
			if err != nil {
				return err
			}
			chain, err := s.loadChain()
			if err != nil {
				return err
			}

			report := chain.Validate()
			if report.Valid {
				s.logger.Debug("chain valid", "blocks", chain.Len())
			} else {
				s.logger.Debug("chain invalid", "index", report.Index, "kind", report.Kind.String())
			}

			if done, err := params.EmitJSON(env.Stdout, report); done {
				if err != nil {
					return err
				}
			} else {
				fmt.Fprintln(env.Stdout, report.Detail)
			}

			if !report.Valid {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
