// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/filechain/cmd/filechain/cli"
	"github.com/bureau-foundation/filechain/lib/ledger"
)

type tamperParams struct {
	cli.JSONOutput
	ledgerOptions
	Field string `json:"-" flag:"field" desc:"block field to edit: file_name, file_hash, timestamp, previous_hash, or hash" default:"file_name"`
	Value string `json:"-" flag:"value" desc:"replacement value (default: current value with _TAMPERED appended)"`
}

type tamperResult struct {
	Index    int    `json:"index"`
	Field    string `json:"field"`
	Previous string `json:"previous"`
	Current  string `json:"current"`
}

// blockField returns a pointer to the named string field of block.
func blockField(block *ledger.Block, name string) (*string, bool) {
	switch name {
	case "file_name":
		return &block.FileName, true
	case "file_hash":
		return &block.FileHash, true
	case "timestamp":
		return &block.Timestamp, true
	case "previous_hash":
		return &block.PreviousHash, true
	case "hash":
		return &block.Hash, true
	}
	return nil, false
}

func tamperCommand(env Environment) *cli.Command {
	var params tamperParams
	return &cli.Command{
		Name:    "tamper",
		Summary: "Simulate tampering by editing a stored block in place",
		Description: `Edit one field of a stored block without recomputing its digest, and
save the ledger. This deliberately corrupts the ledger so that
"filechain verify" can be seen catching the edit.`,
		Usage: "filechain tamper INDEX [flags]",
		Examples: []cli.Example{
			{Description: "Rename block 1 and watch verify fail", Command: "filechain tamper 1 && filechain verify"},
			{Description: "Forge block 2's digest", Command: "filechain tamper 2 --field hash --value 00ff"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("tamper", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: filechain tamper INDEX [flags]")
			}
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return cli.Validation("invalid block index %q", args[0])
			}
			if _, ok := blockField(&ledger.Block{}, params.Field); !ok {
				return cli.Validation("unknown field %q (want file_name, file_hash, timestamp, previous_hash, or hash)", params.Field)
			}

			s, err := params.open(env, "tamper")
			if err != nil {
				return err
			}
			chain, err := s.loadChain()
			if err != nil {
				return err
			}
			if index < 0 || index >= chain.Len() {
				return cli.Validation("block %d out of range (ledger has %d blocks)", index, chain.Len())
			}
			if index == 0 {
				s.logger.Warn("genesis is not rechecked by verify; use show to see this edit")
			}

			result := tamperResult{Index: index, Field: params.Field}
			err = chain.Tamper(index, func(block *ledger.Block) {
				field, _ := blockField(block, params.Field)
				result.Previous = *field
				if params.Value != "" {
					*field = params.Value
				} else {
					*field += ledger.TamperSuffix
				}
				result.Current = *field
			})
			if err != nil {
				return cli.Internal("%w", err)
			}
			if err := s.saveChain(chain); err != nil {
				return err
			}
			s.logger.Warn("block tampered", "index", index, "field", params.Field)

			if done, err := params.EmitJSON(env.Stdout, result); done {
				return err
			}
			fmt.Fprintf(env.Stdout, "Block %d %s modified (tamper simulated): %q -> %q\n",
				index, params.Field, result.Previous, result.Current)
			return nil
		},
	}
}
