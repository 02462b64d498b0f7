// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/filechain/cmd/filechain/cli"
	"github.com/bureau-foundation/filechain/lib/chainstore"
	"github.com/bureau-foundation/filechain/lib/codec"
	"github.com/bureau-foundation/filechain/lib/ledgerui"
)

type showParams struct {
	cli.JSONOutput
	ledgerOptions
	Full bool `json:"-" flag:"full" desc:"print complete digests instead of truncating them"`
	Raw  bool `json:"-" flag:"raw" desc:"print the stored block array undecoded (CBOR ledgers in diagnostic notation)"`
}

func showCommand(env Environment) *cli.Command {
	var params showParams
	return &cli.Command{
		Name:    "show",
		Summary: "List every block with its integrity status",
		Usage:   "filechain show [flags]",
		Examples: []cli.Example{
			{Description: "List blocks with full digests", Command: "filechain show --full"},
			{Description: "Inspect a binary ledger as stored", Command: "filechain show --raw --ledger chain.cbor.zst"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) != 0 {
				return cli.Validation("show takes no arguments, got %d", len(args))
			}
			if params.Raw && params.OutputJSON {
				return cli.Validation("--raw and --json cannot be combined")
			}
			s, err := params.open(env, "show")
			if err != nil {
				return err
			}
			if params.Raw {
				return s.showRaw()
			}
			chain, err := s.loadChain()
			if err != nil {
				return err
			}

			statuses := chain.Inspect()
			if done, err := params.EmitJSON(env.Stdout, statuses); done {
				return err
			}

			writer := tabwriter.NewWriter(env.Stdout, 2, 0, 2, ' ', 0)
			fmt.Fprintln(writer, "INDEX\tTIMESTAMP\tFILE\tFILE HASH\tHASH\tSTATUS")
			for _, status := range statuses {
				block := status.Block
				fileHash, hash := block.FileHash, block.Hash
				if !params.Full {
					fileHash, hash = ledgerui.ShortDigest(fileHash), ledgerui.ShortDigest(hash)
				}
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%s\n",
					block.Index, block.Timestamp, block.FileName, fileHash, hash, ledgerui.StatusLabel(status))
			}
			return writer.Flush()
		},
	}
}

// showRaw prints the ledger's decompressed payload. JSON is printed as
// stored; CBOR is rendered in diagnostic notation.
func (s *session) showRaw() error {
	data, format, err := chainstore.ReadPayload(s.ledgerPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cli.NotFound("no ledger at %s (run 'filechain init' first)", s.ledgerPath)
		}
		return cli.Classify(fmt.Errorf("reading ledger: %w", err))
	}
	s.logger.Debug("raw payload read", "format", format.String(), "bytes", len(data))

	if format.Encoding != chainstore.EncodingCBOR {
		_, err := s.env.Stdout.Write(data)
		return err
	}
	diagnostic, err := codec.Diagnose(data)
	if err != nil {
		return cli.Internal("decoding %s: %w", s.ledgerPath, err)
	}
	_, err = fmt.Fprintln(s.env.Stdout, diagnostic)
	return err
}
