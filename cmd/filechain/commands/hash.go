// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/filechain/cmd/filechain/cli"
	"github.com/bureau-foundation/filechain/lib/digest"
)

type hashParams struct {
	cli.JSONOutput
	ledgerOptions
	Algorithm string `json:"-" flag:"algorithm,a" desc:"digest algorithm: sha256, blake3, or sha3-256 (default: hashing.algorithm from config)"`
	ChunkSize int    `json:"-" flag:"chunk-size" desc:"read size in bytes (default: hashing.chunk_size from config)"`
}

type hashResult struct {
	File      string `json:"file"`
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
	Size      int64  `json:"size"`
}

func hashCommand(env Environment) *cli.Command {
	var params hashParams
	return &cli.Command{
		Name:    "hash",
		Summary: "Print content digests without touching the ledger",
		Usage:   "filechain hash FILE... [flags]",
		Examples: []cli.Example{
			{Description: "SHA-256 of a file", Command: "filechain hash report.pdf"},
			{Description: "BLAKE3 digests as JSON", Command: "filechain hash -a blake3 --json *.iso"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("hash", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return cli.Validation("at least one FILE is required")
			}
			s, err := params.open(env, "hash")
			if err != nil {
				return err
			}
			if params.Algorithm != "" {
				s.config.Hashing.Algorithm = params.Algorithm
			}
			if params.ChunkSize != 0 {
				if params.ChunkSize < 0 {
					return cli.Validation("--chunk-size must be positive, got %d", params.ChunkSize)
				}
				s.config.Hashing.ChunkSize = params.ChunkSize
			}
			options, err := s.hashOptions()
			if err != nil {
				return err
			}

			results := make([]hashResult, 0, len(args))
			for _, path := range args {
				result, err := hashOne(ctx, env, path, options)
				if err != nil {
					return cli.Classify(err)
				}
				s.logger.Debug("hashed", "file", path, "size", result.Size)
				results = append(results, result)
			}

			if done, err := params.EmitJSON(env.Stdout, results); done {
				return err
			}
			for _, result := range results {
				fmt.Fprintf(env.Stdout, "%s  %s\n", result.Digest, result.File)
			}
			return nil
		},
	}
}

// hashOne hashes path, drawing progress on an interactive stderr.
func hashOne(ctx context.Context, env Environment, path string, options digest.Options) (hashResult, error) {
	var size int64
	var line *progressLine
	if env.Interactive {
		line = newProgressLine(env.Stderr, filepath.Base(path))
	}
	options.Progress = func(read, total int64) {
		size = total
		if line != nil {
			line.report(read, total)
		}
	}

	hexDigest, err := digest.HashFile(ctx, path, options)
	if err != nil {
		return hashResult{}, err
	}
	return hashResult{
		File:      path,
		Algorithm: options.Algorithm.String(),
		Digest:    hexDigest,
		Size:      size,
	}, nil
}
