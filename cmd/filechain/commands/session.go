// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/bureau-foundation/filechain/cmd/filechain/cli"
	"github.com/bureau-foundation/filechain/lib/chainstore"
	"github.com/bureau-foundation/filechain/lib/config"
	"github.com/bureau-foundation/filechain/lib/digest"
	"github.com/bureau-foundation/filechain/lib/ledger"
)

// ledgerOptions are the flags shared by every command that reads
// configuration.
type ledgerOptions struct {
	LedgerPath string `flag:"ledger" desc:"ledger file; the extension selects the format (.json, .cbor, plus .zst or .lz4)"`
	ConfigPath string `flag:"config" desc:"config file (default: $FILECHAIN_CONFIG, then built-in defaults)"`
}

// session is one command invocation's resolved configuration.
type session struct {
	env        Environment
	config     *config.Config
	ledgerPath string
	logger     *slog.Logger
}

// open loads configuration, applies flag overrides, and builds the
// command logger.
func (options ledgerOptions) open(env Environment, command string) (*session, error) {
	cfg, err := options.loadConfig()
	if err != nil {
		return nil, err
	}
	if options.LedgerPath != "" {
		cfg.Ledger.Path = options.LedgerPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration: %w", err)
	}

	level, err := cli.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, cli.Validation("invalid configuration: %w", err)
	}

	return &session{
		env:        env,
		config:     cfg,
		ledgerPath: cfg.Ledger.Path,
		logger:     env.Logger(level).With("command", command, "ledger", cfg.Ledger.Path),
	}, nil
}

func (options ledgerOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case options.ConfigPath != "":
		cfg, err = config.LoadFile(options.ConfigPath)
	case os.Getenv(config.EnvironmentVariable) != "":
		cfg, err = config.Load()
	default:
		return config.Default(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, cli.NotFound("loading config: %w", err)
	}
	if err != nil {
		return nil, cli.Validation("loading config: %w", err)
	}
	return cfg, nil
}

// hashOptions builds digest options from configuration.
func (s *session) hashOptions() (digest.Options, error) {
	algorithm, err := digest.ParseAlgorithm(s.config.Hashing.Algorithm)
	if err != nil {
		return digest.Options{}, cli.Validation("%w", err)
	}
	return digest.Options{
		Algorithm: algorithm,
		ChunkSize: s.config.Hashing.ChunkSize,
	}, nil
}

// loadChain restores the ledger from disk.
func (s *session) loadChain() (*ledger.Chain, error) {
	chain := ledger.New(s.env.Clock)
	if err := chainstore.LoadInto(s.ledgerPath, chain); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("no ledger at %s (run 'filechain init' first)", s.ledgerPath)
		}
		return nil, cli.Classify(fmt.Errorf("loading ledger: %w", err))
	}
	s.logger.Debug("ledger loaded", "blocks", chain.Len())
	return chain, nil
}

// loadOrCreateChain restores the ledger, or starts a new one holding
// only the genesis block when the file does not exist yet.
func (s *session) loadOrCreateChain() (*ledger.Chain, error) {
	chain, err := s.loadChain()
	if cli.CategoryOf(err) == cli.CategoryNotFound {
		s.logger.Info("creating new ledger")
		return ledger.New(s.env.Clock), nil
	}
	return chain, err
}

// saveChain writes the chain atomically.
func (s *session) saveChain(chain *ledger.Chain) error {
	if err := chainstore.Save(s.ledgerPath, chain.Blocks()); err != nil {
		return cli.Internal("saving ledger: %w", err)
	}
	s.logger.Debug("ledger saved", "blocks", chain.Len())
	return nil
}
