// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chainstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bureau-foundation/filechain/lib/fault"
	"github.com/bureau-foundation/filechain/lib/ledger"
)

// fileMode is the permission of a saved ledger. Ledgers are integrity
// records, not secrets.
const fileMode = 0644

// Save atomically writes blocks to path in the format FormatFor(path)
// selects, creating parent directories as needed. File errors are
// returned as *fault.IOError; serialization failures are returned
// wrapped but untyped. Either way any existing file at path is left
// untouched.
func Save(path string, blocks []ledger.Block) error {
	return save(path, blocks, FormatFor(path))
}

func save(path string, blocks []ledger.Block, format Format) error {
	if len(blocks) == 0 {
		return fault.ErrEmptyChain
	}

	data, err := encode(blocks, format.Encoding)
	if err != nil {
		return fmt.Errorf("encoding ledger as %s: %w", format.Encoding, err)
	}
	data, err = compress(data, format.Compression)
	if err != nil {
		return fmt.Errorf("compressing ledger: %w", err)
	}

	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0755); err != nil {
		return fault.IO("creating directory for", path, err)
	}

	temporary, err := os.CreateTemp(directory, "chain_*.tmp")
	if err != nil {
		return fault.IO("creating temporary file for", path, err)
	}
	temporaryPath := temporary.Name()

	// Remove the temporary file on every path that does not reach the
	// rename.
	renamed := false
	defer func() {
		if !renamed {
			os.Remove(temporaryPath)
		}
	}()

	// Write, chmod, sync, close, in that order. The handle is released
	// before the rename makes the content visible.
	if _, err := temporary.Write(data); err != nil {
		temporary.Close()
		return fault.IO("writing temporary file for", path, err)
	}
	if err := temporary.Chmod(fileMode); err != nil {
		temporary.Close()
		return fault.IO("setting permissions on temporary file for", path, err)
	}
	if err := temporary.Sync(); err != nil {
		temporary.Close()
		return fault.IO("syncing temporary file for", path, err)
	}
	if err := temporary.Close(); err != nil {
		return fault.IO("closing temporary file for", path, err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		return fault.IO("renaming into place", path, err)
	}
	renamed = true

	// Sync the parent directory so the rename survives power loss.
	if parent, err := os.Open(directory); err == nil {
		parent.Sync()
		parent.Close()
	}
	return nil
}

// Load reads the ledger at path and returns its blocks in file order,
// without digest validation. A missing or unreadable file is a
// *fault.IOError (errors.Is(err, os.ErrNotExist) holds for a missing
// one); malformed content is a *fault.ParseError.
func Load(path string) ([]ledger.Block, error) {
	data, format, err := ReadPayload(path)
	if err != nil {
		return nil, err
	}

	blocks, err := decode(data, format.Encoding)
	if err != nil {
		return nil, &fault.ParseError{Path: path, Err: err}
	}
	return blocks, nil
}

// ReadPayload reads path and strips its compression, returning the
// encoded block array and the format it is in. Errors are typed as in
// Load.
func ReadPayload(path string) ([]byte, Format, error) {
	format := FormatFor(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, format, fault.IO("reading", path, err)
	}

	data, err = decompress(data, format.Compression)
	if err != nil {
		return nil, format, &fault.ParseError{Path: path, Err: err}
	}
	return data, format, nil
}

// LoadInto loads path and restores the blocks into chain. The chain is
// left unchanged when loading fails.
func LoadInto(path string, chain *ledger.Chain) error {
	blocks, err := Load(path)
	if err != nil {
		return err
	}
	return chain.Restore(blocks)
}
