// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

const (
	// TimestampLayout is the fixed UTC format of Block.Timestamp, at
	// second resolution.
	TimestampLayout = "2006-01-02T15:04:05Z"

	// GenesisFileName is the sentinel file name of block 0.
	GenesisFileName = "Genesis"

	// NoDigest stands in for the file and previous digests of the
	// genesis block.
	NoDigest = "0"

	// fieldSeparator joins the fields fed to the block digest. It is not
	// escaped, so a file name containing it can collide with a different
	// field split. Existing ledgers depend on this exact framing.
	fieldSeparator = "|"
)

// Block is one registration in the chain. Field names in JSON are the
// persisted schema.
type Block struct {
	// Index is the block's position; 0 is the genesis block.
	Index int `json:"index"`

	// Timestamp is the UTC creation time in TimestampLayout.
	Timestamp string `json:"timestamp"`

	// FileName labels the registered file.
	FileName string `json:"file_name"`

	// FileHash is the lowercase hex content digest of the file.
	FileHash string `json:"file_hash"`

	// PreviousHash is the Hash of the block at Index-1.
	PreviousHash string `json:"previous_hash"`

	// Hash is the block digest over the five fields above.
	Hash string `json:"hash"`
}

// NewBlock builds a block and computes its digest.
func NewBlock(index int, timestamp, fileName, fileHash, previousHash string) Block {
	return Block{
		Index:        index,
		Timestamp:    timestamp,
		FileName:     fileName,
		FileHash:     fileHash,
		PreviousHash: previousHash,
		Hash:         ComputeHash(index, timestamp, fileName, fileHash, previousHash),
	}
}

// ComputeHash returns the lowercase hex SHA-256 of
// "index|timestamp|fileName|fileHash|previousHash".
//
// Fields are not escaped, so a "|" inside a file name can shift into
// the neighbouring field. Existing ledgers depend on this framing.
func ComputeHash(index int, timestamp, fileName, fileHash, previousHash string) string {
	data := strings.Join([]string{
		strconv.Itoa(index),
		timestamp,
		fileName,
		fileHash,
		previousHash,
	}, fieldSeparator)
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// Recompute returns the digest the block should carry given its current
// fields. It differs from Hash only if the block was altered after
// construction.
func (b Block) Recompute() string {
	return ComputeHash(b.Index, b.Timestamp, b.FileName, b.FileHash, b.PreviousHash)
}

// IsGenesis reports whether the block sits at index 0.
func (b Block) IsGenesis() bool { return b.Index == 0 }

// FormatTimestamp renders t in TimestampLayout after converting to UTC
// and truncating to whole seconds.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(TimestampLayout)
}
