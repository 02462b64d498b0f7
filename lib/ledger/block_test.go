// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"testing"
	"time"
)

func TestComputeHashKnownVector(t *testing.T) {
	// sha256("0|2026-01-01T00:00:00Z|Genesis|0|0")
	const want = "f6f8a6a243f6803fb5f3fb281dca700927448e31ce33d9a78dd1143488a7575e"

	got := ComputeHash(0, "2026-01-01T00:00:00Z", GenesisFileName, NoDigest, NoDigest)
	if got != want {
		t.Errorf("ComputeHash = %s, want %s", got, want)
	}
}

func TestNewBlockDigestMatchesRecompute(t *testing.T) {
	block := NewBlock(4, "2026-03-04T05:06:07Z", "notes.txt", "abc123", "def456")

	if block.Hash != block.Recompute() {
		t.Errorf("Hash = %s, Recompute = %s", block.Hash, block.Recompute())
	}
	if length := len(block.Hash); length != 64 {
		t.Errorf("Hash length = %d, want 64", length)
	}
}

func TestComputeHashSensitiveToEveryField(t *testing.T) {
	base := NewBlock(1, "2026-01-01T00:00:00Z", "a.txt", "aa", "bb")

	variants := map[string]Block{
		"index":         NewBlock(2, base.Timestamp, base.FileName, base.FileHash, base.PreviousHash),
		"timestamp":     NewBlock(base.Index, "2026-01-01T00:00:01Z", base.FileName, base.FileHash, base.PreviousHash),
		"file_name":     NewBlock(base.Index, base.Timestamp, "b.txt", base.FileHash, base.PreviousHash),
		"file_hash":     NewBlock(base.Index, base.Timestamp, base.FileName, "ab", base.PreviousHash),
		"previous_hash": NewBlock(base.Index, base.Timestamp, base.FileName, base.FileHash, "bc"),
	}

	for field, variant := range variants {
		if variant.Hash == base.Hash {
			t.Errorf("changing %s did not change the block digest", field)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	local := time.FixedZone("UTC+2", 2*60*60)
	input := time.Date(2026, 5, 6, 9, 30, 15, 999_000_000, local)

	if got, want := FormatTimestamp(input), "2026-05-06T07:30:15Z"; got != want {
		t.Errorf("FormatTimestamp = %q, want %q", got, want)
	}
}
