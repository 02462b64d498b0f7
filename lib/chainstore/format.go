// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chainstore

import (
	"path/filepath"
	"strings"
)

// Encoding is the serialization of the block array.
type Encoding uint8

const (
	// EncodingJSON is the default, human-readable encoding.
	EncodingJSON Encoding = iota

	// EncodingCBOR is deterministic CBOR.
	EncodingCBOR
)

func (e Encoding) String() string {
	if e == EncodingCBOR {
		return "cbor"
	}
	return "json"
}

// Compression is an optional stream compression around the encoding.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "none"
	}
}

// Format is the on-disk representation of a ledger file.
type Format struct {
	Encoding    Encoding
	Compression Compression
}

func (f Format) String() string {
	if f.Compression == CompressionNone {
		return f.Encoding.String()
	}
	return f.Encoding.String() + "+" + f.Compression.String()
}

// FormatFor derives the format from a ledger path's extensions. Matching
// is case-insensitive.
func FormatFor(path string) Format {
	var format Format
	name := strings.ToLower(filepath.Base(path))

	switch {
	case strings.HasSuffix(name, ".zst"):
		format.Compression = CompressionZstd
		name = strings.TrimSuffix(name, ".zst")
	case strings.HasSuffix(name, ".lz4"):
		format.Compression = CompressionLZ4
		name = strings.TrimSuffix(name, ".lz4")
	}

	if filepath.Ext(name) == ".cbor" {
		format.Encoding = EncodingCBOR
	}
	return format
}
