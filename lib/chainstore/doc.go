// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package chainstore persists a chain's blocks to a file and reads them
// back.
//
// [Save] never leaves a partially written ledger behind: the encoded
// chain is written to a temporary file in the destination directory,
// fsynced, closed, and renamed over the destination, and then the parent
// directory is fsynced so the rename itself is durable. At every moment
// the destination holds either the previous complete ledger or the new
// one. On any failure before the rename the temporary file is removed
// and the destination is untouched.
//
// [Load] parses a ledger into raw blocks without checking any digest.
// Callers restore the blocks into a chain and validate it themselves, so
// a tampered ledger still loads and can be diagnosed.
//
// The encoding is chosen from the path:
//
//   - *.json (or any other extension): a JSON array of block objects
//     with two-space indentation. Load also accepts JSON with comments.
//   - *.cbor: a deterministic CBOR array of the same objects.
//   - a trailing .zst or .lz4 wraps either encoding in a zstd stream or
//     an LZ4 frame, e.g. ledger.json.zst.
//
// Each block object has exactly the fields index, timestamp, file_name,
// file_hash, previous_hash, and hash, in that order.
package chainstore
