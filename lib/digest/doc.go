// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest computes content digests of files for registration in
// the ledger.
//
// Files are streamed through the hash function one fixed-size chunk at a
// time, so memory use is bounded by the chunk size regardless of file
// size. The working set is a single reused buffer.
//
// The API surface:
//
//   - [HashFile] -- opens a file under a shared advisory lock, streams
//     it, and returns the lowercase hex digest
//   - [HashReader] -- the streaming core, for callers that already hold
//     a reader
//   - [ProgressStream] -- adapts per-chunk progress callbacks into a
//     channel of [Progress] messages for a presentation loop running on
//     another goroutine
//
// SHA-256 is the default [Algorithm]. BLAKE3 and SHA3-256 are available
// for callers that want them; the ledger records whatever hex string the
// caller supplies.
//
// Hashing honours context cancellation between chunks and returns
// [fault.ErrCancelled] rather than a partial digest.
package digest
