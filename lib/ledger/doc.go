// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ledger implements the append-only, hash-linked chain of file
// registrations.
//
// A [Block] binds a file name and content digest to its position in the
// chain and to the digest of the block before it. Its own digest is the
// SHA-256 of its other five fields joined with "|" and is computed once,
// at construction. Blocks are values: the [Chain] hands out copies, so
// nothing outside the chain can alter a recorded block.
//
// A [Chain] always holds at least the genesis block (index 0, file name
// "Genesis", file and previous digests "0"). It grows only through
// [Chain.Append] and can be replaced wholesale through [Chain.Restore],
// which accepts untrusted records without checking them so that a
// tampered ledger can still be loaded and inspected.
//
// [Chain.Validate] walks the chain once and performs two independent
// checks per block: the stored digest against one recomputed from the
// block's own fields, and the stored previous digest against the prior
// block's stored digest. The first failure is reported as a [Report]
// value, not an error.
//
// The chain is not safe for concurrent mutation. One goroutine owns it.
package ledger
