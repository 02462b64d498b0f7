// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ledger

import "fmt"

// Mismatch classifies a validation failure.
type Mismatch int

const (
	// MismatchNone means the chain validated.
	MismatchNone Mismatch = iota

	// MismatchDigest means a block's stored digest differs from the one
	// recomputed from its own fields: a field was edited in place, or
	// the stored digest itself was replaced.
	MismatchDigest

	// MismatchLink means a block's previous digest differs from the
	// stored digest of the block before it: blocks were reordered,
	// removed, or replaced wholesale.
	MismatchLink
)

// String returns a short name for the mismatch kind.
func (m Mismatch) String() string {
	switch m {
	case MismatchNone:
		return "none"
	case MismatchDigest:
		return "digest"
	case MismatchLink:
		return "link"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// MarshalText renders the kind by name in JSON output.
func (m Mismatch) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Report is the outcome of Validate. A failed validation is expected,
// user-facing information; the chain stays loaded and usable.
type Report struct {
	// Valid is true when every block passed both checks.
	Valid bool `json:"valid"`

	// Index is the first failing block. Zero when Valid.
	Index int `json:"index,omitempty"`

	// Kind says which check failed.
	Kind Mismatch `json:"kind"`

	// Stored is the value found in the failing block: its Hash for a
	// digest mismatch, its PreviousHash for a link mismatch.
	Stored string `json:"stored,omitempty"`

	// Expected is the recomputed digest (digest mismatch) or the prior
	// block's stored digest (link mismatch).
	Expected string `json:"expected,omitempty"`

	// Detail is a one-line human-readable description.
	Detail string `json:"detail"`
}

// Validate checks every block after genesis, in order, and reports the
// first failure. For each block the digest check runs before the link
// check. The chain is not modified.
func (c *Chain) Validate() Report {
	for i := 1; i < len(c.blocks); i++ {
		current := c.blocks[i]
		previous := c.blocks[i-1]

		recomputed := current.Recompute()
		if current.Hash != recomputed {
			return Report{
				Index:    i,
				Kind:     MismatchDigest,
				Stored:   current.Hash,
				Expected: recomputed,
				Detail: fmt.Sprintf("Block %d hash mismatch (stored %s != recalculated %s)",
					i, current.Hash, recomputed),
			}
		}

		if current.PreviousHash != previous.Hash {
			return Report{
				Index:    i,
				Kind:     MismatchLink,
				Stored:   current.PreviousHash,
				Expected: previous.Hash,
				Detail: fmt.Sprintf("Block %d previous_hash mismatch (stored %s != prev.hash %s)",
					i, current.PreviousHash, previous.Hash),
			}
		}
	}
	return Report{Valid: true, Kind: MismatchNone, Detail: "Chain is valid"}
}

// BlockStatus is the per-block result of Inspect.
type BlockStatus struct {
	Block Block `json:"block"`

	// DigestOK is true when the stored digest matches the recomputed one.
	DigestOK bool `json:"digest_ok"`

	// LinkOK is true when PreviousHash matches the prior block's stored
	// digest. Always true for the genesis block.
	LinkOK bool `json:"link_ok"`
}

// OK reports whether both checks passed.
func (s BlockStatus) OK() bool { return s.DigestOK && s.LinkOK }

// Inspect runs both checks on every block, without stopping at the first
// failure, for display. Unlike Validate it also recomputes the genesis
// block's digest.
func (c *Chain) Inspect() []BlockStatus {
	statuses := make([]BlockStatus, len(c.blocks))
	for i, block := range c.blocks {
		statuses[i] = BlockStatus{
			Block:    block,
			DigestOK: block.Hash == block.Recompute(),
			LinkOK:   i == 0 || block.PreviousHash == c.blocks[i-1].Hash,
		}
	}
	return statuses
}
