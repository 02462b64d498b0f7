// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"fmt"

	"github.com/bureau-foundation/filechain/lib/clock"
	"github.com/bureau-foundation/filechain/lib/fault"
)

// TamperSuffix is what the tamper simulation appends to a file name.
const TamperSuffix = "_TAMPERED"

// Chain is the ordered block sequence. The zero value is not usable;
// construct with New.
type Chain struct {
	clock  clock.Clock
	blocks []Block
}

// New returns a chain holding only a genesis block stamped with the
// clock's current time.
func New(c clock.Clock) *Chain {
	genesis := NewBlock(0, FormatTimestamp(c.Now()), GenesisFileName, NoDigest, NoDigest)
	return &Chain{
		clock:  c,
		blocks: []Block{genesis},
	}
}

// Len returns the number of blocks, genesis included.
func (c *Chain) Len() int { return len(c.blocks) }

// Block returns a copy of the block at index.
func (c *Chain) Block(index int) (Block, bool) {
	if index < 0 || index >= len(c.blocks) {
		return Block{}, false
	}
	return c.blocks[index], true
}

// Blocks returns a copy of the sequence in order.
func (c *Chain) Blocks() []Block {
	blocks := make([]Block, len(c.blocks))
	copy(blocks, c.blocks)
	return blocks
}

// Latest returns the last block. It fails only if the sequence was
// emptied from outside the chain's own operations.
func (c *Chain) Latest() (Block, error) {
	if len(c.blocks) == 0 {
		return Block{}, fault.ErrEmptyChain
	}
	return c.blocks[len(c.blocks)-1], nil
}

// Append records a file and returns the new block. The block's index is
// the current length, its timestamp the clock's current UTC second, and
// its previous digest the stored digest of the latest block. History is
// not revalidated first.
func (c *Chain) Append(fileName, fileHash string) Block {
	previousHash := NoDigest
	if latest, err := c.Latest(); err == nil {
		previousHash = latest.Hash
	}
	block := NewBlock(len(c.blocks), FormatTimestamp(c.clock.Now()), fileName, fileHash, previousHash)
	c.blocks = append(c.blocks, block)
	return block
}

// Restore replaces the whole sequence with blocks as given. Nothing is
// checked: a tampered ledger must load so that Validate can say where it
// was tampered. An empty sequence is refused with fault.ErrEmptyChain and
// the chain is left unchanged.
func (c *Chain) Restore(blocks []Block) error {
	if len(blocks) == 0 {
		return fault.ErrEmptyChain
	}
	restored := make([]Block, len(blocks))
	copy(restored, blocks)
	c.blocks = restored
	return nil
}

// Tamper applies mutate to the stored block at index without recomputing
// its digest. It exists to demonstrate that Validate catches direct
// edits; nothing else in the package calls it.
func (c *Chain) Tamper(index int, mutate func(*Block)) error {
	if index < 0 || index >= len(c.blocks) {
		return fmt.Errorf("tamper: block %d out of range [0, %d)", index, len(c.blocks))
	}
	mutate(&c.blocks[index])
	return nil
}
