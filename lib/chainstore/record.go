// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chainstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/filechain/lib/codec"
	"github.com/bureau-foundation/filechain/lib/ledger"
)

// record is the persisted schema of one block. Pointer fields let
// decoding tell a missing field from a zero value; every field is
// required. Field order here is the order written to JSON.
type record struct {
	Index        *int    `json:"index"`
	Timestamp    *string `json:"timestamp"`
	FileName     *string `json:"file_name"`
	FileHash     *string `json:"file_hash"`
	PreviousHash *string `json:"previous_hash"`
	Hash         *string `json:"hash"`
}

func toRecord(block ledger.Block) record {
	return record{
		Index:        &block.Index,
		Timestamp:    &block.Timestamp,
		FileName:     &block.FileName,
		FileHash:     &block.FileHash,
		PreviousHash: &block.PreviousHash,
		Hash:         &block.Hash,
	}
}

// toBlock converts a decoded record, reporting the first missing field.
func (r record) toBlock() (ledger.Block, error) {
	switch {
	case r.Index == nil:
		return ledger.Block{}, errors.New("missing index")
	case r.Timestamp == nil:
		return ledger.Block{}, errors.New("missing timestamp")
	case r.FileName == nil:
		return ledger.Block{}, errors.New("missing file_name")
	case r.FileHash == nil:
		return ledger.Block{}, errors.New("missing file_hash")
	case r.PreviousHash == nil:
		return ledger.Block{}, errors.New("missing previous_hash")
	case r.Hash == nil:
		return ledger.Block{}, errors.New("missing hash")
	}
	if *r.Index < 0 {
		return ledger.Block{}, fmt.Errorf("negative index %d", *r.Index)
	}
	return ledger.Block{
		Index:        *r.Index,
		Timestamp:    *r.Timestamp,
		FileName:     *r.FileName,
		FileHash:     *r.FileHash,
		PreviousHash: *r.PreviousHash,
		Hash:         *r.Hash,
	}, nil
}

// encode serializes blocks in the given encoding.
func encode(blocks []ledger.Block, encoding Encoding) ([]byte, error) {
	records := make([]record, len(blocks))
	for i, block := range blocks {
		records[i] = toRecord(block)
	}

	switch encoding {
	case EncodingCBOR:
		return codec.Marshal(records)
	default:
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

// decode parses data into blocks. The returned error describes the
// malformation; the caller wraps it as a ParseError.
func decode(data []byte, encoding Encoding) ([]ledger.Block, error) {
	var records []record

	switch encoding {
	case EncodingCBOR:
		if err := codec.Unmarshal(data, &records); err != nil {
			return nil, err
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&records); err != nil {
			return nil, err
		}
		if err := decoder.Decode(&struct{}{}); err != io.EOF {
			return nil, errors.New("unexpected data after the block array")
		}
	}

	if len(records) == 0 {
		return nil, errors.New("no blocks")
	}

	blocks := make([]ledger.Block, len(records))
	for i, r := range records {
		block, err := r.toBlock()
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		blocks[i] = block
	}
	return blocks, nil
}
