// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the project's CBOR encoding configuration.
//
// Ledgers are normally persisted as JSON, which is what people read and
// diff. CBOR is the compact binary alternative selected by a ".cbor"
// ledger path. Both formats share the same field names: fxamacker/cbor
// v2 reads `json` struct tags when `cbor` tags are absent, so the
// ledger's Block type needs only one set of tags.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same chain always produces identical bytes.
//
//	data, err := codec.Marshal(blocks)
//	err = codec.Unmarshal(data, &blocks)
package codec
