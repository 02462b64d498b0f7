// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
)

// sampleRecord uses json tags, the convention for types persisted as
// both JSON and CBOR.
type sampleRecord struct {
	Index    int    `json:"index"`
	FileName string `json:"file_name"`
	Hash     string `json:"hash"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := []sampleRecord{
		{Index: 0, FileName: "Genesis", Hash: "0"},
		{Index: 1, FileName: "report.pdf", Hash: "ab12"},
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded []sampleRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if len(decoded) != len(original) {
		t.Fatalf("decoded %d records, want %d", len(decoded), len(original))
	}
	for i := range original {
		if decoded[i] != original[i] {
			t.Errorf("record %d: got %+v, want %+v", i, decoded[i], original[i])
		}
	}
}

func TestMarshalDeterministic(t *testing.T) {
	record := sampleRecord{Index: 7, FileName: "notes.txt", Hash: "ff"}

	first, err := Marshal(record)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(record)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestJSONTagsUsedAsKeys(t *testing.T) {
	data, err := Marshal(sampleRecord{Index: 1, FileName: "a", Hash: "b"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	diagnostic, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	for _, key := range []string{`"index"`, `"file_name"`, `"hash"`} {
		if !strings.Contains(diagnostic, key) {
			t.Errorf("diagnostic %s missing key %s", diagnostic, key)
		}
	}
}

func TestUnmarshalRejectsUnknownField(t *testing.T) {
	data, err := Marshal(map[string]any{"index": 1, "file_name": "a", "hash": "b", "nonce": 7})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var record sampleRecord
	err = Unmarshal(data, &record)
	var unknownField *cbor.UnknownFieldError
	if !errors.As(err, &unknownField) {
		t.Fatalf("Unmarshal: err = %v, want *cbor.UnknownFieldError", err)
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	var records []sampleRecord
	if err := Unmarshal([]byte{0xff, 0x00, 0x13}, &records); err == nil {
		t.Error("Unmarshal of garbage should fail")
	}
}
