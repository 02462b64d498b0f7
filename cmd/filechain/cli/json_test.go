// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"testing"
)

func TestEmitJSON(t *testing.T) {
	type row struct {
		Index int    `json:"index"`
		Name  string `json:"file_name"`
	}

	t.Run("disabled", func(t *testing.T) {
		var output bytes.Buffer
		var j JSONOutput
		done, err := j.EmitJSON(&output, []row{{Index: 1}})
		if done || err != nil {
			t.Fatalf("EmitJSON = (%v, %v), want (false, nil)", done, err)
		}
		if output.Len() != 0 {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("enabled", func(t *testing.T) {
		var output bytes.Buffer
		j := JSONOutput{OutputJSON: true}
		done, err := j.EmitJSON(&output, []row{{Index: 1, Name: "report.pdf"}})
		if !done || err != nil {
			t.Fatalf("EmitJSON = (%v, %v), want (true, nil)", done, err)
		}
		want := "[\n  {\n    \"index\": 1,\n    \"file_name\": \"report.pdf\"\n  }\n]\n"
		if output.String() != want {
			t.Errorf("output = %q, want %q", output.String(), want)
		}
	})

	t.Run("nil slice", func(t *testing.T) {
		var output bytes.Buffer
		j := JSONOutput{OutputJSON: true}
		var rows []row
		if _, err := j.EmitJSON(&output, rows); err != nil {
			t.Fatalf("EmitJSON: %v", err)
		}
		if output.String() != "[]\n" {
			t.Errorf("output = %q, want %q", output.String(), "[]\n")
		}
	})
}
