// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"
)

type sharedOptions struct {
	Ledger string `flag:"ledger" desc:"ledger file"`
	Config string `flag:"config" desc:"config file"`
}

type hashParams struct {
	JSONOutput
	sharedOptions
	Algorithm string   `flag:"algorithm,a" desc:"digest algorithm" default:"sha256"`
	ChunkSize int      `flag:"chunk-size" desc:"read size in bytes" default:"65536"`
	Limit     int64    `flag:"limit" desc:"byte limit"`
	Force     bool     `flag:"force" desc:"overwrite" default:"true"`
	Tags      []string `flag:"tag" desc:"tags" default:"a,b"`
	ignored   string
}

func TestFlagsFromParamsDefaults(t *testing.T) {
	var params hashParams
	flagSet := FlagsFromParams("hash", &params)
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if params.Algorithm != "sha256" {
		t.Errorf("Algorithm = %q", params.Algorithm)
	}
	if params.ChunkSize != 65536 {
		t.Errorf("ChunkSize = %d", params.ChunkSize)
	}
	if !params.Force {
		t.Error("Force default should be true")
	}
	if len(params.Tags) != 2 || params.Tags[0] != "a" || params.Tags[1] != "b" {
		t.Errorf("Tags = %v", params.Tags)
	}
	if params.OutputJSON {
		t.Error("json should default to false")
	}
	_ = params.ignored
}

func TestFlagsFromParamsParse(t *testing.T) {
	var params hashParams
	flagSet := FlagsFromParams("hash", &params)
	args := []string{
		"-a", "blake3",
		"--chunk-size", "4096",
		"--limit", "1024",
		"--json",
		"--ledger", "/tmp/ledger.cbor",
		"--config=/etc/filechain.yaml",
		"--force=false",
		"report.pdf",
	}
	if err := flagSet.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if params.Algorithm != "blake3" || params.ChunkSize != 4096 || params.Limit != 1024 {
		t.Errorf("parsed params = %+v", params)
	}
	if !params.OutputJSON {
		t.Error("--json not bound through embedded JSONOutput")
	}
	if params.Ledger != "/tmp/ledger.cbor" || params.Config != "/etc/filechain.yaml" {
		t.Errorf("shared options = %+v", params.sharedOptions)
	}
	if params.Force {
		t.Error("--force=false not applied")
	}
	if rest := flagSet.Args(); len(rest) != 1 || rest[0] != "report.pdf" {
		t.Errorf("Args() = %v", rest)
	}
}

func TestBindFlagsErrors(t *testing.T) {
	var notPointer hashParams
	if err := BindFlags(notPointer, FlagsFromParams("x", &struct{}{})); err == nil {
		t.Error("expected error for non-pointer params")
	}

	var unsupported struct {
		Ratio float32 `flag:"ratio"`
	}
	err := BindFlags(&unsupported, FlagsFromParams("x", &struct{}{}))
	if err == nil || !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("expected unsupported type error, got %v", err)
	}

	var badDefault struct {
		Size int `flag:"size" default:"big"`
	}
	err = BindFlags(&badDefault, FlagsFromParams("x", &struct{}{}))
	if err == nil || !strings.Contains(err.Error(), "default for --size") {
		t.Errorf("expected default parse error, got %v", err)
	}
}

func TestParseFlagTag(t *testing.T) {
	if name, short := parseFlagTag("algorithm,a"); name != "algorithm" || short != "a" {
		t.Errorf("parseFlagTag = (%q, %q)", name, short)
	}
	if name, short := parseFlagTag("json"); name != "json" || short != "" {
		t.Errorf("parseFlagTag = (%q, %q)", name, short)
	}
}
