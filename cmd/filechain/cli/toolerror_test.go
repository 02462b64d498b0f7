// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/bureau-foundation/filechain/lib/fault"
)

func TestToolErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *ToolError
		category ErrorCategory
	}{
		{"validation", Validation("bad index %d", -1), CategoryValidation},
		{"not found", NotFound("no ledger at %s", "x"), CategoryNotFound},
		{"conflict", Conflict("ledger exists"), CategoryConflict},
		{"internal", Internal("broken"), CategoryInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Category != tt.category {
				t.Errorf("Category = %q, want %q", tt.err.Category, tt.category)
			}
			if CategoryOf(tt.err) != tt.category {
				t.Errorf("CategoryOf = %q, want %q", CategoryOf(tt.err), tt.category)
			}
		})
	}

	if got := Validation("bad index %d", -1).Error(); got != "bad index -1" {
		t.Errorf("Error() = %q", got)
	}
}

func TestToolErrorUnwrap(t *testing.T) {
	inner := fault.IO("open", "ledger.json", os.ErrNotExist)
	wrapped := &ToolError{Category: CategoryNotFound, Err: fmt.Errorf("loading ledger: %w", inner)}

	if !errors.Is(wrapped, os.ErrNotExist) {
		t.Error("errors.Is should see through ToolError")
	}
	var ioError *fault.IOError
	if !errors.As(wrapped, &ioError) || ioError.Path != "ledger.json" {
		t.Errorf("errors.As did not find IOError: %v", wrapped)
	}
}

func TestClassify(t *testing.T) {
	exit := &ExitError{Code: 1}
	categorized := Conflict("exists")

	tests := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{"missing file", fault.IO("open", "x", os.ErrNotExist), CategoryNotFound},
		{"cancelled", fault.Cancelled(context.Canceled), CategoryCancelled},
		{"parse", fault.Parse("x", "no blocks"), CategoryInternal},
		{"plain", errors.New("boom"), CategoryInternal},
		{"already categorized", categorized, CategoryConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryOf(Classify(tt.err)); got != tt.want {
				t.Errorf("category = %q, want %q", got, tt.want)
			}
		})
	}

	if Classify(nil) != nil {
		t.Error("Classify(nil) should be nil")
	}
	if Classify(exit) != error(exit) {
		t.Error("ExitError should pass through unchanged")
	}
	if Classify(categorized) != error(categorized) {
		t.Error("categorized error should pass through unchanged")
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 1}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok || coder.ExitCode() != 1 {
		t.Fatalf("ExitError does not expose ExitCode")
	}
	if err.Error() != "exit code 1" {
		t.Errorf("Error() = %q", err.Error())
	}
}
