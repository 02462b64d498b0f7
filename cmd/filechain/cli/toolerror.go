// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/bureau-foundation/filechain/lib/fault"
)

// ErrorCategory classifies command errors so that scripts consuming
// --json output can react (fix input, retry, report) without parsing
// message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// wrong argument count, unparseable values, unknown flags.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced file or ledger does not
	// exist.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryConflict indicates the operation conflicts with existing
	// state, such as init over an existing ledger without --force.
	CategoryConflict ErrorCategory = "conflict"

	// CategoryCancelled indicates the operation was interrupted.
	CategoryCancelled ErrorCategory = "cancelled"

	// CategoryInternal indicates an unexpected error: I/O failures,
	// unparseable ledgers, bugs.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by CLI commands. It wraps an
// inner error, preserving the full error chain for errors.Is and
// errors.As. Use the category-specific constructors rather than
// constructing ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error
}

// Error returns the underlying error message. The category is not
// included in the string.
func (e *ToolError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error { return e.Err }

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Conflict creates a conflict error: the operation conflicts with existing state.
func Conflict(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryConflict, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// Classify wraps err in a ToolError whose category follows from the
// error chain. Errors that already carry a category, ExitErrors, and
// nil pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var toolError *ToolError
	if errors.As(err, &toolError) {
		return err
	}
	var exitError *ExitError
	if errors.As(err, &exitError) {
		return err
	}

	category := CategoryInternal
	switch {
	case errors.Is(err, fault.ErrCancelled):
		category = CategoryCancelled
	case errors.Is(err, fs.ErrNotExist):
		category = CategoryNotFound
	}
	return &ToolError{Category: category, Err: err}
}

// CategoryOf returns the category of err, or CategoryInternal when err
// carries none.
func CategoryOf(err error) ErrorCategory {
	var toolError *ToolError
	if errors.As(err, &toolError) {
		return toolError.Category
	}
	return CategoryInternal
}
