// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package fault defines the error taxonomy shared by the ledger packages.
//
// Two kinds of failure abort an operation and are surfaced verbatim to
// the caller:
//
//   - [IOError] -- a file is missing, unreadable, or unwritable. Wraps
//     the underlying os error, so errors.Is(err, os.ErrNotExist) works.
//   - [ParseError] -- a persisted chain is not well-formed.
//
// [ErrCancelled] reports that a hash computation was stopped by its
// context before it finished. [ErrEmptyChain] reports that a chain was
// observed or offered without its genesis block.
//
// A failed chain validation is not an error; it is reported as a value
// by the ledger package.
package fault

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when a context cancels an operation before it
// produced a result. The partial work is discarded.
var ErrCancelled = errors.New("operation cancelled")

// ErrEmptyChain is returned when a chain has no blocks. Chains are
// created with a genesis block and never shrink, so this only happens
// when the sequence was corrupted from outside or an empty sequence was
// offered for restore.
var ErrEmptyChain = errors.New("chain has no blocks")

// IOError records a failed file operation.
type IOError struct {
	// Op is a short description of what was being done ("opening",
	// "renaming into place").
	Op string

	// Path is the file the operation targeted.
	Path string

	// Err is the underlying error.
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError records malformed persisted content.
type ParseError struct {
	// Path is the file that failed to parse. Empty when parsing from a
	// stream with no backing file.
	Path string

	// Err describes what was wrong.
	Err error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parsing chain: %v", e.Err)
	}
	return fmt.Sprintf("parsing chain %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IO constructs an IOError.
func IO(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Err: err}
}

// Parse constructs a ParseError with a formatted message.
func Parse(path string, format string, args ...any) *ParseError {
	return &ParseError{Path: path, Err: fmt.Errorf(format, args...)}
}

// Cancelled wraps a context error so that errors.Is matches both
// ErrCancelled and the original context error.
func Cancelled(cause error) error {
	if cause == nil {
		return ErrCancelled
	}
	return fmt.Errorf("%w: %w", ErrCancelled, cause)
}
