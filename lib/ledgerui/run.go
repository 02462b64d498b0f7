// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ledgerui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/filechain/lib/fault"
)

// Result summarizes a finished session.
type Result struct {
	// Unsaved is true when the user quit with changes not written to
	// the ledger file.
	Unsaved bool

	// Blocks is the chain length at exit.
	Blocks int
}

// Run runs the front end in the alternate screen until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, options Options) (Result, error) {
	options.Context = ctx
	model := NewModel(options)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return Result{}, fault.Cancelled(ctx.Err())
		}
		return Result{}, fmt.Errorf("running ledger view: %w", err)
	}

	finalModel, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("running ledger view: unexpected final model %T", final)
	}
	return Result{Unsaved: finalModel.Dirty(), Blocks: finalModel.chain.Len()}, nil
}
