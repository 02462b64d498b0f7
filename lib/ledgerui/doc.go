// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ledgerui implements an interactive terminal front end for a
// filechain ledger. Built on bubbletea (Elm architecture), it shows the
// chain as a table with per-block integrity status, a detail pane for
// the selected block, and a progress bar while a file is being hashed.
//
// The front end only calls [ledger], [digest], and [chainstore]
// operations and renders their results. Hashing runs off the event
// loop: progress reaches the model as messages through a
// [digest.ProgressStream], never as shared state.
//
// Data flow:
//
//	[file on disk] -- digest.HashFile (tea.Cmd goroutine)
//	        | progressMsg / hashedMsg
//	    [Model] <- bubbletea event loop -> ledger.Chain
//	        | saveMsg / loadMsg
//	  [chainstore]
package ledgerui
