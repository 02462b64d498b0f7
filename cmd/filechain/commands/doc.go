// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the filechain command tree.
//
// Every command that touches the ledger embeds ledgerOptions for the
// shared --ledger and --config flags, and starts by opening a session:
// configuration is loaded (from --config, FILECHAIN_CONFIG, or the
// defaults), the ledger path resolved, and a logger scoped to the
// command created. Commands print results to [Environment.Stdout] as
// text or, with --json, as JSON.
package commands
