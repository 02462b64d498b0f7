// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for filechain.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. The tree is assembled in cmd/filechain/commands and
// dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3).
//
// Flags are usually declared as tagged struct fields and bound with
// [FlagsFromParams]. Embedding [JSONOutput] adds --json.
//
// Errors returned by commands are either a categorized [ToolError]
// (see [Classify] for how ledger and hashing failures map onto
// categories) or an [ExitError] for outcomes such as a failed
// verification, where the command has already printed its report.
package cli
