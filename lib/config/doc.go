// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for filechain.
//
// Configuration comes from a single file named by the --config flag (via
// [LoadFile]) or the FILECHAIN_CONFIG environment variable (via [Load]).
// There is no search path. When neither is given, commands run with
// [Default], which keeps the ledger under ~/.local/share/filechain.
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${FILECHAIN_ROOT}, and ${VAR:-default} patterns are expanded.
// No other environment variables override config values; command-line
// flags do.
//
// This package depends on no other filechain packages.
package config
