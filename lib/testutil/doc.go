// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for filechain packages.
//
// [RequireReceive] and [RequireClosed] encapsulate the timeout safety
// valve pattern (select with time.After fallback) so that tests which
// wait on hashing goroutines or progress streams do not need direct
// time.After calls. These are the only place in the test suite where
// real wall-clock timeouts are used.
//
// [WriteFile] creates fixture files under a test's temporary directory,
// and [Epoch] is the fixed instant most ledger tests start their fake
// clock at.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no filechain-internal dependencies.
package testutil
