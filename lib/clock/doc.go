// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for block timestamps.
//
// Production code accepts a Clock instead of calling time.Now directly.
// In production, Real() provides the standard library behaviour. In
// tests, Fake() provides a clock that stands still until Advance or Set
// is called, so block timestamps and digests are reproducible.
//
//	chain := ledger.New(clock.Real())
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	chain := ledger.New(c)
//	c.Advance(time.Minute)
//	chain.Append("report.pdf", digest)
package clock
