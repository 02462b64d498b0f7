// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"context"
	"testing"
	"time"

	"github.com/bureau-foundation/filechain/lib/testutil"
)

func TestProgressStreamDeliversFinal(t *testing.T) {
	const size = 8 * 1024
	path := writeFile(t, "data.bin", patterned(size))

	// A one-slot stream: intermediate updates may be dropped while the
	// consumer is busy, but the final one must arrive.
	stream := NewProgressStream(1)
	results := make(chan string, 1)
	go func() {
		defer stream.Close()
		digest, err := HashFile(context.Background(), path, Options{ChunkSize: 1024, Progress: stream.Report})
		if err != nil {
			t.Errorf("HashFile: %v", err)
		}
		results <- digest
	}()

	var last Progress
	for _, update := range testutil.RequireClosed(t, stream.C(), 5*time.Second, "draining progress") {
		if update.Read < last.Read {
			t.Errorf("progress went backwards: %d after %d", update.Read, last.Read)
		}
		last = update
	}

	if !last.Done() || last.Read != size {
		t.Errorf("last progress = %+v, want Read=%d", last, size)
	}
	if digest := testutil.RequireReceive(t, results, 5*time.Second, "waiting for digest"); digest == "" {
		t.Error("expected a digest")
	}
}

func TestProgressFraction(t *testing.T) {
	tests := []struct {
		progress Progress
		want     float64
	}{
		{Progress{Read: 0, Total: 0}, 1},
		{Progress{Read: 50, Total: 200}, 0.25},
		{Progress{Read: 200, Total: 200}, 1},
		{Progress{Read: 300, Total: 200}, 1},
	}
	for _, test := range tests {
		if got := test.progress.Fraction(); got != test.want {
			t.Errorf("%+v.Fraction() = %v, want %v", test.progress, got, test.want)
		}
	}
}
