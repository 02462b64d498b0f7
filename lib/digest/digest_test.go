// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/zeebo/blake3"
	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/filechain/lib/fault"
)

const helloWorldSHA256 = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// patterned returns size bytes with a prime-modulus pattern so chunk
// boundaries never line up with repeats.
func patterned(size int) []byte {
	content := make([]byte, size)
	for i := range content {
		content[i] = byte(i % 251)
	}
	return content
}

func TestHashFileHelloWorld(t *testing.T) {
	path := writeFile(t, "hello.txt", []byte("hello world"))

	got, err := HashFile(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if got != helloWorldSHA256 {
		t.Errorf("HashFile = %s, want %s", got, helloWorldSHA256)
	}
}

func TestHashFileEmpty(t *testing.T) {
	path := writeFile(t, "empty", nil)

	calls := 0
	got, err := HashFile(context.Background(), path, Options{
		Progress: func(read, total int64) { calls++ },
	})
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}

	want := sha256.Sum256(nil)
	if got != hex.EncodeToString(want[:]) {
		t.Errorf("HashFile(empty) = %s, want %x", got, want)
	}
	if calls != 0 {
		t.Errorf("progress called %d times for an empty file, want 0", calls)
	}
}

func TestHashFileChunkSizeIndependent(t *testing.T) {
	content := patterned(300*1024 + 17)
	path := writeFile(t, "large.bin", content)
	want := sha256.Sum256(content)

	for _, chunkSize := range []int{1024, 4096, 64 * 1024, 1 << 20} {
		got, err := HashFile(context.Background(), path, Options{ChunkSize: chunkSize})
		if err != nil {
			t.Fatalf("HashFile(chunk=%d): %v", chunkSize, err)
		}
		if got != hex.EncodeToString(want[:]) {
			t.Errorf("HashFile(chunk=%d) = %s, want %x", chunkSize, got, want)
		}
	}
}

func TestHashFileProgressStrictlyIncreasing(t *testing.T) {
	const size = 10*1000 + 7
	const chunkSize = 1000
	path := writeFile(t, "data.bin", patterned(size))

	var counts []int64
	_, err := HashFile(context.Background(), path, Options{
		ChunkSize: chunkSize,
		Progress: func(read, total int64) {
			if total != size {
				t.Errorf("progress total = %d, want %d", total, size)
			}
			counts = append(counts, read)
		},
	})
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}

	if len(counts) != 11 {
		t.Fatalf("progress called %d times, want 11", len(counts))
	}
	for i := 1; i < len(counts); i++ {
		if counts[i] <= counts[i-1] {
			t.Errorf("progress counts not strictly increasing at %d: %v", i, counts)
		}
	}
	if last := counts[len(counts)-1]; last != size {
		t.Errorf("final progress = %d, want %d", last, size)
	}
}

func TestHashFileNonexistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := HashFile(context.Background(), path, Options{})
	if err == nil {
		t.Fatal("HashFile should fail for nonexistent file")
	}

	var ioError *fault.IOError
	if !errors.As(err, &ioError) {
		t.Errorf("error should be *fault.IOError, got %T: %v", err, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got: %v", err)
	}
}

func TestHashFileDirectory(t *testing.T) {
	_, err := HashFile(context.Background(), t.TempDir(), Options{})
	var ioError *fault.IOError
	if !errors.As(err, &ioError) {
		t.Errorf("hashing a directory should return *fault.IOError, got %v", err)
	}
}

func TestHashFileCancelled(t *testing.T) {
	path := writeFile(t, "data.bin", patterned(64*1024))

	ctx, cancel := context.WithCancel(context.Background())
	chunks := 0
	got, err := HashFile(ctx, path, Options{
		ChunkSize: 1024,
		Progress: func(read, total int64) {
			chunks++
			if chunks == 3 {
				cancel()
			}
		},
	})

	if !errors.Is(err, fault.ErrCancelled) {
		t.Fatalf("HashFile after cancel: err = %v, want ErrCancelled", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error should also wrap context.Canceled, got: %v", err)
	}
	if got != "" {
		t.Errorf("cancelled HashFile returned digest %q, want empty", got)
	}
	if chunks != 3 {
		t.Errorf("read %d chunks, want hashing to stop after 3", chunks)
	}
}

func TestHashFileCancelledWhileLocked(t *testing.T) {
	path := writeFile(t, "held.bin", []byte("hello world"))

	// flock locks belong to the open file description, so a second
	// os.Open in this process conflicts with HashFile's own.
	holder, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer holder.Close()
	if err := unix.Flock(int(holder.Fd()), unix.LOCK_EX); err != nil {
		t.Fatalf("Flock LOCK_EX: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	type outcome struct {
		digest string
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		digest, err := HashFile(ctx, path, Options{})
		done <- outcome{digest, err}
	}()

	select {
	case result := <-done:
		if !errors.Is(result.err, fault.ErrCancelled) {
			t.Fatalf("HashFile: err = %v, want ErrCancelled", result.err)
		}
		if !errors.Is(result.err, context.DeadlineExceeded) {
			t.Errorf("error should wrap context.DeadlineExceeded, got: %v", result.err)
		}
		if result.digest != "" {
			t.Errorf("cancelled HashFile returned digest %q", result.digest)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("HashFile still waiting for the lock after its context expired")
	}
}

func TestHashFileWaitsForExclusiveHolder(t *testing.T) {
	path := writeFile(t, "held.bin", []byte("hello world"))

	holder, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer holder.Close()
	if err := unix.Flock(int(holder.Fd()), unix.LOCK_EX); err != nil {
		t.Fatalf("Flock LOCK_EX: %v", err)
	}
	time.AfterFunc(50*time.Millisecond, func() {
		unix.Flock(int(holder.Fd()), unix.LOCK_UN)
	})

	got, err := HashFile(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if got != helloWorldSHA256 {
		t.Errorf("HashFile = %s, want %s", got, helloWorldSHA256)
	}
}

func TestHashReaderAlgorithms(t *testing.T) {
	content := []byte("hello world")
	blake3Sum := blake3.Sum256(content)

	tests := []struct {
		algorithm Algorithm
		want      string
	}{
		{SHA256, helloWorldSHA256},
		{BLAKE3, hex.EncodeToString(blake3Sum[:])},
		{SHA3_256, "644bcc7e564373040999aac89e7622f3ca71fba1d972fd94a31c3bfbf24e3938"},
	}

	for _, test := range tests {
		t.Run(test.algorithm.String(), func(t *testing.T) {
			got, err := HashReader(context.Background(), bytes.NewReader(content), int64(len(content)),
				Options{Algorithm: test.algorithm, ChunkSize: 4})
			if err != nil {
				t.Fatalf("HashReader: %v", err)
			}
			if got != test.want {
				t.Errorf("HashReader(%s) = %s, want %s", test.algorithm, got, test.want)
			}
		})
	}
}

func TestHashReaderNegativeChunkSize(t *testing.T) {
	_, err := HashReader(context.Background(), bytes.NewReader(nil), 0, Options{ChunkSize: -1})
	if err == nil {
		t.Fatal("HashReader with negative chunk size should fail")
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input   string
		want    Algorithm
		wantErr bool
	}{
		{"", SHA256, false},
		{"sha256", SHA256, false},
		{"blake3", BLAKE3, false},
		{"sha3-256", SHA3_256, false},
		{"md5", 0, true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := ParseAlgorithm(test.input)
			if (err != nil) != test.wantErr {
				t.Fatalf("ParseAlgorithm(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			}
			if err == nil && got != test.want {
				t.Errorf("ParseAlgorithm(%q) = %s, want %s", test.input, got, test.want)
			}
		})
	}
}
