// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/filechain/lib/fault"
)

// DefaultChunkSize is the read size used when Options.ChunkSize is zero.
const DefaultChunkSize = 64 * 1024

// Options controls a hash computation. The zero value hashes with
// SHA256 in 64 KiB chunks and reports no progress.
type Options struct {
	// ChunkSize is the number of bytes read per step. Zero selects
	// DefaultChunkSize. The digest does not depend on it.
	ChunkSize int

	// Algorithm selects the hash function.
	Algorithm Algorithm

	// Progress, if set, is called after each chunk with the cumulative
	// byte count and the total size determined before reading began.
	// Called on the hashing goroutine.
	Progress func(read, total int64)
}

// HashFile computes the digest of the file at path and returns it as
// lowercase hex.
//
// The file is held under a shared advisory lock (flock LOCK_SH) while it
// is read, so a cooperating writer that takes an exclusive lock cannot
// modify it mid-hash. Waiting for that lock honours ctx. The total
// size is taken from fstat before reading starts. Failures to open,
// lock, stat, or read the file are returned as *fault.IOError;
// cancellation of ctx is returned as fault.ErrCancelled.
func HashFile(ctx context.Context, path string, options Options) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fault.IO("opening for hashing", path, err)
	}
	defer file.Close()

	if err := lockShared(ctx, file); err != nil {
		if errors.Is(err, fault.ErrCancelled) {
			return "", err
		}
		return "", fault.IO("locking for hashing", path, err)
	}
	defer unix.Flock(int(file.Fd()), unix.LOCK_UN)

	info, err := file.Stat()
	if err != nil {
		return "", fault.IO("stating for hashing", path, err)
	}
	if info.IsDir() {
		return "", fault.IO("hashing", path, errors.New("is a directory"))
	}

	digest, err := HashReader(ctx, file, info.Size(), options)
	if err != nil {
		if errors.Is(err, fault.ErrCancelled) {
			return "", err
		}
		return "", fault.IO("hashing", path, err)
	}
	return digest, nil
}

// HashReader streams reader through the selected hash in fixed-size
// chunks and returns the lowercase hex digest. total is passed through
// to the progress callback unchanged; it does not bound the read.
//
// Every chunk except the last is exactly ChunkSize bytes, so progress
// counts are strictly increasing.
func HashReader(ctx context.Context, reader io.Reader, total int64, options Options) (string, error) {
	chunkSize := options.ChunkSize
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkSize < 0 {
		return "", fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}

	hasher, err := options.Algorithm.newHash()
	if err != nil {
		return "", err
	}

	buffer := make([]byte, chunkSize)
	var read int64
	for {
		if err := ctx.Err(); err != nil {
			return "", fault.Cancelled(err)
		}

		count, readError := io.ReadFull(reader, buffer)
		if count > 0 {
			hasher.Write(buffer[:count])
			read += int64(count)
			if options.Progress != nil {
				options.Progress(read, total)
			}
		}

		if readError == io.EOF || readError == io.ErrUnexpectedEOF {
			break
		}
		if readError != nil {
			return "", fmt.Errorf("reading at offset %d: %w", read, readError)
		}
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
