// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"context"
	"errors"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/filechain/lib/fault"
)

// Lock polling backs off from lockRetryMin to lockRetryMax while an
// exclusive holder keeps the file.
const (
	lockRetryMin = 5 * time.Millisecond
	lockRetryMax = 100 * time.Millisecond
)

// lockShared takes a shared flock on file without blocking the caller
// past ctx. While another description holds LOCK_EX the lock is retried
// with backoff; cancellation of ctx ends the wait with fault.ErrCancelled.
func lockShared(ctx context.Context, file *os.File) error {
	fd := int(file.Fd())
	delay := lockRetryMin
	for {
		if err := ctx.Err(); err != nil {
			return fault.Cancelled(err)
		}

		err := unix.Flock(fd, unix.LOCK_SH|unix.LOCK_NB)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, unix.EINTR):
			continue
		case !errors.Is(err, unix.EWOULDBLOCK):
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fault.Cancelled(ctx.Err())
		case <-timer.C:
		}
		delay = min(delay*2, lockRetryMax)
	}
}
