// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package digest

// Progress is one progress notification from a running hash.
type Progress struct {
	Read  int64
	Total int64
}

// Done reports whether the notification covers the whole file.
func (p Progress) Done() bool { return p.Read >= p.Total }

// Fraction returns Read/Total in [0, 1]. An empty file is complete.
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 1
	}
	fraction := float64(p.Read) / float64(p.Total)
	if fraction > 1 {
		return 1
	}
	return fraction
}

// ProgressStream carries progress from a hashing goroutine to a consumer
// on another goroutine (typically a UI event loop) as messages instead of
// shared state.
//
// Intermediate notifications are dropped when the channel is full, so a
// slow consumer never stalls hashing. The final notification (Read ==
// Total) is always delivered. Report and Close must be called from the
// hashing goroutine.
type ProgressStream struct {
	channel chan Progress
}

// NewProgressStream creates a stream whose channel holds up to buffer
// undelivered notifications. buffer below 1 is treated as 1.
func NewProgressStream(buffer int) *ProgressStream {
	if buffer < 1 {
		buffer = 1
	}
	return &ProgressStream{channel: make(chan Progress, buffer)}
}

// Report is an Options.Progress callback.
func (s *ProgressStream) Report(read, total int64) {
	update := Progress{Read: read, Total: total}
	if update.Done() {
		s.channel <- update
		return
	}
	select {
	case s.channel <- update:
	default:
	}
}

// C returns the receive side of the stream. It is closed by Close.
func (s *ProgressStream) C() <-chan Progress { return s.channel }

// Close ends the stream. Call it once, after the hash returns.
func (s *ProgressStream) Close() { close(s.channel) }
