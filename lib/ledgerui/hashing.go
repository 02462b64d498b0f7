// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ledgerui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/filechain/lib/digest"
)

// progressBuffer is how many undelivered progress updates a hash may
// queue before intermediate ones are dropped.
const progressBuffer = 8

// hashJob is one file being hashed off the event loop. The model keeps a
// pointer to the current job and ignores messages from any other.
type hashJob struct {
	path    string
	stream  *digest.ProgressStream
	options digest.Options
	ctx     context.Context
	cancel  context.CancelFunc
}

// progressMsg carries one progress update into the event loop.
type progressMsg struct {
	job      *hashJob
	progress digest.Progress
}

// hashedMsg carries a finished (or failed, or cancelled) hash.
type hashedMsg struct {
	job    *hashJob
	digest string
	err    error
}

func newHashJob(ctx context.Context, path string, options digest.Options) *hashJob {
	ctx, cancel := context.WithCancel(ctx)
	stream := digest.NewProgressStream(progressBuffer)
	options.Progress = stream.Report
	return &hashJob{
		path:    path,
		stream:  stream,
		options: options,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// start returns the commands that hash the file and relay its progress.
func (job *hashJob) start() tea.Cmd {
	return tea.Batch(job.run, job.next)
}

// run hashes the file. It executes on a bubbletea command goroutine.
func (job *hashJob) run() tea.Msg {
	defer job.cancel()
	hexDigest, err := digest.HashFile(job.ctx, job.path, job.options)
	job.stream.Close()
	return hashedMsg{job: job, digest: hexDigest, err: err}
}

// next waits for the job's next progress update. It returns nil once the
// stream is closed; the result arrives separately from run.
func (job *hashJob) next() tea.Msg {
	update, ok := <-job.stream.C()
	if !ok {
		return nil
	}
	return progressMsg{job: job, progress: update}
}
