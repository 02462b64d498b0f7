// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"

	"github.com/bureau-foundation/filechain/lib/digest"
)

// progressLine redraws a single "name  NN%" line on a terminal as a
// file is hashed. It only writes when the whole percentage changes.
type progressLine struct {
	output  io.Writer
	name    string
	percent int
}

func newProgressLine(output io.Writer, name string) *progressLine {
	return &progressLine{output: output, name: name, percent: -1}
}

// report is a digest.Options.Progress callback.
func (line *progressLine) report(read, total int64) {
	update := digest.Progress{Read: read, Total: total}
	percent := int(update.Fraction() * 100)
	if percent == line.percent {
		return
	}
	line.percent = percent
	fmt.Fprintf(line.output, "\rhashing %s %3d%%", line.name, percent)
	if update.Done() {
		fmt.Fprintln(line.output)
	}
}
