// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ledgerui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/filechain/lib/ledger"
)

const (
	// digestColumnWidth is the visible width of truncated digests in
	// the table, ellipsis included.
	digestColumnWidth = 20
	fileColumnWidth   = 28
)

// View renders the model.
func (model Model) View() string {
	var builder strings.Builder

	title := "filechain  " + model.ledgerPath
	if model.dirty {
		title += "  [modified]"
	}
	builder.WriteString(model.styles.title.Render(title))
	builder.WriteString("\n\n")

	builder.WriteString(model.renderTable())
	builder.WriteString("\n")

	if model.job != nil {
		fmt.Fprintf(&builder, "%s %s\n", model.bar.ViewAs(model.progress.Fraction()),
			filepath.Base(model.job.path))
	}

	if block, ok := model.chain.Block(model.cursor); ok {
		builder.WriteString(model.styles.detail.Render(model.renderDetail(block)))
		builder.WriteString("\n")
	}

	if model.prompting {
		builder.WriteString(model.input.View())
		builder.WriteString("\n")
	}

	builder.WriteString(model.renderStatus())
	builder.WriteString("\n")
	builder.WriteString(model.styles.help.Render(model.help.View(model.keys)))
	return builder.String()
}

func (model Model) renderTable() string {
	var builder strings.Builder
	header := fmt.Sprintf("%-5s  %-20s  %-*s  %-*s  %s",
		"INDEX", "TIMESTAMP", fileColumnWidth, "FILE", digestColumnWidth, "HASH", "STATUS")
	builder.WriteString(model.styles.column.Render(header))
	builder.WriteString("\n")

	for _, status := range model.chain.Inspect() {
		block := status.Block
		line := fmt.Sprintf("%-5d  %-20s  %s  %s  %s",
			block.Index,
			block.Timestamp,
			pad(ansi.Truncate(block.FileName, fileColumnWidth, "…"), fileColumnWidth),
			pad(ShortDigest(block.Hash), digestColumnWidth),
			StatusLabel(status),
		)

		style := model.styles.valid
		if !status.OK() {
			style = model.styles.tampered
		}
		if block.Index == model.cursor {
			style = model.styles.selected
			line = "> " + line
		} else {
			line = "  " + line
		}
		builder.WriteString(style.Render(line))
		builder.WriteString("\n")
	}
	return builder.String()
}

func (model Model) renderDetail(block ledger.Block) string {
	rows := []struct{ label, value string }{
		{"Index", fmt.Sprint(block.Index)},
		{"Timestamp", block.Timestamp},
		{"File Name", block.FileName},
		{"File Hash", block.FileHash},
		{"Previous Hash", block.PreviousHash},
		{"Hash", block.Hash},
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = model.styles.label.Render(fmt.Sprintf("%-14s", row.label)) + row.value
	}
	return strings.Join(lines, "\n")
}

func (model Model) renderStatus() string {
	switch model.statusLevel {
	case statusWarn:
		return model.styles.warn.Render(model.status)
	case statusError:
		return model.styles.failure.Render(model.status)
	default:
		return model.styles.info.Render(model.status)
	}
}

// ShortDigest truncates a hex digest for table display.
func ShortDigest(hexDigest string) string {
	return ansi.Truncate(hexDigest, digestColumnWidth, "…")
}

// StatusLabel names which integrity check a block fails, if any.
func StatusLabel(status ledger.BlockStatus) string {
	switch {
	case status.OK():
		return "ok"
	case !status.DigestOK && !status.LinkOK:
		return "digest+link"
	case !status.DigestOK:
		return "digest"
	default:
		return "link"
	}
}

// pad right-pads s with spaces to width visible cells.
func pad(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
