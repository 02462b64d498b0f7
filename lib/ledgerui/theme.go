// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ledgerui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the color palette for the ledger view. All colors use
// lipgloss ANSI 256-color codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Row tints for blocks that pass and fail their integrity checks.
	ValidBackground    lipgloss.Color
	TamperedBackground lipgloss.Color

	StatusInfo  lipgloss.Color
	StatusWarn  lipgloss.Color
	StatusError lipgloss.Color

	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	ValidBackground:    lipgloss.Color("22"), // dark green
	TamperedBackground: lipgloss.Color("52"), // dark red

	StatusInfo:  lipgloss.Color("114"),
	StatusWarn:  lipgloss.Color("220"),
	StatusError: lipgloss.Color("196"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
}

// styles are the rendered styles for one output profile.
type styles struct {
	title    lipgloss.Style
	column   lipgloss.Style
	valid    lipgloss.Style
	tampered lipgloss.Style
	selected lipgloss.Style
	label    lipgloss.Style
	detail   lipgloss.Style
	info     lipgloss.Style
	warn     lipgloss.Style
	failure  lipgloss.Style
	help     lipgloss.Style
}

// newStyles binds theme to a renderer for output with the given color
// profile. termenv.Ascii yields plain text.
func newStyles(output io.Writer, profile termenv.Profile, theme Theme) styles {
	renderer := lipgloss.NewRenderer(output, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	return styles{
		title:    renderer.NewStyle().Bold(true).Foreground(theme.HeaderForeground),
		column:   renderer.NewStyle().Bold(true).Foreground(theme.FaintText),
		valid:    renderer.NewStyle().Foreground(theme.NormalText).Background(theme.ValidBackground),
		tampered: renderer.NewStyle().Foreground(theme.NormalText).Background(theme.TamperedBackground),
		selected: renderer.NewStyle().Bold(true).Foreground(theme.SelectedForeground).Background(theme.SelectedBackground),
		label:    renderer.NewStyle().Foreground(theme.FaintText),
		detail: renderer.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.BorderColor).
			Padding(0, 1),
		info:    renderer.NewStyle().Foreground(theme.StatusInfo),
		warn:    renderer.NewStyle().Foreground(theme.StatusWarn),
		failure: renderer.NewStyle().Bold(true).Foreground(theme.StatusError),
		help:    renderer.NewStyle().Foreground(theme.HelpText),
	}
}
