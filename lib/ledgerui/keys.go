// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ledgerui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the ledger view.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	// Add prompts for a file path to hash and register.
	Add key.Binding

	Verify key.Binding
	Save   key.Binding

	// Reload replaces the in-memory chain with the ledger on disk.
	Reload key.Binding

	// Tamper edits the selected block in place without recomputing its
	// digest, to show that verification catches it.
	Tamper key.Binding

	// Cancel stops a running hash or closes the path prompt.
	Cancel key.Binding

	// Submit confirms the path prompt.
	Submit key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add file"),
	),
	Verify: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "verify"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Tamper: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "simulate tamper"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Add, keys.Verify, keys.Save, keys.Reload, keys.Tamper, keys.Quit}
}

// FullHelp implements help.KeyMap.
func (keys KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Up, keys.Down},
		keys.ShortHelp(),
		{keys.Cancel, keys.Submit},
	}
}
