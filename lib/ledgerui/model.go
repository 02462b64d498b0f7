// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ledgerui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/filechain/lib/chainstore"
	"github.com/bureau-foundation/filechain/lib/digest"
	"github.com/bureau-foundation/filechain/lib/fault"
	"github.com/bureau-foundation/filechain/lib/ledger"
)

// Options configures a Model.
type Options struct {
	// Chain is the ledger being viewed. Required. The model appends to
	// it, tampers with it, and restores into it.
	Chain *ledger.Chain

	// LedgerPath is where Save writes and Reload reads.
	LedgerPath string

	// Hashing configures content digests. Progress is replaced.
	Hashing digest.Options

	// Pending files are hashed and registered, in order, when the
	// program starts.
	Pending []string

	// Context bounds every hash the model starts. Defaults to
	// context.Background.
	Context context.Context

	// Output and Profile select how styles render. Defaults: os.Stdout
	// and the profile detected from the environment.
	Output  io.Writer
	Profile *termenv.Profile

	// Save and Load replace chainstore.Save and chainstore.Load.
	Save func(path string, blocks []ledger.Block) error
	Load func(path string) ([]ledger.Block, error)
}

// statusLevel picks the status line color.
type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarn
	statusError
)

// savedMsg reports the outcome of a save command.
type savedMsg struct{ err error }

// loadedMsg reports the outcome of a reload command.
type loadedMsg struct {
	blocks []ledger.Block
	err    error
}

// Model is the bubbletea model for the ledger view.
type Model struct {
	chain      *ledger.Chain
	ledgerPath string
	hashing    digest.Options
	ctx        context.Context
	save       func(string, []ledger.Block) error
	load       func(string) ([]ledger.Block, error)

	keys   KeyMap
	styles styles
	help   help.Model
	bar    progress.Model
	input  textinput.Model

	// queue holds files waiting to be hashed after the current job.
	queue    []string
	job      *hashJob
	progress digest.Progress

	cursor      int
	prompting   bool
	dirty       bool
	quitPending bool

	status      string
	statusLevel statusLevel

	width int
}

// NewModel creates a model over options.Chain.
func NewModel(options Options) Model {
	ctx := options.Context
	if ctx == nil {
		ctx = context.Background()
	}
	output := options.Output
	if output == nil {
		output = os.Stdout
	}
	profile := termenv.EnvColorProfile()
	if options.Profile != nil {
		profile = *options.Profile
	}
	save := options.Save
	if save == nil {
		save = chainstore.Save
	}
	load := options.Load
	if load == nil {
		load = chainstore.Load
	}

	input := textinput.New()
	input.Prompt = "file: "
	input.Placeholder = "path to register"

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithColorProfile(profile),
	)

	model := Model{
		chain:      options.Chain,
		ledgerPath: options.LedgerPath,
		hashing:    options.Hashing,
		ctx:        ctx,
		save:       save,
		load:       load,
		keys:       DefaultKeyMap,
		styles:     newStyles(output, profile, DefaultTheme),
		help:       help.New(),
		bar:        bar,
		input:      input,
		queue:      append([]string(nil), options.Pending...),
	}
	model.status = fmt.Sprintf("%d blocks loaded from %s", model.chain.Len(), model.ledgerPath)
	return model
}

// Init starts hashing the first pending file, if any.
func (model Model) Init() tea.Cmd {
	if len(model.queue) == 0 {
		return nil
	}
	// Init cannot return an updated model, so the first job is started
	// through a message.
	return func() tea.Msg { return startNextMsg{} }
}

// startNextMsg asks the model to start the next queued hash.
type startNextMsg struct{}

// Dirty reports whether the chain has changes that have not been saved.
func (model Model) Dirty() bool { return model.dirty }

// Update handles one message.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.help.Width = message.Width
		return model, nil

	case startNextMsg:
		return model.startNext()

	case progressMsg:
		if message.job != model.job {
			return model, nil
		}
		model.progress = message.progress
		return model, message.job.next

	case hashedMsg:
		if message.job != model.job {
			return model, nil
		}
		return model.finishHash(message)

	case savedMsg:
		if message.err != nil {
			model.setStatus(statusError, "save failed: %v", message.err)
			return model, nil
		}
		model.dirty = false
		model.setStatus(statusInfo, "Chain saved to %s", model.ledgerPath)
		return model, nil

	case loadedMsg:
		if message.err != nil {
			model.setStatus(statusError, "reload failed: %v", message.err)
			return model, nil
		}
		if err := model.chain.Restore(message.blocks); err != nil {
			model.setStatus(statusError, "reload failed: %v", err)
			return model, nil
		}
		model.dirty = false
		model.cursor = min(model.cursor, model.chain.Len()-1)
		model.setStatus(statusInfo, "Chain loaded from %s (%d blocks)", model.ledgerPath, model.chain.Len())
		return model, nil

	case tea.KeyMsg:
		if model.prompting {
			return model.updatePrompt(message)
		}
		return model.updateKeys(message)
	}
	return model, nil
}

func (model Model) updateKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(message, model.keys.Quit) {
		model.quitPending = false
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		if model.dirty && !model.quitPending {
			model.quitPending = true
			model.setStatus(statusWarn, "Unsaved changes: press q again to quit, or s to save")
			return model, nil
		}
		if model.job != nil {
			model.job.cancel()
		}
		return model, tea.Quit

	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}

	case key.Matches(message, model.keys.Down):
		if model.cursor < model.chain.Len()-1 {
			model.cursor++
		}

	case key.Matches(message, model.keys.Add):
		model.prompting = true
		model.input.SetValue("")
		return model, model.input.Focus()

	case key.Matches(message, model.keys.Verify):
		report := model.chain.Validate()
		if report.Valid {
			model.setStatus(statusInfo, "%s", report.Detail)
		} else {
			model.cursor = report.Index
			model.setStatus(statusError, "Invalid chain: %s", report.Detail)
		}

	case key.Matches(message, model.keys.Save):
		return model, model.saveCmd()

	case key.Matches(message, model.keys.Reload):
		return model, model.loadCmd()

	case key.Matches(message, model.keys.Tamper):
		return model.tamper()

	case key.Matches(message, model.keys.Cancel):
		if model.job != nil {
			model.job.cancel()
			model.queue = nil
			model.setStatus(statusWarn, "Cancelling %s", filepath.Base(model.job.path))
		}
	}
	return model, nil
}

func (model Model) updatePrompt(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Cancel):
		model.prompting = false
		model.input.Blur()
		return model, nil

	case key.Matches(message, model.keys.Submit):
		path := strings.TrimSpace(model.input.Value())
		model.prompting = false
		model.input.Blur()
		if path == "" {
			return model, nil
		}
		model.queue = append(model.queue, path)
		if model.job != nil {
			model.setStatus(statusInfo, "Queued %s", filepath.Base(path))
			return model, nil
		}
		return model.startNext()
	}

	var command tea.Cmd
	model.input, command = model.input.Update(message)
	return model, command
}

// startNext pops the queue and starts hashing, unless a job is running.
func (model Model) startNext() (tea.Model, tea.Cmd) {
	if model.job != nil || len(model.queue) == 0 {
		return model, nil
	}
	path := model.queue[0]
	model.queue = model.queue[1:]
	model.job = newHashJob(model.ctx, path, model.hashing)
	model.progress = digest.Progress{}
	model.setStatus(statusInfo, "Hashing %s", filepath.Base(path))
	return model, model.job.start()
}

// finishHash appends a block for a successful hash and moves on to the
// next queued file.
func (model Model) finishHash(message hashedMsg) (tea.Model, tea.Cmd) {
	model.job = nil
	name := filepath.Base(message.job.path)

	switch {
	case errors.Is(message.err, fault.ErrCancelled):
		model.setStatus(statusWarn, "Hashing %s cancelled", name)
		return model, nil
	case message.err != nil:
		model.setStatus(statusError, "%v", message.err)
	default:
		block := model.chain.Append(name, message.digest)
		model.dirty = true
		model.cursor = block.Index
		model.setStatus(statusInfo, "Added block %d (%s)", block.Index, name)
	}
	return model.startNext()
}

// tamper simulates an in-place edit of the selected block. Genesis is
// never tampered: Validate does not recheck it, so the edit would go
// unreported. With genesis selected, block 1 is used instead.
func (model Model) tamper() (tea.Model, tea.Cmd) {
	if model.chain.Len() < 2 {
		model.setStatus(statusWarn, "Add at least one block first")
		return model, nil
	}
	index := model.cursor
	if index == 0 {
		index = 1
	}
	err := model.chain.Tamper(index, func(block *ledger.Block) {
		block.FileName += ledger.TamperSuffix
	})
	if err != nil {
		model.setStatus(statusError, "%v", err)
		return model, nil
	}
	model.dirty = true
	model.cursor = index
	model.setStatus(statusWarn, "Block %d modified (tamper simulated)", index)
	return model, nil
}

func (model Model) saveCmd() tea.Cmd {
	save, path, blocks := model.save, model.ledgerPath, model.chain.Blocks()
	return func() tea.Msg {
		return savedMsg{err: save(path, blocks)}
	}
}

func (model Model) loadCmd() tea.Cmd {
	load, path := model.load, model.ledgerPath
	return func() tea.Msg {
		blocks, err := load(path)
		return loadedMsg{blocks: blocks, err: err}
	}
}

func (model *Model) setStatus(level statusLevel, format string, args ...any) {
	model.statusLevel = level
	model.status = fmt.Sprintf(format, args...)
}
