// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/challengely-tui/internal/classify"
	"github.com/jeranaias/challengely-tui/internal/config"
	"github.com/jeranaias/challengely-tui/internal/engine"
	"github.com/jeranaias/challengely-tui/internal/ui/styles"
)

// noSelection marks that no suggestion chip is highlighted.
const noSelection = -1

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int
	ready  bool

	// Engine
	engine *engine.Engine

	// UI Components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// Key bindings
	keyMap KeyMap

	// Suggestion chips
	suggestions []string
	selected    int

	// Status line
	status         string
	showTimestamps bool
}

// New creates the chat model around a running engine.
func New(eng *engine.Engine, theme *styles.Theme, uiCfg config.UIConfig) Model {
	input := textinput.New()
	input.Placeholder = "Ask about your challenge..."
	input.CharLimit = classify.MaxInputChars
	input.Prompt = "> "
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return Model{
		theme:          theme,
		engine:         eng,
		input:          input,
		spinner:        sp,
		keyMap:         DefaultKeyMap(),
		suggestions:    eng.Suggestions(),
		selected:       noSelection,
		showTimestamps: uiCfg.ShowTimestamps,
	}
}

// Init starts the input cursor, the spinner, and the engine event pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		waitForEvent(m.engine.Events()),
	)
}

// draft returns the current input text.
func (m Model) draft() string {
	return m.input.Value()
}

// selectedSuggestion returns the highlighted chip text, or "" when none is.
func (m Model) selectedSuggestion() string {
	if m.selected < 0 || m.selected >= len(m.suggestions) {
		return ""
	}
	return m.suggestions[m.selected]
}
