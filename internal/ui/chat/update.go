// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/challengely-tui/internal/engine"
	"github.com/jeranaias/challengely-tui/internal/storage"
)

// =============================================================================
// UPDATE LOOP
// =============================================================================

// Update handles all incoming messages for the chat view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EngineEventMsg:
		m, cmd := m.handleEngineEvent(msg.Event)
		// Keep the pump running no matter what the event was.
		return m, tea.Batch(cmd, waitForEvent(m.engine.Events()))

	case HistoryResultMsg:
		return m.handleHistoryResult(msg)

	case StatusExpiredMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// resize recalculates component dimensions for a new terminal size.
func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	headerHeight := 1
	suggestionHeight := 3
	inputHeight := 3
	statusHeight := 1
	viewportHeight := height - headerHeight - suggestionHeight - inputHeight - statusHeight
	if viewportHeight < 3 {
		viewportHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(width, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = viewportHeight
	}
	m.input.Width = width - 8

	m.refreshTimeline(false)
	return m
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.engine.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit):
		return m.submit()

	case key.Matches(msg, m.keyMap.NextSuggestion):
		m = m.cycleSuggestion(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PrevSuggestion):
		m = m.cycleSuggestion(-1)
		return m, nil

	case key.Matches(msg, m.keyMap.ClearSelection):
		m.selected = noSelection
		return m, nil

	case key.Matches(msg, m.keyMap.LoadOlder):
		return m, loadOlderCmd(m.engine)

	case key.Matches(msg, m.keyMap.Up), key.Matches(msg, m.keyMap.Down),
		key.Matches(msg, m.keyMap.PageUp), key.Matches(msg, m.keyMap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// Typing dismisses any highlighted chip.
	m.selected = noSelection
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends either the highlighted suggestion or the typed draft.
func (m Model) submit() (tea.Model, tea.Cmd) {
	var err error
	if sel := m.selectedSuggestion(); sel != "" {
		err = m.engine.SuggestionTap(sel)
	} else {
		err = m.engine.Send(m.draft())
	}

	switch {
	case err == nil:
		m.input.Reset()
		m.selected = noSelection
		return m, nil
	case errors.Is(err, engine.ErrBusy):
		m.status = "Hold on - still working on the last reply"
		return m, expireStatusCmd()
	case errors.Is(err, engine.ErrEmptyInput):
		return m, nil
	default:
		m.status = err.Error()
		return m, expireStatusCmd()
	}
}

// cycleSuggestion moves the chip highlight by delta, wrapping around.
func (m Model) cycleSuggestion(delta int) Model {
	n := len(m.suggestions)
	if n == 0 {
		m.selected = noSelection
		return m
	}
	if m.selected == noSelection {
		if delta > 0 {
			m.selected = 0
		} else {
			m.selected = n - 1
		}
		return m
	}
	m.selected = ((m.selected+delta)%n + n) % n
	return m
}

// =============================================================================
// ENGINE EVENTS
// =============================================================================

func (m Model) handleEngineEvent(ev engine.Event) (Model, tea.Cmd) {
	switch ev := ev.(type) {
	case engine.UserMessageEvent:
		m.suggestions = nil
		m.selected = noSelection
		m.refreshTimeline(true)

	case engine.StateChangedEvent:
		m.refreshTimeline(ev.State != engine.StateIdle)

	case engine.AssistantBlockEvent:
		m.refreshTimeline(true)

	case engine.StreamChunkEvent:
		m.refreshTimeline(true)

	case engine.TurnCompletedEvent:
		m.suggestions = ev.Suggestions
		m.selected = noSelection
		m.refreshTimeline(true)

	case engine.HistoryLoadedEvent:
		// Prepended content: keep the user's scroll position at the top of
		// what they were reading rather than jumping.
		m.refreshTimeline(false)
	}

	return m, nil
}

func (m Model) handleHistoryResult(msg HistoryResultMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Err == nil:
		m.status = ""
		return m, nil
	case errors.Is(msg.Err, storage.ErrNoMoreHistory),
		errors.Is(msg.Err, storage.ErrPageOutOfRange):
		m.status = "No more messages from today"
		return m, expireStatusCmd()
	default:
		m.status = "Could not load history: " + msg.Err.Error()
		return m, expireStatusCmd()
	}
}

// refreshTimeline re-renders the viewport from the engine's timeline.
func (m *Model) refreshTimeline(scrollToBottom bool) {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderBlocks())
	if scrollToBottom {
		m.viewport.GotoBottom()
	}
}
