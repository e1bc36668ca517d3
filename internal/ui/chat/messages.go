// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/challengely-tui/internal/engine"
)

// =============================================================================
// TEA MESSAGES
// =============================================================================

// EngineEventMsg wraps an engine event for the Bubble Tea update loop.
type EngineEventMsg struct {
	Event engine.Event
}

// HistoryResultMsg reports the outcome of a history page load.
type HistoryResultMsg struct {
	Loaded int
	Err    error
}

// StatusExpiredMsg clears a transient status line message.
type StatusExpiredMsg struct{}

// =============================================================================
// COMMANDS
// =============================================================================

// waitForEvent blocks on the engine's event stream and delivers the next
// event to the update loop. Re-issued after every received event.
func waitForEvent(events <-chan engine.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return EngineEventMsg{Event: ev}
	}
}

// loadOlderCmd runs a history page fetch off the update loop.
func loadOlderCmd(eng *engine.Engine) tea.Cmd {
	return func() tea.Msg {
		n, err := eng.LoadOlder()
		return HistoryResultMsg{Loaded: n, Err: err}
	}
}

// expireStatusCmd clears the status line after a short delay.
func expireStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return StatusExpiredMsg{}
	})
}
