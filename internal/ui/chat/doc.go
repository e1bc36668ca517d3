// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the main chat view component for the challengely TUI.

The chat package implements a terminal chat interface using the Bubble Tea
framework. It is a thin presentation layer over the engine package: the
engine owns all conversation state and sequencing, and this package renders
snapshots of it and translates keystrokes into engine calls.

# Key Components

## Model (model.go)

The Model struct is the central Bubble Tea model:
  - Viewport over the engine's message timeline
  - Text input with the 500-character cap enforced at the field level
  - Suggestion chip row with Tab-cycling selection
  - Spinner shown while a reply is loading

## Update Loop (update.go)

Handles all Bubble Tea messages:
  - Keyboard input (send, suggestion cycling, history loading, scrolling)
  - Engine events pumped in via waitForEvent
  - Window resize handling

## View Rendering (view.go)

Rendering logic for the complete screen:
  - Header, message bubbles with per-sender styling
  - The auxiliary notice of a failed turn styled above its reply
  - Streaming cursor on the block currently being revealed
  - Character counter that warns near and at the input cap
  - Status bar with shortcuts and the engine state

# Usage

	eng := engine.New(engine.Config{Matcher: m, Store: st, Player: p})
	view := chat.New(eng, styles.NewTheme(), cfg.UI)
	prog := tea.NewProgram(view, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		log.Fatal(err)
	}
*/
package chat
