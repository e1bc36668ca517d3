// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package engine

import (
	"github.com/jeranaias/challengely-tui/internal/model"
)

// =============================================================================
// ENGINE EVENTS
// =============================================================================

// Event is a notification emitted by the engine as a turn progresses. The UI
// consumes events from Events() and re-renders from the engine's snapshot
// accessors; events carry just enough payload to target the change.
type Event interface{ isEngineEvent() }

// StateChangedEvent fires on every Idle/Loading/Streaming transition.
type StateChangedEvent struct {
	State State
}

// UserMessageEvent fires when a sent message is appended to the timeline.
type UserMessageEvent struct {
	Block model.MessageBlock
}

// AssistantBlockEvent fires when an assistant block joins the timeline,
// either a streaming shell about to fill in or a complete rejection block.
type AssistantBlockEvent struct {
	Block model.MessageBlock
}

// StreamChunkEvent fires once per revealed character of a streaming reply.
// Text is the full revealed prefix, not the single character.
type StreamChunkEvent struct {
	BlockID string
	Text    string
}

// TurnCompletedEvent fires when a turn resolves and follow-up suggestions
// are ready. It precedes the transition back to Idle.
type TurnCompletedEvent struct {
	BlockID     string
	Suggestions []string
}

// HistoryLoadedEvent fires after an older page of conversation history is
// prepended to the timeline. Blocks are ordered oldest first.
type HistoryLoadedEvent struct {
	Page   int
	Blocks []model.MessageBlock
}

func (StateChangedEvent) isEngineEvent()   {}
func (UserMessageEvent) isEngineEvent()    {}
func (AssistantBlockEvent) isEngineEvent() {}
func (StreamChunkEvent) isEngineEvent()    {}
func (TurnCompletedEvent) isEngineEvent()  {}
func (HistoryLoadedEvent) isEngineEvent()  {}
