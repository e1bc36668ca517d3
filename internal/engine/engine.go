// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine drives the chat session state machine.
package engine

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/jeranaias/challengely-tui/internal/classify"
	"github.com/jeranaias/challengely-tui/internal/model"
	"github.com/jeranaias/challengely-tui/internal/respond"
	"github.com/jeranaias/challengely-tui/internal/storage"
	"github.com/jeranaias/challengely-tui/internal/stream"
)

// DefaultResponseDelay is the artificial processing delay before a reply,
// kept to reproduce the pacing of a real generation round-trip.
const DefaultResponseDelay = 2 * time.Second

// NearLimitThreshold is the character count at which the input counter
// switches to its warning treatment.
const NearLimitThreshold = 450

const eventBuffer = 256

var (
	// ErrBusy is returned by Send while a turn is loading or streaming.
	// There is no queueing of pending sends.
	ErrBusy = errors.New("a turn is already in progress")

	// ErrEmptyInput is returned by Send when the trimmed input is empty.
	ErrEmptyInput = errors.New("input is empty")
)

// =============================================================================
// STATE
// =============================================================================

// State is the engine's position in the turn lifecycle.
type State int

const (
	// StateIdle accepts new input.
	StateIdle State = iota

	// StateLoading covers classification, matching, and persistence,
	// including the artificial response delay.
	StateLoading

	// StateStreaming covers the character-by-character reply reveal.
	StateStreaming
)

// String returns the state's display name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateStreaming:
		return "streaming"
	default:
		return "unknown"
	}
}

// =============================================================================
// ENGINE
// =============================================================================

// Config holds the engine's injected collaborators.
type Config struct {
	Matcher *respond.Matcher
	Store   *storage.ConversationStore
	Player  *stream.Player

	// Clock drives the response delay and record timestamps. Nil means the
	// system clock.
	Clock stream.Clock

	// ResponseDelay overrides DefaultResponseDelay when positive.
	ResponseDelay time.Duration
}

// Engine is the chat session state machine. It owns the message timeline and
// the current suggestion chips, sequences classification, matching,
// persistence and streaming for each turn, and emits events as the turn
// progresses.
//
// Turns are strictly sequential: Send is rejected while a prior turn is
// loading or streaming, so at most one generation and one stream session are
// ever in flight.
type Engine struct {
	mu sync.Mutex

	state       State
	blocks      []model.MessageBlock
	suggestions []string
	nextPage    int

	matcher *respond.Matcher
	store   *storage.ConversationStore
	player  *stream.Player
	clock   stream.Clock
	delay   time.Duration

	events chan Event
}

// New creates an engine and seeds the timeline with the welcome message and
// an initial set of suggestion chips.
func New(cfg Config) *Engine {
	clock := cfg.Clock
	if clock == nil {
		clock = stream.SystemClock{}
	}
	delay := cfg.ResponseDelay
	if delay <= 0 {
		delay = DefaultResponseDelay
	}

	e := &Engine{
		state:    StateIdle,
		nextPage: 1,
		matcher:  cfg.Matcher,
		store:    cfg.Store,
		player:   cfg.Player,
		clock:    clock,
		delay:    delay,
		events:   make(chan Event, eventBuffer),
	}

	welcome := model.NewMessageBlock(model.SenderAssistant, respond.WelcomeMessage)
	e.blocks = append(e.blocks, welcome)
	e.suggestions = e.matcher.WelcomeSuggestions()

	return e
}

// Events returns the engine's event stream.
func (e *Engine) Events() <-chan Event {
	return e.events
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Blocks returns a snapshot of the message timeline, oldest first.
func (e *Engine) Blocks() []model.MessageBlock {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.MessageBlock, len(e.blocks))
	copy(out, e.blocks)
	return out
}

// Suggestions returns a snapshot of the current suggestion chips.
func (e *Engine) Suggestions() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.suggestions))
	copy(out, e.suggestions)
	return out
}

// =============================================================================
// INPUT GATING
// =============================================================================

// CanSend reports whether draft would pass the Send guard right now.
func (e *Engine) CanSend(draft string) bool {
	if strings.TrimSpace(draft) == "" {
		return false
	}
	return e.State() == StateIdle
}

// CharacterCount returns the number of characters in the draft, counted the
// same way the length validator counts them.
func CharacterCount(draft string) int {
	return len([]rune(draft))
}

// NearLimit reports whether the draft is close enough to the input cap that
// the counter should warn.
func NearLimit(draft string) bool {
	return CharacterCount(draft) > NearLimitThreshold
}

// AtLimit reports whether the draft has reached the input cap.
func AtLimit(draft string) bool {
	return CharacterCount(draft) >= classify.MaxInputChars
}

// =============================================================================
// SENDING
// =============================================================================

// Send submits user input and starts a turn. The guard is strict: input must
// trim non-empty and the engine must be Idle, otherwise the call returns an
// error and state is unchanged. On acceptance the user's block is appended,
// suggestions are cleared, and the engine moves to Loading while the reply
// resolves in the background.
func (e *Engine) Send(text string) error {
	trimmed := strings.TrimSpace(text)

	e.mu.Lock()
	if e.state != StateIdle {
		e.mu.Unlock()
		return ErrBusy
	}
	if trimmed == "" {
		e.mu.Unlock()
		return ErrEmptyInput
	}

	userBlock := model.NewMessageBlock(model.SenderUser, trimmed)
	e.blocks = append(e.blocks, userBlock)
	e.suggestions = nil
	e.state = StateLoading
	e.mu.Unlock()

	e.emit(UserMessageEvent{Block: userBlock})
	e.emit(StateChangedEvent{State: StateLoading})

	go e.resolveTurn(trimmed)
	return nil
}

// SuggestionTap submits a tapped suggestion chip. It is exactly a Send of
// the chip's text, same guard included.
func (e *Engine) SuggestionTap(suggestion string) error {
	return e.Send(suggestion)
}

// resolveTurn runs the Loading phase and whatever follows it.
func (e *Engine) resolveTurn(text string) {
	<-e.clock.After(e.delay)

	result := classify.Classify(text)
	var resp respond.Response
	if result.Accepted {
		resp = e.matcher.Match(result.Text)
	} else {
		resp = e.matcher.Reject()
	}

	rec := model.NewConversationRecord(text, resp.Reply, resp.ResponseMessage, resp.IsSuccess, e.clock.Now())
	// Persistence failures are silent data loss; the turn still resolves so
	// the user always gets a reply.
	_ = e.store.Save(rec)

	if resp.IsSuccess {
		e.streamReply(text, resp)
	} else {
		e.rejectReply(text, resp)
	}
}

// streamReply plays the matched reply character by character, then computes
// follow-up suggestions and returns to Idle.
func (e *Engine) streamReply(text string, resp respond.Response) {
	block := model.NewStreamingBlock()

	e.mu.Lock()
	e.blocks = append(e.blocks, block)
	e.state = StateStreaming
	e.mu.Unlock()

	e.emit(AssistantBlockEvent{Block: block})
	e.emit(StateChangedEvent{State: StateStreaming})

	session := e.player.Start(resp.Reply)
	for ev := range session.Events() {
		switch ev := ev.(type) {
		case stream.Chunk:
			e.setBlockText(block.ID, ev.Prefix, true)
			e.emit(StreamChunkEvent{BlockID: block.ID, Text: ev.Prefix})
		case stream.Done:
			e.setBlockText(block.ID, resp.Reply, false)
		}
	}
	if session.Cancelled() {
		// Superseded stream: surface nothing further for this turn, but
		// return the machine to Idle so it never pins in Streaming.
		e.mu.Lock()
		e.state = StateIdle
		e.mu.Unlock()
		e.emit(StateChangedEvent{State: StateIdle})
		return
	}

	e.completeTurn(block.ID, text)
}

// rejectReply appends the non-streamed assistant block for a failed turn:
// the auxiliary message, when present, above the stored reply.
func (e *Engine) rejectReply(text string, resp respond.Response) {
	var fragments []string
	if resp.ResponseMessage != "" {
		fragments = append(fragments, resp.ResponseMessage)
	}
	fragments = append(fragments, resp.Reply)
	block := model.NewMessageBlock(model.SenderAssistant, fragments...)

	e.mu.Lock()
	e.blocks = append(e.blocks, block)
	e.mu.Unlock()

	e.emit(AssistantBlockEvent{Block: block})
	e.completeTurn(block.ID, text)
}

// completeTurn computes suggestions for the next turn and returns to Idle.
func (e *Engine) completeTurn(blockID, text string) {
	suggestions := e.matcher.SuggestionsFor(text)

	e.mu.Lock()
	e.suggestions = suggestions
	e.state = StateIdle
	e.mu.Unlock()

	e.emit(TurnCompletedEvent{BlockID: blockID, Suggestions: suggestions})
	e.emit(StateChangedEvent{State: StateIdle})
}

// setBlockText replaces the final fragment of the identified block and
// updates its streaming flag.
//
// Snapshots handed out by Blocks and event payloads share each block's
// fragment backing array, so the update installs a freshly allocated slice
// rather than writing through the shared one. Fragments are immutable once
// a snapshot holds them.
func (e *Engine) setBlockText(blockID, text string, streaming bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.blocks {
		if e.blocks[i].ID != blockID {
			continue
		}
		fragments := make([]string, len(e.blocks[i].Fragments))
		copy(fragments, e.blocks[i].Fragments)
		fragments[len(fragments)-1] = text
		e.blocks[i].Fragments = fragments
		e.blocks[i].Streaming = streaming
		return
	}
}

// =============================================================================
// HISTORY PAGINATION
// =============================================================================

// LoadOlder fetches the next unserved page of today's history and prepends
// its blocks to the timeline, oldest at top. It does not touch the turn
// state, so it is allowed mid-stream. Returns the number of records loaded;
// storage.ErrNoMoreHistory and storage.ErrPageOutOfRange pass through.
func (e *Engine) LoadOlder() (int, error) {
	e.mu.Lock()
	page := e.nextPage
	e.mu.Unlock()

	records, err := e.store.Page(page)
	if err != nil {
		return 0, err
	}

	blocks := make([]model.MessageBlock, 0, len(records)*2)
	for _, rec := range records {
		user := model.NewMessageBlock(model.SenderUser, rec.Query)
		user.Timestamp = rec.Timestamp
		blocks = append(blocks, user)

		var fragments []string
		if rec.HasResponseMessage() {
			fragments = append(fragments, rec.ResponseMessage)
		}
		fragments = append(fragments, rec.Reply)
		assistant := model.NewMessageBlock(model.SenderAssistant, fragments...)
		assistant.Timestamp = rec.Timestamp
		blocks = append(blocks, assistant)
	}

	e.mu.Lock()
	e.blocks = append(blocks, e.blocks...)
	e.nextPage++
	e.mu.Unlock()

	e.emit(HistoryLoadedEvent{Page: page, Blocks: blocks})
	return len(records), nil
}

// =============================================================================
// SHUTDOWN
// =============================================================================

// Close halts any active stream session. Safe to call at any time.
func (e *Engine) Close() {
	e.player.Cancel()
}

func (e *Engine) emit(ev Event) {
	e.events <- ev
}
