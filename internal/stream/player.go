// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package stream replays reply text as a timed character-reveal simulation.
package stream

import (
	"sync"
	"time"
)

// DefaultInterval is the fixed delay after each revealed character.
const DefaultInterval = 50 * time.Millisecond

// =============================================================================
// EVENTS
// =============================================================================

// Event is one occurrence in a stream session: a Chunk per revealed
// character, then a single Done.
type Event interface{ isStreamEvent() }

// Chunk reveals one more character of the target text.
type Chunk struct {
	// Char is the newly revealed character.
	Char string

	// Prefix is the full revealed text so far, Char included.
	Prefix string
}

// Done signals that the full text has been revealed. It fires exactly once,
// and never after cancellation.
type Done struct{}

func (Chunk) isStreamEvent() {}
func (Done) isStreamEvent()  {}

// =============================================================================
// SESSION
// =============================================================================

// Session is one cancellable replay of a reply string. Events arrive on
// Events() in character order, each followed by the configured interval;
// after the final character the session emits Done and closes the channel.
type Session struct {
	text     string
	interval time.Duration
	clock    Clock

	events   chan Event
	finished chan struct{}

	cancelCh   chan struct{}
	cancelOnce sync.Once
}

func newSession(text string, interval time.Duration, clock Clock) *Session {
	runeCount := len([]rune(text))
	return &Session{
		text:     text,
		interval: interval,
		clock:    clock,
		// Buffered for every chunk plus Done, so the run loop never blocks
		// on a consumer and cancellation stays synchronous.
		events:   make(chan Event, runeCount+1),
		finished: make(chan struct{}),
		cancelCh: make(chan struct{}),
	}
}

// Events returns the session's event stream. The channel closes when the
// session terminates, whether by completion or cancellation.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Text returns the full target text of the session.
func (s *Session) Text() string {
	return s.text
}

// Cancel halts the session. It is synchronous: when it returns, the replay
// goroutine has stopped and no further events will be emitted. Safe to call
// multiple times or after completion.
func (s *Session) Cancel() {
	s.cancelOnce.Do(func() { close(s.cancelCh) })
	<-s.finished
}

// Cancelled reports whether Cancel was invoked.
func (s *Session) Cancelled() bool {
	select {
	case <-s.cancelCh:
		return true
	default:
		return false
	}
}

func (s *Session) run() {
	defer close(s.events)
	defer close(s.finished)

	revealed := make([]rune, 0, len([]rune(s.text)))
	for _, r := range s.text {
		select {
		case <-s.cancelCh:
			return
		default:
		}

		revealed = append(revealed, r)
		s.events <- Chunk{Char: string(r), Prefix: string(revealed)}

		select {
		case <-s.cancelCh:
			return
		case <-s.clock.After(s.interval):
		}
	}

	s.events <- Done{}
}

// =============================================================================
// PLAYER
// =============================================================================

// Player launches stream sessions. At most one session is active per player;
// starting a new one synchronously cancels and discards any prior session.
// There is no queueing and no interleaving.
type Player struct {
	mu       sync.Mutex
	interval time.Duration
	clock    Clock
	current  *Session
}

// NewPlayer creates a player with the given per-character interval and
// clock. A non-positive interval falls back to DefaultInterval; a nil clock
// falls back to the system clock.
func NewPlayer(interval time.Duration, clock Clock) *Player {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Player{interval: interval, clock: clock}
}

// Start cancels any active session and begins replaying text. The returned
// session's event channel is ready immediately.
func (p *Player) Start(text string) *Session {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		p.current.Cancel()
	}

	s := newSession(text, p.interval, p.clock)
	p.current = s
	go s.run()
	return s
}

// Cancel halts the active session, if any.
func (p *Player) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		p.current.Cancel()
		p.current = nil
	}
}
