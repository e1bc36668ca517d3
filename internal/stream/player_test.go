// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package stream

import (
	"strings"
	"sync"
	"testing"
	"time"
)

// instantClock fires every After immediately so sessions complete without
// real sleeping, while still counting how many intervals elapsed.
type instantClock struct {
	mu    sync.Mutex
	now   time.Time
	ticks int
}

func (c *instantClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *instantClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.ticks++
	fired := c.now
	c.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- fired
	return ch
}

func (c *instantClock) tickCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// stuckClock never fires, pinning a session at its first interval wait.
type stuckClock struct{}

func (stuckClock) Now() time.Time                         { return time.Time{} }
func (stuckClock) After(time.Duration) <-chan time.Time   { return make(chan time.Time) }

func drain(t *testing.T, s *Session) (chunks []Chunk, done bool) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-s.Events():
			if !ok {
				return chunks, done
			}
			switch ev := ev.(type) {
			case Chunk:
				chunks = append(chunks, ev)
			case Done:
				done = true
			}
		case <-timeout:
			t.Fatal("session did not terminate")
		}
	}
}

func TestSessionEmitsEveryCharacterThenDone(t *testing.T) {
	clock := &instantClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	player := NewPlayer(DefaultInterval, clock)

	text := "Great work! 🎉"
	chunks, done := drain(t, player.Start(text))

	runes := []rune(text)
	if len(chunks) != len(runes) {
		t.Fatalf("chunks = %d, want %d", len(chunks), len(runes))
	}
	if !done {
		t.Fatal("completion event never fired")
	}

	var b strings.Builder
	for i, ch := range chunks {
		if ch.Char != string(runes[i]) {
			t.Errorf("chunk %d char = %q, want %q", i, ch.Char, string(runes[i]))
		}
		b.WriteString(ch.Char)
		if ch.Prefix != b.String() {
			t.Errorf("chunk %d prefix = %q, want %q", i, ch.Prefix, b.String())
		}
	}

	// One interval per character, the final character included.
	if got := clock.tickCount(); got != len(runes) {
		t.Errorf("intervals = %d, want %d", got, len(runes))
	}
}

func TestSessionEmptyText(t *testing.T) {
	player := NewPlayer(DefaultInterval, &instantClock{})

	chunks, done := drain(t, player.Start(""))
	if len(chunks) != 0 {
		t.Fatalf("chunks = %d, want 0", len(chunks))
	}
	if !done {
		t.Fatal("empty session should still complete")
	}
}

func TestCancelSuppressesRemainingEvents(t *testing.T) {
	player := NewPlayer(DefaultInterval, stuckClock{})

	session := player.Start("hello")
	session.Cancel()

	// Cancel is synchronous, so the channel is already closed and holds at
	// most the single chunk emitted before the first interval wait.
	chunks, done := drain(t, session)
	if len(chunks) > 1 {
		t.Errorf("chunks after cancel = %d, want at most 1", len(chunks))
	}
	if done {
		t.Error("completion event fired after cancel")
	}
	if !session.Cancelled() {
		t.Error("Cancelled() = false after Cancel")
	}
}

func TestStartCancelsPriorSession(t *testing.T) {
	player := NewPlayer(DefaultInterval, stuckClock{})

	first := player.Start("first reply")
	second := player.Start("second reply")

	if !first.Cancelled() {
		t.Error("starting a new session did not cancel the prior one")
	}
	if _, done := drain(t, first); done {
		t.Error("cancelled session reported completion")
	}

	second.Cancel()
}

func TestCancelIsIdempotent(t *testing.T) {
	player := NewPlayer(DefaultInterval, &instantClock{})

	session := player.Start("ok")
	drain(t, session)

	// After natural completion, Cancel must not panic or block.
	session.Cancel()
	session.Cancel()
	player.Cancel()
}
