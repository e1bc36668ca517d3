// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides day-scoped conversation persistence.
package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/jeranaias/challengely-tui/internal/kv"
	"github.com/jeranaias/challengely-tui/internal/model"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrPageOutOfRange is returned when a requested page number is below 1
	// or beyond the last page.
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrNoMoreHistory is returned when a page request would re-serve a
	// window at or after the last one served.
	ErrNoMoreHistory = errors.New("no more history")
)

// =============================================================================
// CLOCK
// =============================================================================

// Clock supplies the current time. Injecting it makes day-rollover behavior
// deterministically testable.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }

// =============================================================================
// CONVERSATION STORE
// =============================================================================

// Persisted keys, written together on every save.
const (
	historyKey     = "history"
	lastSavedOnKey = "lastSavedOn"
)

// PageSize is the number of records served per history page.
const PageSize = 10

// ConversationStore persists ConversationRecords scoped to the current
// calendar day and serves paginated historical windows with a monotonic,
// non-repeating cursor.
//
// The store is single-writer: only one chat engine instance touches it, so
// no internal locking is needed. Day-rollover pruning happens lazily on
// every save, never via a background timer.
type ConversationStore struct {
	kv    *kv.Store
	clock Clock

	records []model.ConversationRecord

	// cursor holds the smallest record index already delivered by the most
	// recent successful page fetch. It only decreases.
	cursor    int
	hasCursor bool
}

// NewConversationStore loads today's history from the key/value store.
// Records persisted on a prior calendar day are discarded along with the
// day marker; an unreadable payload resets the store to empty rather than
// surfacing an error.
func NewConversationStore(store *kv.Store, clock Clock) *ConversationStore {
	s := &ConversationStore{kv: store, clock: clock}
	s.load()
	return s
}

func (s *ConversationStore) load() {
	s.records = nil

	lastSaved, err := s.kv.Get(lastSavedOnKey)
	if err != nil {
		return
	}

	savedAt, err := time.Parse(time.RFC3339, lastSaved)
	if err != nil {
		return
	}

	today := s.clock.Now()
	if !sameDay(savedAt, today) {
		// Stale history from a prior day: clear both persisted keys.
		s.kv.Delete(historyKey, lastSavedOnKey)
		return
	}

	raw, err := s.kv.Get(historyKey)
	if err != nil {
		return
	}

	var records []model.ConversationRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		// Decode failure is silent data loss: start empty.
		return
	}

	// Defensive filter: keep only today's records even inside a fresh payload.
	for _, rec := range records {
		if sameDay(rec.Timestamp, today) {
			s.records = append(s.records, rec)
		}
	}
}

// =============================================================================
// SAVE
// =============================================================================

// Save appends a record and persists the filtered history plus the day
// marker in a single transaction. Records from prior days are pruned here,
// on write.
func (s *ConversationStore) Save(rec model.ConversationRecord) error {
	now := s.clock.Now()

	kept := make([]model.ConversationRecord, 0, len(s.records)+1)
	for _, existing := range s.records {
		if sameDay(existing.Timestamp, now) {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, rec)

	data, err := json.Marshal(kept)
	if err != nil {
		return err
	}

	if err := s.kv.PutAll(map[string]string{
		historyKey:     string(data),
		lastSavedOnKey: now.Format(time.RFC3339),
	}); err != nil {
		return err
	}

	s.records = kept
	return nil
}

// =============================================================================
// PAGINATION
// =============================================================================

// TotalItems returns the number of records held for today.
func (s *ConversationStore) TotalItems() int {
	return len(s.records)
}

// TotalPages returns the number of addressable history pages.
func (s *ConversationStore) TotalPages() int {
	return len(s.records)/PageSize + 1
}

// Page serves up to PageSize records for the given 1-based page number.
// Page 1 is the newest window; record order within a window is oldest-first.
// Each successful fetch must start strictly before the previously recorded
// cursor, so windows never overlap or repeat.
func (s *ConversationStore) Page(n int) ([]model.ConversationRecord, error) {
	if n < 1 || n > s.TotalPages() {
		return nil, ErrPageOutOfRange
	}

	offset := (n - 1) * PageSize
	lastIndex := len(s.records) - offset - 1
	if lastIndex < 0 {
		s.cursor = 0
		s.hasCursor = true
		return nil, ErrNoMoreHistory
	}

	firstIndex := lastIndex - (PageSize - 1)
	if firstIndex < 0 {
		firstIndex = 0
	}

	if s.hasCursor && s.cursor <= firstIndex {
		return nil, ErrNoMoreHistory
	}

	s.cursor = firstIndex
	s.hasCursor = true

	window := make([]model.ConversationRecord, lastIndex-firstIndex+1)
	copy(window, s.records[firstIndex:lastIndex+1])
	return window, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// sameDay reports whether two instants fall on the same local calendar date.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
