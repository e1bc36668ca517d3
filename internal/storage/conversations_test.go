// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jeranaias/challengely-tui/internal/kv"
	"github.com/jeranaias/challengely-tui/internal/model"
)

// fixedClock returns a settable instant, for deterministic day-rollover tests.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func openKV(t *testing.T) *kv.Store {
	t.Helper()
	store, err := kv.Open(filepath.Join(t.TempDir(), "chat.db"))
	if err != nil {
		t.Fatalf("kv.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveN(t *testing.T, s *ConversationStore, clock *fixedClock, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		rec := model.NewConversationRecord(
			fmt.Sprintf("query %d", i),
			fmt.Sprintf("reply %d", i),
			"", true, clock.Now(),
		)
		if err := s.Save(rec); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
	}
}

func TestSaveAndReload_SameDay(t *testing.T) {
	store := openKV(t)
	clock := &fixedClock{now: time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)}

	s := NewConversationStore(store, clock)
	saveN(t, s, clock, 5)

	// Reload within the same calendar day reproduces the records in order.
	reloaded := NewConversationStore(store, clock)
	if reloaded.TotalItems() != 5 {
		t.Fatalf("TotalItems = %d, want 5", reloaded.TotalItems())
	}
	for i, rec := range reloaded.records {
		want := fmt.Sprintf("query %d", i)
		if rec.Query != want {
			t.Errorf("record[%d].Query = %q, want %q", i, rec.Query, want)
		}
	}
}

func TestReload_NextDayClearsHistory(t *testing.T) {
	store := openKV(t)
	clock := &fixedClock{now: time.Date(2025, 8, 1, 23, 30, 0, 0, time.UTC)}

	s := NewConversationStore(store, clock)
	saveN(t, s, clock, 3)

	// Next morning: history and day marker are both cleared.
	clock.now = time.Date(2025, 8, 2, 0, 10, 0, 0, time.UTC)
	reloaded := NewConversationStore(store, clock)
	if reloaded.TotalItems() != 0 {
		t.Fatalf("TotalItems = %d, want 0 after day rollover", reloaded.TotalItems())
	}

	if _, err := store.Get("history"); !errors.Is(err, kv.ErrKeyNotFound) {
		t.Errorf("history key should be cleared, got err %v", err)
	}
	if _, err := store.Get("lastSavedOn"); !errors.Is(err, kv.ErrKeyNotFound) {
		t.Errorf("lastSavedOn key should be cleared, got err %v", err)
	}
}

func TestSave_PrunesPriorDayRecords(t *testing.T) {
	store := openKV(t)
	clock := &fixedClock{now: time.Date(2025, 8, 1, 22, 0, 0, 0, time.UTC)}

	s := NewConversationStore(store, clock)
	saveN(t, s, clock, 2)

	// The store instance survives midnight; the next save prunes yesterday.
	clock.now = time.Date(2025, 8, 2, 8, 0, 0, 0, time.UTC)
	saveN(t, s, clock, 1)

	if s.TotalItems() != 1 {
		t.Errorf("TotalItems = %d, want 1 (prior-day records pruned on save)", s.TotalItems())
	}
}

func TestLoad_CorruptPayloadResetsEmpty(t *testing.T) {
	store := openKV(t)
	clock := &fixedClock{now: time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)}

	store.PutAll(map[string]string{
		"history":     "{not json",
		"lastSavedOn": clock.now.Format(time.RFC3339),
	})

	s := NewConversationStore(store, clock)
	if s.TotalItems() != 0 {
		t.Errorf("TotalItems = %d, want 0 for corrupt payload", s.TotalItems())
	}
}

func TestLoad_UnparseableDayMarkerResetsEmpty(t *testing.T) {
	store := openKV(t)
	clock := &fixedClock{now: time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)}

	store.PutAll(map[string]string{
		"history":     "[]",
		"lastSavedOn": "yesterday-ish",
	})

	s := NewConversationStore(store, clock)
	if s.TotalItems() != 0 {
		t.Errorf("TotalItems = %d, want 0 for unparseable day marker", s.TotalItems())
	}
}

func TestTotalPages(t *testing.T) {
	store := openKV(t)
	clock := &fixedClock{now: time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)}
	s := NewConversationStore(store, clock)

	if got := s.TotalPages(); got != 1 {
		t.Errorf("TotalPages(empty) = %d, want 1", got)
	}

	saveN(t, s, clock, 25)
	if got := s.TotalPages(); got != 3 {
		t.Errorf("TotalPages(25) = %d, want 3", got)
	}
}

// TestPage_Windows walks the full pagination scenario: 25 records, pages of
// 10, strictly decreasing non-overlapping windows.
func TestPage_Windows(t *testing.T) {
	store := openKV(t)
	clock := &fixedClock{now: time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)}
	s := NewConversationStore(store, clock)
	saveN(t, s, clock, 25)

	// page(1): indices 15..24, oldest-first within the window.
	window, err := s.Page(1)
	if err != nil {
		t.Fatalf("Page(1) failed: %v", err)
	}
	if len(window) != 10 {
		t.Fatalf("Page(1) len = %d, want 10", len(window))
	}
	if window[0].Query != "query 15" || window[9].Query != "query 24" {
		t.Errorf("Page(1) window = [%q .. %q], want [query 15 .. query 24]", window[0].Query, window[9].Query)
	}

	// page(1) again: refused, cursor is not strictly above the window start.
	if _, err := s.Page(1); !errors.Is(err, ErrNoMoreHistory) {
		t.Errorf("repeated Page(1) err = %v, want ErrNoMoreHistory", err)
	}

	// page(2): indices 5..14.
	window, err = s.Page(2)
	if err != nil {
		t.Fatalf("Page(2) failed: %v", err)
	}
	if window[0].Query != "query 5" || window[9].Query != "query 14" {
		t.Errorf("Page(2) window = [%q .. %q], want [query 5 .. query 14]", window[0].Query, window[9].Query)
	}

	// page(3): indices 0..4 (short final window).
	window, err = s.Page(3)
	if err != nil {
		t.Fatalf("Page(3) failed: %v", err)
	}
	if len(window) != 5 {
		t.Fatalf("Page(3) len = %d, want 5", len(window))
	}
	if window[0].Query != "query 0" {
		t.Errorf("Page(3) starts at %q, want query 0", window[0].Query)
	}

	// Past the beginning: nothing left.
	if _, err := s.Page(3); !errors.Is(err, ErrNoMoreHistory) {
		t.Errorf("exhausted Page(3) err = %v, want ErrNoMoreHistory", err)
	}

	// Out of range entirely.
	if _, err := s.Page(4); !errors.Is(err, ErrPageOutOfRange) {
		t.Errorf("Page(4) err = %v, want ErrPageOutOfRange", err)
	}
	if _, err := s.Page(0); !errors.Is(err, ErrPageOutOfRange) {
		t.Errorf("Page(0) err = %v, want ErrPageOutOfRange", err)
	}
}

func TestPage_SkippingAheadStillRefusesOverlap(t *testing.T) {
	store := openKV(t)
	clock := &fixedClock{now: time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)}
	s := NewConversationStore(store, clock)
	saveN(t, s, clock, 25)

	// Fetch the middle window first (indices 5..14), cursor = 5.
	if _, err := s.Page(2); err != nil {
		t.Fatalf("Page(2) failed: %v", err)
	}

	// Page 1 would serve indices 15..24, at/after the cursor: refused.
	if _, err := s.Page(1); !errors.Is(err, ErrNoMoreHistory) {
		t.Errorf("Page(1) after Page(2) err = %v, want ErrNoMoreHistory", err)
	}

	// Page 3 (indices 0..4) is strictly older: served.
	if _, err := s.Page(3); err != nil {
		t.Errorf("Page(3) after Page(2) failed: %v", err)
	}
}

func TestPrefsRoundTrip(t *testing.T) {
	store := openKV(t)
	prefs := NewPreferencesStore(store)

	if !prefs.IsFirstLaunch() {
		t.Error("fresh store should report first launch")
	}
	if err := prefs.MarkFirstLaunch(); err != nil {
		t.Fatalf("MarkFirstLaunch failed: %v", err)
	}
	if prefs.IsFirstLaunch() {
		t.Error("IsFirstLaunch should be false after MarkFirstLaunch")
	}

	if got := prefs.LoadUserPreferences(); got != nil {
		t.Errorf("LoadUserPreferences on empty store = %+v, want nil", got)
	}

	in := model.UserPreferences{
		Name:       "Sam",
		Interests:  []model.Interest{{Name: "Mindfulness", Icon: "brain.head.profile"}},
		Difficulty: model.DifficultyMedium,
	}
	if err := prefs.SaveUserPreferences(in); err != nil {
		t.Fatalf("SaveUserPreferences failed: %v", err)
	}

	out := prefs.LoadUserPreferences()
	if out == nil {
		t.Fatal("LoadUserPreferences returned nil after save")
	}
	if out.Name != "Sam" || out.Difficulty != model.DifficultyMedium || len(out.Interests) != 1 {
		t.Errorf("round-trip mismatch: %+v", out)
	}
}

func TestPrefs_CorruptPayloadIsNil(t *testing.T) {
	store := openKV(t)
	store.Put("userPreferences", "{broken")

	prefs := NewPreferencesStore(store)
	if got := prefs.LoadUserPreferences(); got != nil {
		t.Errorf("LoadUserPreferences on corrupt payload = %+v, want nil", got)
	}
}
