// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides day-scoped conversation persistence.
package storage

import (
	"encoding/json"
	"errors"

	"github.com/jeranaias/challengely-tui/internal/kv"
	"github.com/jeranaias/challengely-tui/internal/model"
)

// Persisted keys for the app shell's preferences.
const (
	userPreferencesKey   = "userPreferences"
	hasLaunchedBeforeKey = "hasLaunchedBefore"
)

// PreferencesStore persists the onboarding shell's user preferences and
// first-launch flag. The chat core does not read these; it only owns the
// persistence on the shell's behalf.
type PreferencesStore struct {
	kv *kv.Store
}

// NewPreferencesStore wraps a key/value store.
func NewPreferencesStore(store *kv.Store) *PreferencesStore {
	return &PreferencesStore{kv: store}
}

// SaveUserPreferences persists the preferences as JSON.
func (p *PreferencesStore) SaveUserPreferences(prefs model.UserPreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return p.kv.Put(userPreferencesKey, string(data))
}

// LoadUserPreferences returns the stored preferences, or nil when none are
// stored or the payload does not decode. Decode failure is silent data loss,
// never an error surfaced to the shell.
func (p *PreferencesStore) LoadUserPreferences() *model.UserPreferences {
	raw, err := p.kv.Get(userPreferencesKey)
	if err != nil {
		return nil
	}

	var prefs model.UserPreferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return nil
	}
	return &prefs
}

// MarkFirstLaunch records that the app has launched at least once.
func (p *PreferencesStore) MarkFirstLaunch() error {
	return p.kv.Put(hasLaunchedBeforeKey, "true")
}

// IsFirstLaunch reports whether the app has never been launched before.
func (p *PreferencesStore) IsFirstLaunch() bool {
	_, err := p.kv.Get(hasLaunchedBeforeKey)
	return errors.Is(err, kv.ErrKeyNotFound)
}
