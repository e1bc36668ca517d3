// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides day-scoped conversation persistence.
//
// # Key Types
//
//   - ConversationStore: today's chat history on top of the key/value store,
//     with lazy day-rollover pruning on every save and cursor-guarded
//     pagination (strictly decreasing, non-overlapping windows of up to 10
//     records, newest-first by page number, oldest-first within a page)
//   - PreferencesStore: user preferences and first-launch flag for the
//     surrounding app shell
//   - Clock: injectable time source so day-rollover is testable with a
//     fixed clock
//
// Two entries back the conversation history and are written together in one
// transaction on every save: "history" (JSON array of records) and
// "lastSavedOn" (RFC 3339 timestamp used solely to detect calendar-day
// rollover on load). Persistence failures degrade silently: an unreadable
// payload resets the store to empty, and a stale day marker clears both
// keys.
package storage
