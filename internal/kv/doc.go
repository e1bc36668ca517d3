// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package kv provides a small persistent key/value store backed by SQLite.
//
// It uses the pure Go modernc.org/sqlite driver, so there is no cgo
// dependency. The store holds plain string values; callers serialize their
// own payloads (the app stores JSON documents and RFC 3339 timestamps).
// PutAll and Delete are transactional for entries that must move together.
package kv
