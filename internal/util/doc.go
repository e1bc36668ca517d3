// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the challengely TUI.
//
// It contains the atomic file-write helper used by everything that persists
// to disk, and rune/width-aware string truncation used by the UI.
package util
