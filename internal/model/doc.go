// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// This package defines the core domain types used throughout the application.
//
// # Key Types
//
//   - ConversationRecord: one persisted user/assistant exchange with success
//     flag and optional auxiliary message (the durable unit of history)
//   - MessageBlock: display grouping of message fragments from one sender
//     (transient, never persisted)
//   - Sender: message attribution enumeration (user, assistant)
//   - UserPreferences: onboarding choices persisted for the app shell
//
// # Usage
//
// Create a record for a completed exchange:
//
//	rec := model.NewConversationRecord(query, reply, "", true, time.Now())
//
// Build a display block from it:
//
//	block := model.NewMessageBlock(model.SenderUser, rec.Query)
package model
