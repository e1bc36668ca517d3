// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// CONVERSATION RECORD
// =============================================================================

// ConversationRecord is the durable unit of chat history: one user query and
// the assistant's reply, with the outcome of classification and matching.
// Exactly one record is created per submitted input, whether it was accepted
// or rejected. Records are immutable after creation; the store only appends
// them or purges them wholesale on day rollover.
type ConversationRecord struct {
	ID    string `json:"id"`
	Query string `json:"query"`
	Reply string `json:"reply"`

	// ResponseMessage carries the fixed auxiliary message shown above the
	// reply on unsuccessful turns (out-of-scope for rejected input, generic
	// fallback for accepted-but-unmatched input). Empty on successful turns
	// and omitted from the persisted form, matching the original app's
	// encoder which dropped nil optionals.
	ResponseMessage string `json:"responseMessage,omitempty"`

	IsSuccess bool      `json:"isSuccess"`
	Timestamp time.Time `json:"timestamp"`
}

// NewConversationRecord creates a record with a generated UUID.
func NewConversationRecord(query, reply, responseMessage string, isSuccess bool, timestamp time.Time) ConversationRecord {
	return ConversationRecord{
		ID:              uuid.NewString(),
		Query:           query,
		Reply:           reply,
		ResponseMessage: responseMessage,
		IsSuccess:       isSuccess,
		Timestamp:       timestamp,
	}
}

// HasResponseMessage reports whether an auxiliary message accompanies the reply.
func (r ConversationRecord) HasResponseMessage() bool {
	return r.ResponseMessage != ""
}
