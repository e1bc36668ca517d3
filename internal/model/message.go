// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies which side of the conversation produced a message block.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderAssistant:
		return "Assistant"
	default:
		return string(s)
	}
}

// =============================================================================
// MESSAGE BLOCK
// =============================================================================

// MessageBlock groups one or more rendered message fragments attributed to a
// single sender. Blocks are a transient display projection built from a
// ConversationRecord or from live input; they are never persisted.
//
// A block with Streaming set renders its final fragment as it is revealed
// character by character; the engine appends stream chunks to that fragment
// until the stream session completes.
type MessageBlock struct {
	ID        string
	Sender    Sender
	Fragments []string
	Timestamp time.Time
	Streaming bool
}

// NewMessageBlock creates a block with a generated ID. Timestamp defaults to
// the current time; history reconstruction overwrites it with the record's.
func NewMessageBlock(sender Sender, fragments ...string) MessageBlock {
	return MessageBlock{
		ID:        generateBlockID(),
		Sender:    sender,
		Fragments: fragments,
		Timestamp: time.Now(),
	}
}

// NewStreamingBlock creates an assistant block whose content will arrive
// incrementally. It starts with a single empty fragment.
func NewStreamingBlock() MessageBlock {
	return MessageBlock{
		ID:        generateBlockID(),
		Sender:    SenderAssistant,
		Fragments: []string{""},
		Timestamp: time.Now(),
		Streaming: true,
	}
}

// Text joins the block's fragments for plain-text display.
func (b MessageBlock) Text() string {
	return strings.Join(b.Fragments, "\n")
}

// IsEmpty reports whether the block has no visible content.
func (b MessageBlock) IsEmpty() bool {
	for _, f := range b.Fragments {
		if f != "" {
			return false
		}
	}
	return true
}

// generateBlockID creates a unique block ID.
func generateBlockID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "blk_" + hex.EncodeToString(bytes)
}
