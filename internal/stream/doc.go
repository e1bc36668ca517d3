// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package stream simulates a streaming reply by revealing canned text one
// character at a time on a fixed cadence.
//
// A Player owns at most one active Session. Each session emits a Chunk event
// per character, waits the configured interval (50ms by default) after every
// character including the last, then emits a single Done event and closes
// its channel. Cancelling a session is synchronous and suppresses both
// further chunks and the completion event; starting a new session through
// the same player cancels the previous one first, so replies never
// interleave.
//
// # Key Types
//
//   - Player: session launcher, one active session at a time
//   - Session: a single cancellable replay of a reply string
//   - Chunk, Done: the two event kinds a session emits
//   - Clock: injectable time source so tests run without real sleeps
//
// # Usage
//
//	player := stream.NewPlayer(stream.DefaultInterval, nil)
//	session := player.Start(reply)
//	for ev := range session.Events() {
//		switch ev := ev.(type) {
//		case stream.Chunk:
//			render(ev.Prefix)
//		case stream.Done:
//			finish()
//		}
//	}
package stream
