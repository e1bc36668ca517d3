// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine drives the chat session: it owns the message timeline,
// sequences each turn through classification, matching, persistence and
// streaming, and exposes the Idle/Loading/Streaming lifecycle the UI renders
// from.
//
// A turn begins with Send, which appends the user's block and moves to
// Loading. After the artificial response delay the input is classified and
// matched; the resulting record is persisted; then either the reply streams
// character by character (Streaming) or a rejection block appears at once.
// Either way the turn ends with fresh suggestion chips and a return to Idle.
// Send is refused while a turn is in flight, so the pipeline is strictly
// sequential.
//
// History pagination runs outside the turn lifecycle: LoadOlder prepends a
// reconstructed page of today's records without touching the state machine.
//
// All collaborators are injected (matcher, store, player, clock), so tests
// substitute seeded randomness and virtual time for full determinism.
//
// # Key Types
//
//   - Engine: the state machine and timeline owner
//   - State: Idle, Loading, Streaming
//   - Event: notifications consumed by the UI (state changes, new blocks,
//     stream chunks, completed turns, loaded history)
//
// # Usage
//
//	eng := engine.New(engine.Config{Matcher: m, Store: st, Player: p})
//	go func() {
//		for ev := range eng.Events() {
//			handle(ev)
//		}
//	}()
//	if err := eng.Send(input); errors.Is(err, engine.ErrBusy) {
//		// a turn is already in flight; input is dropped, not queued
//	}
package engine
