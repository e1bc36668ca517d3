// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package stream replays reply text as a timed character-reveal simulation.
package stream

import "time"

// Clock abstracts time for the player and anything else that paces work.
// Tests supply a virtual clock and advance it manually instead of sleeping.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that delivers one value after the duration
	// elapses.
	After(d time.Duration) <-chan time.Time
}

// SystemClock paces against the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }

// After wraps time.After.
func (SystemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
