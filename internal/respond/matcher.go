// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package respond maps validated chat input to canned assistant replies.
package respond

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// MaxSuggestions caps the follow-up suggestions computed for a completed turn.
const MaxSuggestions = 3

// =============================================================================
// RESPONSE TYPE
// =============================================================================

// Response is the outcome of matching one input.
type Response struct {
	// Reply is the assistant's canned reply text.
	Reply string

	// ResponseMessage is the auxiliary message shown above the reply on
	// unsuccessful turns. Empty when IsSuccess is true.
	ResponseMessage string

	// IsSuccess is true when a keyword group matched the input.
	IsSuccess bool

	// Group names the matched keyword group, empty when none matched.
	Group string
}

// =============================================================================
// MATCHER
// =============================================================================

// Matcher selects canned replies and follow-up suggestions via an ordered
// keyword-group lookup. The random source is injectable so tests can assert
// exact replies rather than set membership.
type Matcher struct {
	mu     sync.Mutex
	rng    *rand.Rand
	groups []Group
}

// NewMatcher creates a matcher over the standard group priority list,
// seeded from the current time.
func NewMatcher() *Matcher {
	return NewMatcherWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewMatcherWithSource creates a matcher with a caller-supplied random
// source. Pass a seeded source for deterministic selection in tests.
func NewMatcherWithSource(rng *rand.Rand) *Matcher {
	return &Matcher{
		rng:    rng,
		groups: Groups,
	}
}

// Match maps accepted input to a reply. The lowercased text is tested against
// each group in priority order; the first group where any keyword is a
// substring wins, and one of its replies is drawn uniformly at random. When
// no group matches, the reply is a random fallback suggestion accompanied by
// the generic fallback message.
func (m *Matcher) Match(acceptedText string) Response {
	lowered := strings.ToLower(acceptedText)

	for _, group := range m.groups {
		if containsAnyKeyword(lowered, group.Keywords) {
			return Response{
				Reply:     m.pick(group.Replies),
				IsSuccess: true,
				Group:     group.Name,
			}
		}
	}

	return Response{
		Reply:           m.pick(FallbackSuggestions),
		ResponseMessage: FallbackMessage,
		IsSuccess:       false,
	}
}

// Reject builds the response for input the classifier refused: a random
// fallback reply under the fixed out-of-scope message.
func (m *Matcher) Reject() Response {
	return Response{
		Reply:           m.pick(FallbackSuggestions),
		ResponseMessage: OutOfScopeMessage,
		IsSuccess:       false,
	}
}

// SuggestionsFor re-runs the ordered group scan against the original user
// input and returns the matched group's suggestion list capped to
// MaxSuggestions, or the fallback suggestions when no group matches.
func (m *Matcher) SuggestionsFor(userInput string) []string {
	lowered := strings.ToLower(userInput)

	for _, group := range m.groups {
		if containsAnyKeyword(lowered, group.Keywords) {
			return capSuggestions(group.Suggestions)
		}
	}
	return capSuggestions(FallbackSuggestions)
}

// WelcomeSuggestions returns a uniformly random group's full suggestion
// list, used to seed the suggestion chips on a fresh conversation.
func (m *Matcher) WelcomeSuggestions() []string {
	m.mu.Lock()
	group := m.groups[m.rng.Intn(len(m.groups))]
	m.mu.Unlock()

	out := make([]string, len(group.Suggestions))
	copy(out, group.Suggestions)
	return out
}

// pick draws one entry uniformly at random.
func (m *Matcher) pick(pool []string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return pool[m.rng.Intn(len(pool))]
}

func containsAnyKeyword(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func capSuggestions(suggestions []string) []string {
	n := len(suggestions)
	if n > MaxSuggestions {
		n = MaxSuggestions
	}
	out := make([]string, n)
	copy(out, suggestions[:n])
	return out
}
