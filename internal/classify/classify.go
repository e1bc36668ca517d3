// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package classify validates free-text chat input before a reply is attempted.
package classify

import (
	"regexp"
	"strings"
	"unicode"
)

// ============================================================================
// THRESHOLDS
// ============================================================================

const (
	// MaxInputChars is the maximum accepted input length after trimming.
	MaxInputChars = 500

	// MinInputChars is the minimum accepted input length after trimming.
	MinInputChars = 3

	// alnumThreshold is the minimum fraction of characters that must be
	// alphanumeric or whitespace.
	alnumThreshold = 0.6

	// gibberishLengthThreshold and gibberishCharThreshold implement the
	// gibberish heuristic: a letter-only run longer than the length
	// threshold built from no more than the char threshold of distinct
	// letters is rejected.
	gibberishLengthThreshold = 5
	gibberishCharThreshold   = 3
)

var (
	linkPattern = regexp.MustCompile(`https?://\S+`)
	junkPattern = regexp.MustCompile(`[a-zA-Z]{5,}[0-9]{3,}`)
	lettersOnly = regexp.MustCompile(`[^a-z]`)
)

// spamPatterns are lowercase substrings that mark a message as spam.
var spamPatterns = []string{
	"free money", "visit my site", "click here", "buy now", "subscribe", "http", "https", ".com", ".ru", ".xyz",
	"cheap deal", "limited offer", "promo code", "get rich", "earn fast", "guaranteed income",
	"t.me/", "bit.ly", "@everyone", "#giveaway", "!!!", "dm me", "check my page",
	"win big", "make $$$", "join group", "exclusive access", "referral link",
}

// ============================================================================
// RESULT TYPE
// ============================================================================

// Reason identifies which validation check rejected an input.
// Downstream handling does not differentiate reasons (every rejection funnels
// to the same fallback reply); they exist for tests and debugging.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonEmpty
	ReasonTooLong
	ReasonTooShort
	ReasonMostlySymbols
	ReasonLink
	ReasonJunk
	ReasonGibberish
	ReasonSpam
)

// String returns the human-readable name of the rejection reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonEmpty:
		return "empty"
	case ReasonTooLong:
		return "too long"
	case ReasonTooShort:
		return "too short"
	case ReasonMostlySymbols:
		return "mostly symbols"
	case ReasonLink:
		return "contains link"
	case ReasonJunk:
		return "junk pattern"
	case ReasonGibberish:
		return "gibberish"
	case ReasonSpam:
		return "spam"
	default:
		return "unknown"
	}
}

// Result is the outcome of classifying one input.
type Result struct {
	// Accepted is true when the input survived every check.
	Accepted bool

	// Reason identifies the first failed check for rejected input.
	Reason Reason

	// Text is the whitespace-trimmed input, used by downstream matching.
	Text string
}

// ============================================================================
// CLASSIFICATION
// ============================================================================

// Classify validates raw user input. Checks run in a fixed order with early
// exit on the first failure: trim/empty, length bounds, alphanumeric
// fraction, link pattern, junk pattern, gibberish heuristic, spam substrings.
// Classification never fails with an error; every input maps to an accepted
// or rejected result.
func Classify(raw string) Result {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return rejected(ReasonEmpty, trimmed)
	}
	if n := len([]rune(trimmed)); n > MaxInputChars {
		return rejected(ReasonTooLong, trimmed)
	} else if n < MinInputChars {
		return rejected(ReasonTooShort, trimmed)
	}
	if !isMostlyAlphanumeric(trimmed) {
		return rejected(ReasonMostlySymbols, trimmed)
	}
	if linkPattern.MatchString(trimmed) {
		return rejected(ReasonLink, trimmed)
	}
	if junkPattern.MatchString(trimmed) {
		return rejected(ReasonJunk, trimmed)
	}
	if isGibberish(trimmed) {
		return rejected(ReasonGibberish, trimmed)
	}
	if isSpam(trimmed) {
		return rejected(ReasonSpam, trimmed)
	}

	return Result{Accepted: true, Reason: ReasonNone, Text: trimmed}
}

func rejected(reason Reason, text string) Result {
	return Result{Accepted: false, Reason: reason, Text: text}
}

// isMostlyAlphanumeric reports whether at least alnumThreshold of the
// characters are letters, digits, or whitespace.
func isMostlyAlphanumeric(text string) bool {
	runes := []rune(text)
	allowed := 0
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			allowed++
		}
	}
	return float64(allowed)/float64(len(runes)) >= alnumThreshold
}

// isGibberish strips everything but lowercase letters and rejects long runs
// with very low distinct-character diversity (e.g. "aaaaaaaaaa").
func isGibberish(text string) bool {
	cleaned := lettersOnly.ReplaceAllString(strings.ToLower(text), "")
	if len(cleaned) <= gibberishLengthThreshold {
		return false
	}
	distinct := make(map[rune]struct{}, gibberishCharThreshold+1)
	for _, r := range cleaned {
		distinct[r] = struct{}{}
		if len(distinct) > gibberishCharThreshold {
			return false
		}
	}
	return true
}

// isSpam reports whether the lowercased text contains any known spam pattern.
func isSpam(text string) bool {
	lower := strings.ToLower(text)
	for _, pattern := range spamPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
