// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

// =============================================================================
// USER PREFERENCES
// =============================================================================

// UserPreferences holds the onboarding choices consumed by the surrounding
// app shell. The chat core neither reads nor writes these; it only persists
// them on the shell's behalf through the preferences store.
type UserPreferences struct {
	Name       string     `json:"name"`
	Interests  []Interest `json:"interests"`
	Difficulty Difficulty `json:"difficulty"`
}

// Interest is a challenge category the user opted into.
type Interest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Interests is the fixed catalog offered during onboarding.
var Interests = []Interest{
	{Name: "Fitness", Icon: "figure.walk"},
	{Name: "Creativity", Icon: "paintbrush"},
	{Name: "Mindfulness", Icon: "brain.head.profile"},
	{Name: "Learning", Icon: "book"},
	{Name: "Social", Icon: "person.2"},
}

// =============================================================================
// DIFFICULTY
// =============================================================================

// Difficulty is the challenge difficulty level the user selected.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// String returns the string representation of the difficulty.
func (d Difficulty) String() string {
	return string(d)
}

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Description returns the onboarding copy for the difficulty level.
func (d Difficulty) Description() string {
	switch d {
	case DifficultyEasy:
		return "Quick simple tasks that fit perfectly into a busy day."
	case DifficultyMedium:
		return "Engaging challenges that require some dedicated effort."
	case DifficultyHard:
		return "Demanding tasks designed to truly push your limits."
	default:
		return ""
	}
}
