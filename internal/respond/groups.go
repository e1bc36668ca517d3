// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package respond maps validated chat input to canned assistant replies.
package respond

// FallbackMessage accompanies accepted input that matched no keyword group.
const FallbackMessage = "That's interesting! Could you elaborate a bit?"

// OutOfScopeMessage accompanies input that failed validation.
const OutOfScopeMessage = "Hmm, that doesn't look like something I can help with. Try asking about your challenge!"

// WelcomeMessage opens a fresh conversation.
const WelcomeMessage = "Hey there! 👋 I'm your challenge assistant. I'm here to help you with today's challenge, provide motivation, and answer any questions you might have. What would you like to know?"

// FallbackSuggestions double as the reply pool for unmatched or rejected
// turns and as the suggestion list when no group matches the user's input.
var FallbackSuggestions = []string{
	"Tell me more about your experience.",
	"What was the most difficult part?",
	"What helped you stay focused?",
	"Any reflections after the challenge?",
	"Want to try something new today?",
}

// Group is one keyword group: trigger phrases mapped to a fixed pool of
// candidate replies and a fixed pool of follow-up suggestions.
type Group struct {
	Name        string
	Keywords    []string
	Replies     []string
	Suggestions []string
}

// Groups is the matcher's priority list. Order matters: the first group with
// any keyword appearing as a substring of the lowercased input wins, so an
// input mentioning both anxiety and the daily challenge resolves to the
// anxiety group. The order is fixed so matching is deterministic.
var Groups = []Group{
	{
		Name:     "anxiety",
		Keywords: []string{"nervous", "worried", "anxious", "stressed"},
		Replies: []string{
			"Start small. 5 minutes is a great place to begin.",
			"It's okay to feel nervous. Every expert was once a beginner.",
			"Breathe deeply. You've got this! 💪",
			"Stress is temporary. Take a mindful pause.",
		},
		Suggestions: []string{
			"Feeling anxious today.",
			"Bit nervous, honestly.",
			"Worried about messing up.",
			"I'm stressed out.",
			"Having an anxious moment.",
			"Pretty nervous about starting.",
			"Feeling a little worried.",
		},
	},
	{
		Name:     "focus",
		Keywords: []string{"distracted", "unfocused", "can't concentrate"},
		Replies: []string{
			"Try counting your breaths from 1 to 10, then repeat.",
			"Bring your attention gently back. No judgment.",
			"Totally normal! Just return to your breath.",
			"Focus comes in waves — you're doing fine.",
		},
		Suggestions: []string{
			"Totally distracted today.",
			"Can't concentrate right now.",
			"Unfocused and scattered.",
			"I'm really distracted.",
			"Struggling to concentrate.",
			"Mind keeps wandering.",
			"Focus is off today.",
		},
	},
	{
		Name:     "challenge",
		Keywords: []string{"challenge", "today's challenge", "what's my challenge", "give challenge", "show task", "new task"},
		Replies: []string{
			"Your challenge today is a 30-minute meditation. ✨",
			"Today you're trying mindful silence for 30 minutes.",
			"Let's start strong: 30-minute meditation is today's goal.",
			"Here's your new challenge — dive in when you're ready.",
		},
		Suggestions: []string{
			"What's today's challenge?",
			"Give me a new challenge.",
			"Show me my task.",
			"Ready for today's challenge!",
			"Challenge me please.",
			"What's my challenge today?",
			"Show task for the day.",
		},
	},
	{
		Name:     "completion",
		Keywords: []string{"done", "completed", "finished", "i did it", "check", "marked"},
		Replies: []string{
			"Awesome work! How did that feel?",
			"Nice job completing the challenge! What was the hardest part?",
			"🎉 You did it! What stood out to you?",
			"That's another step forward. Great work!",
		},
		Suggestions: []string{
			"Just completed it.",
			"Challenge done!",
			"I did it!",
			"Marked as done.",
			"Finished my task.",
			"Checked it off.",
			"Wrapped it up.",
		},
	},
	{
		Name:     "streak",
		Keywords: []string{"streak", "momentum", "habit", "routine", "daily"},
		Replies: []string{
			"You're crushing it! 🔥 Keep the streak alive!",
			"Consider setting a daily reminder to build consistency.",
			"Every day counts. Tomorrow is waiting!",
			"Momentum is growing — stay with it!",
		},
		Suggestions: []string{
			"How's my streak going?",
			"Still on my habit streak!",
			"Keeping my routine strong.",
			"Daily challenge done!",
			"Let's keep the momentum.",
			"Show my streak progress.",
			"Routine is building.",
		},
	},
	{
		Name:     "motivation",
		Keywords: []string{"motivate", "inspire", "need push", "boost"},
		Replies: []string{
			"One step at a time. You've got this.",
			"Even a small effort today brings big change tomorrow.",
			"Every champion was once a beginner. Start now.",
			"Need a boost? Keep your why close.",
		},
		Suggestions: []string{
			"Need some motivation.",
			"Looking for a boost.",
			"Inspire me today!",
			"Push me forward.",
			"Could use a bit of motivation.",
			"Help me stay inspired.",
			"Give me a boost!",
		},
	},
	{
		Name:     "setback",
		Keywords: []string{"fail", "missed", "couldn't", "can't do", "didn't"},
		Replies: []string{
			"It's okay to miss a day. What matters is you're back now.",
			"Progress isn't linear. You're still on the path.",
			"Tomorrow is a new chance. Let's go again!",
			"Failure isn't the end — it's part of the process.",
		},
		Suggestions: []string{
			"I missed today's challenge.",
			"Couldn't finish it.",
			"Didn't get it done.",
			"Feel like I failed today.",
			"Can't do it today.",
			"Slipped up today.",
			"Didn't go well.",
		},
	},
}
