// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package respond maps validated chat input to canned assistant replies.
//
// The matcher walks a fixed, explicitly ordered priority list of keyword
// groups; the first group with any keyword appearing as a substring of the
// lowercased input wins, and a reply is drawn uniformly at random from that
// group's pool. Inputs matching no group, and inputs the classifier
// rejected, receive a random fallback reply under a fixed auxiliary message
// (a different one for each case).
//
// Follow-up suggestions are computed separately by re-scanning the original
// user input against the same priority list.
package respond
