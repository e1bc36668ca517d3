// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package classify validates free-text chat input before a reply is attempted.
//
// Classification is a fixed pipeline of cheap text heuristics, evaluated in
// order with early exit on the first failure:
//
//  1. Trim whitespace; reject empty input
//  2. Reject input longer than 500 or shorter than 3 characters
//  3. Reject input where fewer than 60% of characters are alphanumeric or
//     whitespace
//  4. Reject HTTP/HTTPS URLs
//  5. Reject "junk" runs (5+ letters immediately followed by 3+ digits)
//  6. Reject gibberish (long letter runs with at most 3 distinct letters)
//  7. Reject known spam substrings
//
// Classification never raises: every input maps to Accepted or Rejected, and
// all rejections funnel to the same fallback reply downstream.
package classify
