// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the challengely TUI.
//
// Colors are defined as Lip Gloss adaptive pairs so light and dark terminals
// each get appropriate contrast, and the Theme detects the terminal's color
// profile at startup via termenv.
//
// # Key Types
//
//   - Theme: all styled components, built once at startup
//
// # Usage
//
//	theme := styles.NewTheme()
//	fmt.Println(theme.UserBubble.Render("hello"))
package styles
