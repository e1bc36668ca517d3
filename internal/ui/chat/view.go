// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/challengely-tui/internal/classify"
	"github.com/jeranaias/challengely-tui/internal/engine"
	"github.com/jeranaias/challengely-tui/internal/model"
	"github.com/jeranaias/challengely-tui/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the complete chat screen.
func (m Model) View() string {
	if !m.ready {
		return "Starting challengely..."
	}

	sections := []string{
		m.renderHeader(),
		m.viewport.View(),
		m.renderSuggestions(),
		m.renderInput(),
		m.renderStatusBar(),
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("Challengely")
	subtitle := m.theme.HeaderSubtitle.Render(" · your challenge assistant")
	return m.theme.Header.Width(m.width).Render(title + subtitle)
}

// =============================================================================
// TIMELINE
// =============================================================================

// renderBlocks renders the full message timeline for the viewport.
func (m Model) renderBlocks() string {
	blocks := m.engine.Blocks()

	bubbleWidth := m.width - 10
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderBlock(block, bubbleWidth))
		b.WriteString("\n")
	}

	if m.engine.State() == engine.StateLoading {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.ThinkingText.Render(" Assistant is thinking..."))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderBlock(block model.MessageBlock, maxWidth int) string {
	label := m.theme.SenderLabel.Render(block.Sender.DisplayName())
	if m.showTimestamps && !block.Timestamp.IsZero() {
		label += m.theme.Timestamp.Render(" " + block.Timestamp.Format("15:04"))
	}

	var bubble string
	switch block.Sender {
	case model.SenderUser:
		bubble = m.theme.UserBubble.MaxWidth(maxWidth).Render(block.Text())
		return lipgloss.JoinVertical(lipgloss.Right, label, bubble)
	default:
		body := m.renderAssistantBody(block)
		bubble = m.theme.AssistantBubble.MaxWidth(maxWidth).Render(body)
		return lipgloss.JoinVertical(lipgloss.Left, label, bubble)
	}
}

// renderAssistantBody styles a failed turn's auxiliary fragment differently
// from the reply below it, and appends a cursor while streaming.
func (m Model) renderAssistantBody(block model.MessageBlock) string {
	var parts []string
	for i, frag := range block.Fragments {
		if len(block.Fragments) > 1 && i == 0 {
			parts = append(parts, m.theme.AuxFragment.Render(frag))
			continue
		}
		parts = append(parts, frag)
	}

	body := strings.Join(parts, "\n")
	if block.Streaming {
		body += "▌"
	}
	return body
}

// =============================================================================
// SUGGESTIONS
// =============================================================================

func (m Model) renderSuggestions() string {
	if len(m.suggestions) == 0 {
		return m.theme.SuggestionHint.Render(" ") + "\n\n"
	}

	// Chips share one row; keep each within its fair share of the width so
	// narrow terminals don't wrap the row into the input area.
	chipWidth := m.width/len(m.suggestions) - 4
	if chipWidth < 12 {
		chipWidth = 12
	}

	chips := make([]string, 0, len(m.suggestions))
	for i, s := range m.suggestions {
		label := util.TruncateWidth(s, chipWidth)
		if i == m.selected {
			chips = append(chips, m.theme.SuggestionSelected.Render(label))
		} else {
			chips = append(chips, m.theme.SuggestionChip.Render(label))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, chips...)
	hint := m.theme.SuggestionHint.Render("Tab to pick a suggestion, Enter to send")
	return row + "\n" + hint
}

// =============================================================================
// INPUT AREA
// =============================================================================

func (m Model) renderInput() string {
	count := engine.CharacterCount(m.draft())
	counter := m.theme.
		CharCountStyle(count, engine.NearLimitThreshold, classify.MaxInputChars).
		Render(fmt.Sprintf("%d/%d", count, classify.MaxInputChars))

	field := m.input.View()
	gap := m.width - lipgloss.Width(field) - lipgloss.Width(counter) - 4
	if gap < 1 {
		gap = 1
	}

	return m.theme.InputContainer.Width(m.width).Render(
		field + strings.Repeat(" ", gap) + counter,
	)
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m Model) renderStatusBar() string {
	if m.status != "" {
		return m.theme.StatusBar.Width(m.width).Render(m.status)
	}

	var parts []string
	for _, binding := range m.keyMap.ShortHelp() {
		help := binding.Help()
		parts = append(parts,
			m.theme.ShortcutKey.Render(help.Key)+" "+m.theme.ShortcutDesc.Render(help.Desc))
	}
	parts = append(parts, m.theme.ShortcutDesc.Render(m.engine.State().String()))

	return m.theme.StatusBar.Width(m.width).Render(strings.Join(parts, "  "))
}
