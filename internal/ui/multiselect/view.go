package multiselect

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chipselect/internal/domain"
)

// View implements tea.Model
func (m *Model) View() string {
	box := m.styles.Box
	switch {
	case m.meta.disabled:
		box = m.styles.BoxDisabled
	case m.ErrorState():
		box = m.styles.BoxError
	case m.focused:
		box = m.styles.BoxFocused
	}

	inner := 0
	if m.width > 4 {
		box = box.Width(m.width - 2)
		inner = m.width - 4
	}

	tokens := m.renderChips()
	tokens = append(tokens, m.renderInput())
	out := box.Render(wrapTokens(tokens, inner))

	if m.PanelOpen() {
		out = lipgloss.JoinVertical(lipgloss.Left, out, m.renderPanel())
	}
	return out
}

func (m *Model) renderChips() []string {
	selected := m.selection.Selected()
	chips := make([]string, 0, len(selected))
	for i, item := range selected {
		switch {
		case m.meta.disabled:
			chips = append(chips, m.styles.ChipDisabled.Render(item.ViewValue))
		case i == m.chipCursor:
			chips = append(chips, m.styles.ChipCursor.Render(item.ViewValue+" ×"))
		default:
			chips = append(chips, m.styles.Chip.Render(item.ViewValue+" "+m.styles.ChipRemove.Render("×")))
		}
	}
	return chips
}

func (m *Model) renderInput() string {
	input := m.input
	// The placeholder moves out to the floating label
	if m.ShouldLabelFloat() {
		input.Placeholder = ""
	} else {
		input.Placeholder = m.meta.placeholder
		if m.meta.required {
			input.Placeholder += " *"
		}
	}
	return input.View()
}

func (m *Model) renderPanel() string {
	suggestions := m.filter.Collect()
	if len(suggestions) == 0 {
		return m.styles.Panel.Render(m.styles.Empty.Render("No matching items"))
	}

	cursor := m.cursor
	if cursor >= len(suggestions) {
		cursor = len(suggestions) - 1
	}

	// Keep the cursor inside the visible window
	start := 0
	if cursor >= maxVisibleOptions {
		start = cursor - maxVisibleOptions + 1
	}
	end := start + maxVisibleOptions
	if end > len(suggestions) {
		end = len(suggestions)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteString("\n")
		}
		line := m.renderOption(suggestions[i])
		if i == cursor {
			b.WriteString(m.styles.OptionCursor.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
	}
	if end < len(suggestions) {
		b.WriteString("\n" + m.styles.Empty.Render("  ↓ more"))
	}
	return m.styles.Panel.Render(b.String())
}

func (m *Model) renderOption(item *domain.Item) string {
	start, end, ok := m.filter.HighlightRange(item.ViewValue)
	if !ok || end > len(item.ViewValue) {
		return m.styles.Option.Render(item.ViewValue)
	}
	return m.styles.Option.Render(item.ViewValue[:start]) +
		m.styles.Match.Render(item.ViewValue[start:end]) +
		m.styles.Option.Render(item.ViewValue[end:])
}

// wrapTokens lays tokens out left to right, starting a new line when the
// next token would exceed width. A width of 0 means no limit.
func wrapTokens(tokens []string, width int) string {
	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, token := range tokens {
		w := lipgloss.Width(token)
		if lineWidth > 0 && width > 0 && lineWidth+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteString(" ")
			lineWidth++
		}
		line.WriteString(token)
		lineWidth += w
	}
	lines = append(lines, line.String())
	return strings.Join(lines, "\n")
}
