package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/theme"
)

// PadRight pads s with spaces to the given display width.
func PadRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// CenterText centers s within the given display width.
func CenterText(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// JoinHorizontal joins blocks of lines side by side with a gap. Shorter
// blocks are padded with blank lines.
func JoinHorizontal(blocks [][]string, gap int) []string {
	maxH := 0
	widths := make([]int, len(blocks))
	for i, b := range blocks {
		if len(b) > maxH {
			maxH = len(b)
		}
		for _, line := range b {
			if w := lipgloss.Width(line); w > widths[i] {
				widths[i] = w
			}
		}
	}

	spacer := strings.Repeat(" ", gap)
	result := make([]string, 0, maxH)
	for row := 0; row < maxH; row++ {
		var sb strings.Builder
		for i, b := range blocks {
			if i > 0 {
				sb.WriteString(spacer)
			}
			if row < len(b) {
				sb.WriteString(PadRight(b[row], widths[i]))
			} else {
				sb.WriteString(strings.Repeat(" ", widths[i]))
			}
		}
		result = append(result, sb.String())
	}
	return result
}

// KeyValue renders a muted label padded to labelWidth followed by value.
func KeyValue(label, value string, labelWidth int) string {
	return theme.MutedStyle.Render(PadRight(label, labelWidth)) + " " + theme.BodyStyle.Render(value)
}

// HelpFooter renders muted help text with standard indentation.
func HelpFooter(text string) string {
	return theme.MutedStyle.Render("  " + text)
}
