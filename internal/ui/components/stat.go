package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/theme"
)

var (
	statValueStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true)
	statLabelStyle = lipgloss.NewStyle().Foreground(theme.ColorMutedText)
)

// StatCard is a big value over a small label, e.g. total CO₂ or requests.
type StatCard struct {
	Value string
	Sub   string // optional detail line, e.g. the input/output split
	Label string
	Width int
	Color lipgloss.Color // value color; bright text when empty
}

// Render returns the card as lines of equal width.
func (s StatCard) Render() []string {
	w := max(s.Width, 8)

	value := statValueStyle
	if s.Color != "" {
		value = lipgloss.NewStyle().Foreground(s.Color).Bold(true)
	}

	lines := []string{CenterText(value.Render(s.Value), w)}
	if s.Sub != "" {
		lines = append(lines, CenterText(statLabelStyle.Render(s.Sub), w))
	}
	return append(lines, CenterText(statLabelStyle.Render(s.Label), w))
}

// RenderStatRow lays cards out side by side.
func RenderStatRow(cards []StatCard, gap int) string {
	blocks := make([][]string, 0, len(cards))
	for _, c := range cards {
		blocks = append(blocks, c.Render())
	}
	return strings.Join(JoinHorizontal(blocks, gap), "\n")
}
