package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/i18n"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/theme"
)

// StatusLine is the one-line carbon summary: "<tier emoji> <kg> kg CO₂".
type StatusLine struct {
	Emoji string
	Kg    float64
	Color lipgloss.Color
}

// Text returns the unstyled status text.
func (s StatusLine) Text() string {
	return s.Emoji + " " + FormatMass(s.Kg)
}

// Render returns the styled status text.
func (s StatusLine) Render() string {
	style := lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true)
	if s.Color != "" {
		style = style.Foreground(s.Color)
	}
	return style.Render(s.Text())
}

// StatusDetail is the hover text of the status line.
func StatusDetail(tierName, equivalent string, tokens, requests int) string {
	return i18n.T("status_detail_title") + "\n" +
		tierName + ": " + equivalent + "\n" +
		fmt.Sprintf("%s %s | %d %s", FormatNumber(tokens), i18n.T("tokens_lower"), requests, i18n.T("requests_lower"))
}

// StatusBar is the bottom bar: a rule, then the status line (when shown)
// and key hints.
type StatusBar struct {
	Width  int
	Status string // pre-rendered StatusLine; empty hides it
}

var keyColors = []lipgloss.Color{
	theme.ColorSkyBlue,
	theme.ColorLavender,
	theme.ColorMauve,
	theme.ColorPeach,
	theme.ColorGold,
	theme.ColorLeaf,
}

// Render returns the rule and the hint line.
func (s StatusBar) Render() string {
	rule := theme.MutedStyle.Render(strings.Repeat("─", s.Width))
	hints := s.renderKeyHints()
	if s.Status == "" {
		return rule + "\n" + hints
	}
	gap := s.Width - lipgloss.Width(hints) - lipgloss.Width(s.Status) - 2
	if gap < 1 {
		return rule + "\n" + "  " + s.Status
	}
	return rule + "\n" + hints + strings.Repeat(" ", gap) + s.Status
}

func (s StatusBar) renderKeyHints() string {
	hints := []struct{ key, desc string }{
		{"?", i18n.T("status_help")},
		{"s", i18n.T("status_settings")},
		{"m", i18n.T("status_monitor")},
		{"x", i18n.T("status_reset")},
		{"r", i18n.T("status_refresh")},
		{"q", i18n.T("status_quit")},
	}

	parts := make([]string, 0, len(hints))
	for i, h := range hints {
		keyStyle := lipgloss.NewStyle().Foreground(keyColors[i%len(keyColors)]).Bold(true)
		parts = append(parts, keyStyle.Render(h.key)+" "+theme.MutedStyle.Render(h.desc))
	}
	return "  " + strings.Join(parts, "  ")
}
