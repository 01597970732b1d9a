package overlays

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/i18n"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/theme"
)

// HelpOverlay lists the key bindings.
type HelpOverlay struct {
	AnimTick uint
}

func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{}
}

func (h *HelpOverlay) Render(width, height int) string {
	title := theme.AnimatedGradientText(i18n.T("keyboard_shortcuts"), h.AnimTick, theme.ColorCardBg)

	bindings := []struct {
		key  string
		desc string
	}{
		{"1 / 2", i18n.T("help_switch_views")},
		{"Tab / Shift+Tab", i18n.T("help_cycle_views")},
		{"j / k / Down / Up", i18n.T("help_navigate")},
		{"g / G", i18n.T("help_top_bottom")},
		{"", ""},
		{"?", i18n.T("help_toggle_help")},
		{"s", i18n.T("help_open_settings")},
		{"m", i18n.T("help_monitoring")},
		{"x", i18n.T("help_reset")},
		{"r", i18n.T("help_force_refresh")},
		{"", ""},
		{"q / Ctrl+C", i18n.T("help_quit")},
	}

	maxKeyLen := 0
	for _, b := range bindings {
		if len(b.key) > maxKeyLen {
			maxKeyLen = len(b.key)
		}
	}

	bg := theme.ColorCardBg
	keyStyle := lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)

	var rows []string
	for _, b := range bindings {
		if b.key == "" {
			rows = append(rows, "")
			continue
		}
		padded := fmt.Sprintf("%-*s", maxKeyLen, b.key)
		rows = append(rows, fmt.Sprintf("  %s%s",
			keyStyle.Render(padded),
			descStyle.Render("  "+b.desc),
		))
	}

	content := title + "\n\n" + strings.Join(rows, "\n") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(i18n.T("help_close"))

	boxWidth := 56
	if width < 60 {
		boxWidth = width - 4
	}

	return theme.CardStyle.
		Width(boxWidth).
		Render(content)
}
