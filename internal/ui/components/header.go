package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/i18n"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/theme"
)

// TabBar renders numbered tabs, the monitoring indicator on the right and
// a rule underneath.
type TabBar struct {
	ViewNames   []string
	ActiveIndex int
	Width       int
	Monitoring  bool
}

var (
	tabActiveStyle = lipgloss.NewStyle().
			Foreground(theme.ColorGold).
			Background(theme.ColorElevatedBg).
			Bold(true).
			Padding(0, 1)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(theme.ColorMutedText).
				Padding(0, 1)
)

// Render returns the tab line and the rule.
func (tb TabBar) Render() string {
	tabs := make([]string, 0, len(tb.ViewNames))
	for i, name := range tb.ViewNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == tb.ActiveIndex {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(label))
		}
	}
	left := " " + strings.Join(tabs, "")

	indicator := lipgloss.NewStyle().Foreground(theme.ColorEmber).Render("● " + i18n.T("monitoring_inactive"))
	if tb.Monitoring {
		indicator = lipgloss.NewStyle().Foreground(theme.ColorLeaf).Render("● " + i18n.T("monitoring_active"))
	}

	gap := tb.Width - lipgloss.Width(left) - lipgloss.Width(indicator) - 1
	line := left
	if gap > 0 {
		line += strings.Repeat(" ", gap) + indicator
	}

	return line + "\n" + theme.MutedStyle.Render(strings.Repeat("─", tb.Width))
}
