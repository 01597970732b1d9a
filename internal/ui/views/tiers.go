package views

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/i18n"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/milestone"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/theme"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ui/components"
)

// TiersView lists the tier ladder and the waypoints. The cursor selects a
// tier whose description is shown below the list.
type TiersView struct {
	AnimTick uint
	cursor   int
	count    int
}

func NewTiersView() *TiersView {
	return &TiersView{}
}

// Cursor returns the selected tier index.
func (v *TiersView) Cursor() int {
	return v.cursor
}

func (v *TiersView) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || v.count == 0 {
		return nil
	}
	switch key.String() {
	case "j", "down":
		if v.cursor < v.count-1 {
			v.cursor++
		}
		return KeyHandledCmd
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
		return KeyHandledCmd
	case "g":
		v.cursor = 0
		return KeyHandledCmd
	case "G":
		v.cursor = v.count - 1
		return KeyHandledCmd
	}
	return nil
}

// FormatRange formats a tier's [Min, Max) bounds in kg.
func FormatRange(t milestone.Tier) string {
	if math.IsInf(t.Max, 1) {
		return fmt.Sprintf("≥ %g kg", t.Min)
	}
	return fmt.Sprintf("%g – %g kg", t.Min, t.Max)
}

func (v *TiersView) Render(s Snapshot, width, height int, compact bool) string {
	v.count = len(s.Tiers)
	if v.cursor >= v.count {
		v.cursor = max(v.count-1, 0)
	}
	cardWidth := width - 4

	ladder := components.Card{
		Title:   theme.AnimatedGradientText(i18n.T("tier_ladder"), v.AnimTick),
		Width:   cardWidth,
		Compact: compact,
	}

	cursorStyle := lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true)
	var rows []string
	for i, t := range s.Tiers {
		marker := "  "
		if i == v.cursor {
			marker = cursorStyle.Render("▶ ")
		}
		current := " "
		if t.ID == s.Tier.ID {
			current = lipgloss.NewStyle().Foreground(theme.ColorLeaf).Render("●")
		}
		nameStyle := lipgloss.NewStyle().Foreground(theme.TierColor(t.Color))
		if t.ID == s.Tier.ID {
			nameStyle = nameStyle.Bold(true)
		}
		rows = append(rows, marker+current+" "+
			components.PadRight(t.Emoji+" "+nameStyle.Render(t.Name), 24)+
			theme.MutedStyle.Render(components.PadRight(FormatRange(t), 16))+
			theme.BodyStyle.Render(t.Equivalent))
	}
	if v.cursor < len(s.Tiers) {
		rows = append(rows, "", theme.MutedStyle.Render("  "+s.Tiers[v.cursor].Description))
	}
	ladder.Content = strings.Join(rows, "\n")

	waypoints := components.Card{
		Title:   theme.AnimatedGradientText(i18n.T("waypoints"), v.AnimTick),
		Width:   cardWidth,
		Compact: compact,
	}
	var wrows []string
	for _, w := range s.Waypoints {
		check := theme.MutedStyle.Render("○")
		if s.Stats.TotalCO2Kg >= w.ThresholdKg {
			check = lipgloss.NewStyle().Foreground(theme.ColorLeaf).Render("✓")
		}
		wrows = append(wrows, fmt.Sprintf("%s %s %s %s",
			check,
			w.Emoji,
			theme.BodyStyle.Render(components.PadRight(fmt.Sprintf("%g kg", w.ThresholdKg), 9)),
			theme.MutedStyle.Render(w.Equivalent)))
	}
	waypoints.Content = strings.Join(wrows, "\n")

	return ladder.Render() + "\n" + waypoints.Render() + "\n" +
		components.HelpFooter(i18n.T("tiers_help"))
}
