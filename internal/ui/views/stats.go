package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/i18n"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/theme"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ui/components"
)

// StatsView is the main panel: current tier, totals, everyday
// equivalents and the tracking period.
type StatsView struct {
	AnimTick uint
}

func NewStatsView() *StatsView {
	return &StatsView{}
}

func (v *StatsView) Render(s Snapshot, width, height int, compact bool) string {
	cardWidth := width - 4

	sections := []string{
		v.renderTier(s, cardWidth, compact),
		v.renderTotals(s, cardWidth, compact),
		v.renderImpact(s, cardWidth, compact),
		v.renderPeriod(s),
	}
	return strings.Join(sections, "\n")
}

func (v *StatsView) renderTier(s Snapshot, cardWidth int, compact bool) string {
	accent := theme.TierColor(s.Tier.Color)
	card := components.Card{
		Title:   theme.AnimatedGradientText(i18n.T("current_tier"), v.AnimTick),
		Width:   cardWidth,
		Accent:  accent,
		Compact: compact,
	}
	inner := card.InnerWidth()

	name := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(s.Tier.Emoji + " " + s.Tier.Name)
	lines := []string{
		name,
		theme.BodyStyle.Render("≈ " + s.Tier.Equivalent),
		theme.MutedStyle.Render(s.Tier.Description),
		"",
	}

	if s.HasNext {
		lines = append(lines,
			components.KeyValue(i18n.T("next_tier"), s.Next.Emoji+" "+s.Next.Name, 10),
			components.TierProgress{
				Percent:   s.Progress,
				Width:     inner,
				FromColor: s.Tier.Color,
				ToColor:   s.Next.Color,
			}.Render(),
		)
	} else {
		lines = append(lines, theme.WarningStyle.Render(i18n.T("top_tier_reached")))
	}

	card.Content = strings.Join(lines, "\n")
	return card.Render()
}

func (v *StatsView) renderTotals(s Snapshot, cardWidth int, compact bool) string {
	card := components.Card{
		Title:   theme.AnimatedGradientText(i18n.T("totals"), v.AnimTick),
		Width:   cardWidth,
		Compact: compact,
	}
	inner := card.InnerWidth()

	gap := 2
	statW := (inner - 2*gap) / 3
	cards := []components.StatCard{
		{
			Value: components.FormatMass(s.Stats.TotalCO2Kg),
			Label: i18n.T("total_co2"),
			Width: statW,
			Color: theme.TierColor(s.Tier.Color),
		},
		{
			Value: components.FormatNumber(s.Stats.TotalTokens),
			Sub: i18n.Tf("tokens_split",
				components.FormatCompact(s.Stats.InputTokens),
				components.FormatCompact(s.Stats.OutputTokens)),
			Label: i18n.T("total_tokens"),
			Width: statW,
		},
		{
			Value: components.FormatNumber(s.Stats.RequestCount),
			Label: i18n.T("requests"),
			Width: statW,
		},
	}

	card.Content = components.RenderStatRow(cards, gap)
	return card.Render()
}

func (v *StatsView) renderImpact(s Snapshot, cardWidth int, compact bool) string {
	card := components.Card{
		Title:   theme.AnimatedGradientText(i18n.T("environmental_impact"), v.AnimTick),
		Width:   cardWidth,
		Compact: compact,
	}

	eq := s.Equivalents
	rows := []struct{ icon, text string }{
		{"🌳", i18n.Tf("impact_trees", components.FormatAmount(eq.TreesNeeded))},
		{"🚗", i18n.Tf("impact_km", components.FormatAmount(eq.KmDriven))},
		{"📱", i18n.Tf("impact_phones", components.FormatAmount(eq.PhoneCharges))},
		{"💡", i18n.Tf("impact_bulb", components.FormatAmount(eq.BulbHours))},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, r.icon+" "+theme.BodyStyle.Render(r.text))
	}
	card.Content = strings.Join(lines, "\n")
	return card.Render()
}

func (v *StatsView) renderPeriod(s Snapshot) string {
	since := components.KeyValue(i18n.T("tracking_since"), components.FormatSince(s.Stats.StartedAt, s.Now), 16)
	factor := components.KeyValue(i18n.T("emission_factor"), i18n.Tf("factor_value", s.Factor), 16)
	return "  " + since + "\n  " + factor
}
