package components

import (
	"github.com/charmbracelet/bubbles/progress"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/theme"
)

// TierProgress renders how far the total is through the current tier.
type TierProgress struct {
	Percent   float64 // 0..100
	Width     int
	FromColor string // current tier color
	ToColor   string // next tier color; empty at the top tier
}

// Render returns the bar followed by the percentage.
func (p TierProgress) Render() string {
	from, to := theme.TierGradient(p.FromColor, p.ToColor)
	bar := progress.New(
		progress.WithGradient(from, to),
		progress.WithoutPercentage(),
		progress.WithWidth(max(p.Width-6, 4)),
	)
	bar.EmptyColor = theme.ColorTrackDim

	frac := p.Percent / 100
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return bar.ViewAs(frac) + " " + PadRight(FormatPercent(p.Percent), 4)
}
