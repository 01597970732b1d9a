package components

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatNumber formats an integer with comma separators (e.g. 1,234,567).
func FormatNumber(n int) string {
	return humanize.Comma(int64(n))
}

// FormatCompact formats a number with K/M suffix (e.g. 12345 → "12.3K").
func FormatCompact(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1_000_000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
}

// FormatMass formats kg CO₂ with four decimals.
func FormatMass(kg float64) string {
	return fmt.Sprintf("%.4f kg CO₂", kg)
}

// FormatAmount formats an equivalent quantity: two decimals below 10,
// one below 1000, then whole numbers with separators.
func FormatAmount(v float64) string {
	switch {
	case v < 10:
		return fmt.Sprintf("%.2f", v)
	case v < 1000:
		return fmt.Sprintf("%.1f", v)
	}
	return humanize.Comma(int64(math.Round(v)))
}

// FormatSince formats the tracking start as a date plus a relative age.
func FormatSince(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02") + " (" + humanize.RelTime(t, now, "ago", "from now") + ")"
}

// FormatPercent formats a progress percentage without decimals.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}
