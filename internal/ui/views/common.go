// Package views renders the TUI pages from a tracker snapshot.
package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/carbon"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/milestone"
)

// KeyHandledCmd is returned by view Update methods to signal that a key
// was consumed and should not reach the global handlers. bubbletea
// discards the nil message it produces.
var KeyHandledCmd tea.Cmd = func() tea.Msg { return nil }

// Snapshot is everything a view needs, read once per refresh.
type Snapshot struct {
	Stats       carbon.Stats
	Equivalents carbon.Equivalents
	Tier        milestone.Tier
	Next        milestone.Tier
	HasNext     bool
	Progress    float64
	Tiers       []milestone.Tier
	Waypoints   []milestone.Waypoint
	Factor      float64
	Now         time.Time
}
