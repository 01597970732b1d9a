// Package milestone classifies cumulative CO₂ mass into ordered tiers and
// detects tier and waypoint crossings between two totals.
package milestone

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidTable is returned when tiers do not partition [0, +Inf).
var ErrInvalidTable = errors.New("milestone: invalid tier table")

// Tier is a half-open band [Min, Max) of emitted mass in kg.
type Tier struct {
	ID          string
	Name        string
	Emoji       string
	Equivalent  string // e.g. "Brewing a cup of coffee"
	Description string
	Color       string // hex, used for UI theming
	Min         float64
	Max         float64
}

// Waypoint is a one-off noteworthy total, independent of tier bands.
type Waypoint struct {
	ThresholdKg float64
	Emoji       string
	Equivalent  string
	Message     string
}

// Table is an immutable, validated set of tiers and waypoints.
type Table struct {
	tiers     []Tier
	waypoints []Waypoint
}

// NewTable validates that tiers are contiguous from 0 and unbounded above.
// The last tier's Max is forced to +Inf whatever value it carries.
// Waypoints are sorted ascending by threshold.
func NewTable(tiers []Tier, waypoints []Waypoint) (*Table, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: no tiers", ErrInvalidTable)
	}

	ts := make([]Tier, len(tiers))
	copy(ts, tiers)
	ts[len(ts)-1].Max = math.Inf(1)

	if ts[0].Min != 0 {
		return nil, fmt.Errorf("%w: first tier %q starts at %v, want 0", ErrInvalidTable, ts[0].ID, ts[0].Min)
	}

	seen := make(map[string]struct{}, len(ts))
	for i, t := range ts {
		if t.ID == "" {
			return nil, fmt.Errorf("%w: tier %d has empty id", ErrInvalidTable, i)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate tier id %q", ErrInvalidTable, t.ID)
		}
		seen[t.ID] = struct{}{}

		if !(t.Min < t.Max) {
			return nil, fmt.Errorf("%w: tier %q has empty range [%v, %v)", ErrInvalidTable, t.ID, t.Min, t.Max)
		}
		if i > 0 && ts[i-1].Max != t.Min {
			return nil, fmt.Errorf("%w: gap or overlap between %q (max %v) and %q (min %v)",
				ErrInvalidTable, ts[i-1].ID, ts[i-1].Max, t.ID, t.Min)
		}
	}

	ws := make([]Waypoint, len(waypoints))
	copy(ws, waypoints)
	sort.SliceStable(ws, func(i, j int) bool {
		return ws[i].ThresholdKg < ws[j].ThresholdKg
	})

	return &Table{tiers: ts, waypoints: ws}, nil
}

// Tiers returns a copy of the tiers in ordinal order.
func (t *Table) Tiers() []Tier {
	out := make([]Tier, len(t.tiers))
	copy(out, t.tiers)
	return out
}

// Waypoints returns a copy of the waypoints in ascending threshold order.
func (t *Table) Waypoints() []Waypoint {
	out := make([]Waypoint, len(t.waypoints))
	copy(out, t.waypoints)
	return out
}

// CurrentTier returns the tier containing total. Totals below zero map to
// the first tier.
func (t *Table) CurrentTier(total float64) Tier {
	return t.tiers[t.indexOf(total)]
}

// NextTier returns the tier after CurrentTier(total), or false at the top.
func (t *Table) NextTier(total float64) (Tier, bool) {
	i := t.indexOf(total)
	if i >= len(t.tiers)-1 {
		return Tier{}, false
	}
	return t.tiers[i+1], true
}

// Progress returns how far total is through its tier, in percent [0, 100].
func (t *Table) Progress(total float64) float64 {
	tier := t.CurrentTier(total)
	if math.IsInf(tier.Max, 1) {
		return 100
	}
	p := 100 * (total - tier.Min) / (tier.Max - tier.Min)
	if p > 100 {
		return 100
	}
	if p < 0 || math.IsNaN(p) {
		return 0
	}
	return p
}

func (t *Table) indexOf(total float64) int {
	// First tier whose Max is above total; the last Max is +Inf.
	i := sort.Search(len(t.tiers), func(i int) bool {
		return total < t.tiers[i].Max
	})
	if i >= len(t.tiers) {
		// NaN never compares below Max.
		return len(t.tiers) - 1
	}
	return i
}
