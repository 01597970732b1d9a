package milestone

import "fmt"

// EventKind distinguishes waypoint crossings from tier changes.
type EventKind int

const (
	KindWaypoint EventKind = iota
	KindTierChanged
)

func (k EventKind) String() string {
	switch k {
	case KindWaypoint:
		return "waypoint"
	case KindTierChanged:
		return "tier_changed"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one crossing detected by Evaluate. Waypoint is set for
// KindWaypoint; From and To are set for KindTierChanged.
type Event struct {
	Kind     EventKind
	Waypoint Waypoint
	From     Tier
	To       Tier
}

// Message returns the user-facing text for the event.
func (e Event) Message() string {
	if e.Kind == KindTierChanged {
		return fmt.Sprintf("%s You've reached %q tier! Equivalent to: %s", e.To.Emoji, e.To.Name, e.To.Equivalent)
	}
	return e.Waypoint.Message
}

// Emoji returns the icon shown next to Message.
func (e Event) Emoji() string {
	if e.Kind == KindTierChanged {
		return e.To.Emoji
	}
	return e.Waypoint.Emoji
}

// Evaluate reports every waypoint in (before, after] in ascending order,
// followed by a single tier change if the tier at after differs from the
// tier at before. Skipped intermediate tiers are not reported.
func (t *Table) Evaluate(before, after float64) []Event {
	var events []Event
	for _, w := range t.waypoints {
		if before < w.ThresholdKg && w.ThresholdKg <= after {
			events = append(events, Event{Kind: KindWaypoint, Waypoint: w})
		}
	}

	from := t.CurrentTier(before)
	to := t.CurrentTier(after)
	if from.ID != to.ID {
		events = append(events, Event{Kind: KindTierChanged, From: from, To: to})
	}
	return events
}
