package milestone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_ReportsEveryWaypointInOrder(t *testing.T) {
	events := Default().Evaluate(0.02, 0.45)

	var thresholds []float64
	for _, e := range events {
		if e.Kind == KindWaypoint {
			thresholds = append(thresholds, e.Waypoint.ThresholdKg)
		}
	}
	assert.Equal(t, []float64{0.025, 0.05, 0.2, 0.4}, thresholds)
}

func TestEvaluate_SingleTierChangeAcrossSkippedTiers(t *testing.T) {
	events := Default().Evaluate(0.005, 2.5)

	var changes []Event
	for _, e := range events {
		if e.Kind == KindTierChanged {
			changes = append(changes, e)
		}
	}
	require.Len(t, changes, 1)
	assert.Equal(t, "idle", changes[0].From.ID)
	assert.Equal(t, "intensive", changes[0].To.ID)

	// Tier changes come after the waypoint crossings of the same update.
	assert.Equal(t, KindTierChanged, events[len(events)-1].Kind)
}

func TestEvaluate_ThresholdBoundaries(t *testing.T) {
	table := Default()

	// Landing exactly on a threshold counts; starting on it does not.
	events := table.Evaluate(0.02, 0.025)
	require.Len(t, events, 1)
	assert.Equal(t, 0.025, events[0].Waypoint.ThresholdKg)

	assert.Empty(t, table.Evaluate(0.025, 0.03))
}

func TestEvaluate_NoChange(t *testing.T) {
	assert.Empty(t, Default().Evaluate(0.001, 0.002))
	assert.Empty(t, Default().Evaluate(0.3, 0.3))
}

func TestEvaluate_TierChangeWithoutWaypoint(t *testing.T) {
	events := Default().Evaluate(0.009, 0.011)
	require.Len(t, events, 1)
	assert.Equal(t, KindTierChanged, events[0].Kind)
	assert.Equal(t, "light", events[0].To.ID)
}

func TestEvent_MessageAndEmoji(t *testing.T) {
	table := Default()
	events := table.Evaluate(0.9, 1.1)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "🚗", e.Emoji())
	assert.Equal(t, `🚗 You've reached "Intensive Session" tier! Equivalent to: Driving 8 km (5 miles)`, e.Message())

	w := table.Evaluate(0.19, 0.21)[0]
	assert.Equal(t, "🍫", w.Emoji())
	assert.Equal(t, "You've emitted the carbon footprint of a chocolate bar!", w.Message())
}
