package milestone

import "math"

// DefaultTiers are the built-in bands, in kg CO₂.
var DefaultTiers = []Tier{
	{
		ID: "idle", Name: "Idle", Emoji: "💡",
		Equivalent:  "One LED bulb for an hour",
		Description: "Just browsing code, reading docs, or quick edits",
		Color:       "#22c55e",
		Min:         0, Max: 0.01,
	},
	{
		ID: "light", Name: "Light Usage", Emoji: "☕",
		Equivalent:  "Brewing a cup of coffee",
		Description: "Quick AI queries, code reviews, or small refactoring sessions",
		Color:       "#84cc16",
		Min:         0.01, Max: 0.1,
	},
	{
		ID: "moderate", Name: "Moderate Session", Emoji: "🍳",
		Equivalent:  "Cooking breakfast on a stove",
		Description: "Active coding session with continuous AI assistance",
		Color:       "#eab308",
		Min:         0.1, Max: 0.5,
	},
	{
		ID: "active", Name: "Active Development", Emoji: "🍽️",
		Equivalent:  "Cooking a full meal",
		Description: "Extended AI-assisted development, code generation, or refactoring",
		Color:       "#f59e0b",
		Min:         0.5, Max: 1.0,
	},
	{
		ID: "intensive", Name: "Intensive Session", Emoji: "🚗",
		Equivalent:  "Driving 8 km (5 miles)",
		Description: "Heavy AI usage with large context, multiple iterations, or complex tasks",
		Color:       "#f97316",
		Min:         1.0, Max: 3.0,
	},
	{
		ID: "heavy", Name: "Heavy Usage", Emoji: "🏭",
		Equivalent:  "Manufacturing a pair of jeans",
		Description: "Day-long AI-heavy development or batch processing",
		Color:       "#ef4444",
		Min:         3.0, Max: 10.0,
	},
	{
		ID: "power", Name: "Power User", Emoji: "✈️",
		Equivalent:  "Short-haul flight (100 km)",
		Description: "Continuous AI assistance over multiple days or team usage",
		Color:       "#dc2626",
		Min:         10.0, Max: 50.0,
	},
	{
		ID: "extreme", Name: "Extreme Usage", Emoji: "🌍",
		Equivalent:  "A week of average electricity consumption",
		Description: "Extended team usage or automated systems over weeks",
		Color:       "#991b1b",
		Min:         50.0, Max: math.Inf(1),
	},
}

// DefaultWaypoints are the built-in one-off comparisons.
var DefaultWaypoints = []Waypoint{
	{ThresholdKg: 0.025, Emoji: "📧", Equivalent: "Sending 50 emails",
		Message: "You've emitted as much CO₂ as sending 50 emails!"},
	{ThresholdKg: 0.05, Emoji: "🔍", Equivalent: "An hour of Google searches",
		Message: "That's equivalent to an hour of web browsing!"},
	{ThresholdKg: 0.2, Emoji: "🍫", Equivalent: "A chocolate bar",
		Message: "You've emitted the carbon footprint of a chocolate bar!"},
	{ThresholdKg: 0.4, Emoji: "🥤", Equivalent: "A liter of bottled water",
		Message: "Equivalent to producing a liter of bottled water!"},
	{ThresholdKg: 2.5, Emoji: "🍕", Equivalent: "A large pizza",
		Message: "You've reached the carbon footprint of a large pizza!"},
	{ThresholdKg: 5.0, Emoji: "👕", Equivalent: "A cotton T-shirt",
		Message: "That's the same as manufacturing a T-shirt!"},
	{ThresholdKg: 20.0, Emoji: "📱", Equivalent: "A smartphone",
		Message: "You've emitted as much CO₂ as manufacturing a smartphone!"},
}

// Default returns the built-in table. It panics if the built-in data is
// inconsistent, which the package tests rule out.
func Default() *Table {
	t, err := NewTable(DefaultTiers, DefaultWaypoints)
	if err != nil {
		panic(err)
	}
	return t
}
