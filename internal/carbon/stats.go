// Package carbon converts token usage into an estimated CO₂ mass and keeps
// the running totals.
package carbon

import (
	"context"
	"time"
)

// DefaultEmissionFactor is kg CO₂ per 1000 tokens.
const DefaultEmissionFactor = 0.0004

// Stats are the accumulated totals. The JSON names are the persisted format.
type Stats struct {
	TotalTokens   int       `json:"totalTokens"`
	InputTokens   int       `json:"inputTokens"`
	OutputTokens  int       `json:"outputTokens"`
	TotalCO2Kg    float64   `json:"totalCO2"`
	RequestCount  int       `json:"requestCount"`
	StartedAt     time.Time `json:"startDate"`
	LastUpdatedAt time.Time `json:"lastUpdated"`
}

func zeroStats(now time.Time) Stats {
	return Stats{StartedAt: now, LastUpdatedAt: now}
}

// Change is one mutation of Stats. A change carrying a RecordID is applied
// at most once per store, however many processes submit it.
type Change struct {
	RecordID string
	Apply    func(*Stats)
}

// StatsStore persists Stats. LoadStats returns (nil, nil) when nothing has
// been saved yet.
//
// ApplyChanges applies changes in order to the stored stats inside one
// transaction and returns the result. When nothing is stored it starts from
// initial. Changes whose RecordID the store has already seen are skipped,
// and the ids of applied changes are recorded in the same transaction.
type StatsStore interface {
	LoadStats(ctx context.Context) (*Stats, error)
	ApplyChanges(ctx context.Context, initial Stats, changes []Change) (Stats, error)
}

// MassKg converts a token count to kg CO₂ under factor.
func MassKg(tokens int, factor float64) float64 {
	return float64(tokens) / 1000 * factor
}
