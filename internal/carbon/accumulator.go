package carbon

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidFactor is returned for emission factors that are negative or
// not finite.
var ErrInvalidFactor = errors.New("carbon: emission factor must be a finite number >= 0")

// ValidFactor reports whether f can be used as an emission factor.
func ValidFactor(f float64) bool {
	return f >= 0 && !math.IsInf(f, 1)
}

// Accumulator owns the running Stats. Every mutation is committed to the
// StatsStore as a Change while holding the lock, and the stored result
// replaces the in-memory totals so writes from other processes sharing the
// store are merged in. When a commit fails the change stays queued and the
// in-memory totals stay authoritative until the next commit succeeds.
type Accumulator struct {
	mu      sync.Mutex
	stats   Stats
	initial Stats
	factor  float64
	pending []Change

	store  StatsStore
	now    func() time.Time
	logger zerolog.Logger
}

// Option configures an Accumulator.
type Option func(*Accumulator)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *Accumulator) { a.now = now }
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Accumulator) {
		a.logger = logger.With().Str("component", "accumulator").Logger()
	}
}

// NewAccumulator loads persisted stats from store, or starts from zero with
// StartedAt set to now. A nil store keeps everything in memory. A load
// failure is logged and treated as "nothing saved".
func NewAccumulator(ctx context.Context, store StatsStore, factor float64, opts ...Option) (*Accumulator, error) {
	if !ValidFactor(factor) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}

	a := &Accumulator{
		factor: factor,
		store:  store,
		now:    time.Now,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.initial = zeroStats(a.now())
	a.stats = a.initial
	if store != nil {
		saved, err := store.LoadStats(ctx)
		if err != nil {
			a.logger.Error().Err(err).Msg("Failed to load saved stats, starting from zero")
		} else if saved != nil {
			a.stats = normalize(*saved)
		}
	}

	return a, nil
}

// RecordUsage adds one request's tokens and returns the emitted mass before
// and after the update.
func (a *Accumulator) RecordUsage(inputTokens, outputTokens int) (before, after float64) {
	return a.Track("", inputTokens, outputTokens)
}

// Track is RecordUsage for an identified record. The id is persisted in the
// same commit as the totals, and a store counts each id once.
func (a *Accumulator) Track(id string, inputTokens, outputTokens int) (before, after float64) {
	if inputTokens < 0 {
		inputTokens = 0
	}
	if outputTokens < 0 {
		outputTokens = 0
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	tokens := inputTokens + outputTokens
	mass := MassKg(tokens, a.factor)
	now := a.now()
	before = a.stats.TotalCO2Kg

	a.applyLocked(Change{RecordID: id, Apply: func(s *Stats) {
		s.TotalTokens += tokens
		s.InputTokens += inputTokens
		s.OutputTokens += outputTokens
		s.TotalCO2Kg += mass
		s.RequestCount++
		s.LastUpdatedAt = now
	}})

	a.logger.Debug().
		Str("id", id).
		Int("tokens", tokens).
		Float64("co2_kg", mass).
		Msg("Tracked usage")

	return before, a.stats.TotalCO2Kg
}

// Reset zeroes every counter and restarts the tracking period.
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	a.applyLocked(Change{Apply: func(s *Stats) { *s = zeroStats(now) }})
	a.logger.Info().Msg("Stats reset")
}

// SetEmissionFactor switches to a new factor and recomputes the total mass
// from the token count. It does not produce milestone events.
func (a *Accumulator) SetEmissionFactor(factor float64) error {
	if !ValidFactor(factor) {
		return fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.factor = factor
	a.applyLocked(Change{Apply: func(s *Stats) {
		s.TotalCO2Kg = MassKg(s.TotalTokens, factor)
	}})

	a.logger.Info().
		Float64("factor", factor).
		Float64("co2_kg", a.stats.TotalCO2Kg).
		Msg("Emission factor changed")
	return nil
}

// Reload adopts the stored totals so changes made by another process, such
// as a reset, show up without waiting for the next usage. Queued changes are
// committed first.
func (a *Accumulator) Reload(ctx context.Context) error {
	if a.store == nil {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.pending) > 0 {
		a.commitLocked(ctx)
		return nil
	}
	saved, err := a.store.LoadStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload stats: %w", err)
	}
	if saved != nil {
		a.stats = normalize(*saved)
	}
	return nil
}

// EmissionFactor returns the factor in use.
func (a *Accumulator) EmissionFactor() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.factor
}

// Snapshot returns a copy of the current totals.
func (a *Accumulator) Snapshot() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

func (a *Accumulator) applyLocked(c Change) {
	c.Apply(&a.stats)
	if a.store == nil {
		return
	}
	a.pending = append(a.pending, c)
	a.commitLocked(context.Background())
}

func (a *Accumulator) commitLocked(ctx context.Context) {
	s, err := a.store.ApplyChanges(ctx, a.initial, a.pending)
	if err != nil {
		a.logger.Error().Err(err).Int("pending", len(a.pending)).Msg("Failed to persist stats")
		return
	}
	a.pending = nil
	a.stats = normalize(s)
}

func normalize(s Stats) Stats {
	s.TotalTokens = s.InputTokens + s.OutputTokens
	return s
}
