// Package tracker wires the accumulator, the milestone table and the
// ingestion scanner together and fans crossing events out to notifiers.
package tracker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/carbon"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/domain"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ingest"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/milestone"
)

// Notifier shows a milestone message to the user.
type Notifier interface {
	Notify(message, emoji string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message, emoji string)

func (f NotifierFunc) Notify(message, emoji string) { f(message, emoji) }

// MonitoringStatus reports whether transcripts are being watched.
type MonitoringStatus struct {
	Active            bool
	PathsFound        int
	MessagesProcessed int
}

// Tracker is the application context. It implements ingest.Sink.
type Tracker struct {
	acc    *carbon.Accumulator
	table  *milestone.Table
	logger zerolog.Logger

	mu        sync.RWMutex
	notifiers []Notifier
	observers []func(milestone.Event)
	scanner   *ingest.Scanner

	notifyEnabled atomic.Bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithNotifier adds a notifier. Notifiers are called synchronously in the
// order they were added and must not block.
func WithNotifier(n Notifier) Option {
	return func(t *Tracker) { t.notifiers = append(t.notifiers, n) }
}

// WithObserver registers a callback for every event, regardless of whether
// notifications are enabled.
func WithObserver(fn func(milestone.Event)) Option {
	return func(t *Tracker) { t.observers = append(t.observers, fn) }
}

// WithLogger sets the tracker logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Tracker) {
		t.logger = logger.With().Str("component", "tracker").Logger()
	}
}

// New returns a Tracker over acc and table. Notifications start enabled.
func New(acc *carbon.Accumulator, table *milestone.Table, opts ...Option) *Tracker {
	t := &Tracker{
		acc:    acc,
		table:  table,
		logger: zerolog.Nop(),
	}
	t.notifyEnabled.Store(true)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewScanner creates the scanner feeding this tracker and attaches it so
// Start, Stop and MonitoringStatus reach it.
func (t *Tracker) NewScanner(dirs []string, dedup ingest.DedupSet, opts ...ingest.Option) *ingest.Scanner {
	s := ingest.New(dirs, t, dedup, opts...)
	t.mu.Lock()
	t.scanner = s
	t.mu.Unlock()
	return s
}

// AddNotifier registers a notifier after construction.
func (t *Tracker) AddNotifier(n Notifier) {
	t.mu.Lock()
	t.notifiers = append(t.notifiers, n)
	t.mu.Unlock()
}

// AddObserver registers an event callback after construction.
func (t *Tracker) AddObserver(fn func(milestone.Event)) {
	t.mu.Lock()
	t.observers = append(t.observers, fn)
	t.mu.Unlock()
}

// SetNotificationsEnabled turns notifier dispatch on or off.
func (t *Tracker) SetNotificationsEnabled(enabled bool) {
	t.notifyEnabled.Store(enabled)
}

// Ingest records one usage record and dispatches any crossings.
func (t *Tracker) Ingest(rec domain.UsageRecord) error {
	before, after := t.acc.Track(rec.ID, rec.InputTokens, rec.OutputTokens)
	for _, ev := range t.table.Evaluate(before, after) {
		t.dispatch(ev)
	}
	return nil
}

func (t *Tracker) dispatch(ev milestone.Event) {
	t.mu.RLock()
	observers := t.observers
	notifiers := t.notifiers
	t.mu.RUnlock()

	t.logger.Info().
		Str("kind", ev.Kind.String()).
		Str("message", ev.Message()).
		Msg("Milestone reached")

	for _, fn := range observers {
		fn(ev)
	}
	if !t.notifyEnabled.Load() {
		return
	}
	for _, n := range notifiers {
		n.Notify(ev.Message(), ev.Emoji())
	}
}

// Start begins monitoring. Without a scanner it does nothing.
func (t *Tracker) Start(ctx context.Context) {
	if s := t.currentScanner(); s != nil {
		s.Start(ctx)
	}
}

// Stop ends monitoring.
func (t *Tracker) Stop() {
	if s := t.currentScanner(); s != nil {
		s.Stop()
	}
}

// ScanNow runs one scan immediately, outside the polling schedule.
func (t *Tracker) ScanNow(ctx context.Context) ingest.ScanResult {
	if s := t.currentScanner(); s != nil {
		return s.ScanOnce(ctx)
	}
	return ingest.ScanResult{}
}

// Stats returns a snapshot of the accumulated totals.
func (t *Tracker) Stats() carbon.Stats {
	return t.acc.Snapshot()
}

// Equivalents puts the current total into everyday terms.
func (t *Tracker) Equivalents() carbon.Equivalents {
	return carbon.EquivalentsFor(t.acc.Snapshot().TotalCO2Kg)
}

// Table returns the tier table in use.
func (t *Tracker) Table() *milestone.Table {
	return t.table
}

func (t *Tracker) CurrentTier() milestone.Tier {
	return t.table.CurrentTier(t.acc.Snapshot().TotalCO2Kg)
}

func (t *Tracker) NextTier() (milestone.Tier, bool) {
	return t.table.NextTier(t.acc.Snapshot().TotalCO2Kg)
}

// Progress is the percentage through the current tier.
func (t *Tracker) Progress() float64 {
	return t.table.Progress(t.acc.Snapshot().TotalCO2Kg)
}

// Reset zeroes the totals. Already ingested records stay deduplicated.
func (t *Tracker) Reset() {
	t.acc.Reset()
}

// Reload picks up totals written by another process sharing the store.
func (t *Tracker) Reload(ctx context.Context) error {
	return t.acc.Reload(ctx)
}

// EmissionFactor returns the factor in use.
func (t *Tracker) EmissionFactor() float64 {
	return t.acc.EmissionFactor()
}

// SetEmissionFactor recomputes the total under a new factor. No milestone
// events are produced.
func (t *Tracker) SetEmissionFactor(factor float64) error {
	return t.acc.SetEmissionFactor(factor)
}

// MonitoringStatus reports the scanner state.
func (t *Tracker) MonitoringStatus() MonitoringStatus {
	s := t.currentScanner()
	if s == nil {
		return MonitoringStatus{}
	}
	st := s.Status()
	return MonitoringStatus{
		Active:            st.Monitoring,
		PathsFound:        st.PathsFound,
		MessagesProcessed: st.RecordsProcessed,
	}
}

// ScannerStatus returns the full scanner status, or the zero value when no
// scanner is attached.
func (t *Tracker) ScannerStatus() ingest.Status {
	if s := t.currentScanner(); s != nil {
		return s.Status()
	}
	return ingest.Status{}
}

func (t *Tracker) currentScanner() *ingest.Scanner {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scanner
}
