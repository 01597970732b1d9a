// Package ingest polls Claude Code transcript directories and feeds each
// usage record to a sink exactly once.
package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/domain"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/parser"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/watcher"
)

// DefaultInterval is the time between scheduled scans.
const DefaultInterval = 5 * time.Second

// NoDataDirWarning is shown once when no configured directory exists.
const NoDataDirWarning = "Could not find Claude data directory. Make sure Claude Code is installed and has been used at least once."

// Sink receives new usage records. A record whose Ingest fails is not
// marked as seen and will be offered again on the next scan.
type Sink interface {
	Ingest(rec domain.UsageRecord) error
}

// State is the scanner lifecycle state.
type State int

const (
	StateIdle State = iota
	StatePolling
)

func (s State) String() string {
	if s == StatePolling {
		return "polling"
	}
	return "idle"
}

// Status summarises the scanner for display.
type Status struct {
	State            State
	Monitoring       bool // a recurring scan is scheduled
	PathsFound       int
	RecordsProcessed int
	Scans            int64
	LastScanAt       time.Time
}

// ScanResult counts what one scan did.
type ScanResult struct {
	Files      int // transcripts read
	Unchanged  int // transcripts skipped because size and mtime did not move
	Records    int // new records ingested
	Duplicates int // records already seen
	Errors     int // unreadable dirs/files/lines and failed ingests
	Skipped    bool
}

type fileStamp struct {
	size    int64
	modTime time.Time
}

// Scanner walks data directories on a schedule. Layout:
// <data dir>/<session dir>/<name>.jsonl.
type Scanner struct {
	dirs     []string
	sink     Sink
	dedup    DedupSet
	runner   watcher.Runner
	interval time.Duration
	logger   zerolog.Logger
	onWarn   func(msg string)
	notify   bool

	mu       sync.Mutex
	state    State
	active   []string
	stopTick func()
	fsw      *watcher.Watcher
	lastScan time.Time

	warnOnce sync.Once
	scanning atomic.Bool
	scans    atomic.Int64

	// files is only touched by the goroutine holding scanning.
	files map[string]fileStamp
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithRunner sets the scheduler used for recurring scans.
func WithRunner(r watcher.Runner) Option {
	return func(s *Scanner) { s.runner = r }
}

// WithInterval sets the time between scheduled scans.
func WithInterval(d time.Duration) Option {
	return func(s *Scanner) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithLogger sets the scanner logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger.With().Str("component", "scanner").Logger()
	}
}

// WithWarning sets the callback for the one-time missing-directory warning.
func WithWarning(fn func(msg string)) Option {
	return func(s *Scanner) { s.onWarn = fn }
}

// WithWriteNotifications makes the scanner also rescan a transcript as soon
// as fsnotify reports a write to it, between scheduled scans.
func WithWriteNotifications(enabled bool) Option {
	return func(s *Scanner) { s.notify = enabled }
}

// New returns an idle Scanner over the candidate data directories.
func New(dirs []string, sink Sink, dedup DedupSet, opts ...Option) *Scanner {
	s := &Scanner{
		dirs:     append([]string(nil), dirs...),
		sink:     sink,
		dedup:    dedup,
		runner:   watcher.TickerRunner{},
		interval: DefaultInterval,
		logger:   zerolog.Nop(),
		files:    make(map[string]fileStamp),
	}
	if s.dedup == nil {
		s.dedup = NewMemorySet()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start moves the scanner to Polling: it scans once, then schedules
// recurring scans. With no existing data directory nothing is scheduled and
// the one-time warning fires instead. Start while polling is a no-op.
func (s *Scanner) Start(ctx context.Context) {
	s.mu.Lock()
	if s.state == StatePolling {
		s.mu.Unlock()
		return
	}
	s.state = StatePolling
	s.active = existingDirs(s.dirs)
	active := s.active
	s.mu.Unlock()

	if len(active) == 0 {
		s.logger.Warn().Strs("candidates", s.dirs).Msg("No Claude data directory found")
		s.warnOnce.Do(func() {
			if s.onWarn != nil {
				s.onWarn(NoDataDirWarning)
			}
		})
		return
	}

	s.logger.Info().Strs("paths", active).Dur("interval", s.interval).Msg("Starting monitoring")
	s.ScanOnce(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePolling || s.stopTick != nil {
		// Stopped while the first scan ran.
		return
	}
	s.stopTick = s.runner.Every(s.interval, func() { s.ScanOnce(ctx) })

	if s.notify {
		fsw, err := watcher.New(active, isTranscript, func(path string) {
			s.scanChanged(ctx, path)
		})
		if err != nil {
			s.logger.Warn().Err(err).Msg("Write notifications unavailable, polling only")
		} else {
			s.fsw = fsw
		}
	}
}

// Stop cancels future scans. A scan in progress runs to completion.
// Stopping an idle scanner does nothing.
func (s *Scanner) Stop() {
	s.mu.Lock()
	if s.state == StateIdle {
		s.mu.Unlock()
		return
	}
	s.state = StateIdle
	stopTick, fsw := s.stopTick, s.fsw
	s.stopTick, s.fsw = nil, nil
	s.mu.Unlock()

	if fsw != nil {
		_ = fsw.Close()
	}
	if stopTick != nil {
		stopTick()
	}
	s.logger.Info().Msg("Monitoring stopped")
}

// Status reports the scanner state.
func (s *Scanner) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		State:            s.state,
		Monitoring:       s.stopTick != nil,
		PathsFound:       len(s.active),
		RecordsProcessed: s.dedup.Len(),
		Scans:            s.scans.Load(),
		LastScanAt:       s.lastScan,
	}
}

// ScanOnce performs one full scan. If another scan is running it returns
// immediately with Skipped set. It may be called without Start, in which
// case the configured directories are resolved on the spot.
func (s *Scanner) ScanOnce(ctx context.Context) ScanResult {
	if !s.scanning.CompareAndSwap(false, true) {
		s.logger.Debug().Msg("Scan already in progress, skipping tick")
		return ScanResult{Skipped: true}
	}
	defer s.scanning.Store(false)

	s.mu.Lock()
	dirs := s.active
	s.mu.Unlock()
	if dirs == nil {
		dirs = existingDirs(s.dirs)
	}

	var res ScanResult
	for _, dir := range dirs {
		sessions, err := parser.Sessions(dir)
		if err != nil {
			s.logger.Warn().Err(err).Str("dir", dir).Msg("Error scanning data directory")
			res.Errors++
			continue
		}
		for _, session := range sessions {
			files, err := parser.Transcripts(session)
			if err != nil {
				s.logger.Warn().Err(err).Str("session", session).Msg("Could not access project directory")
				res.Errors++
				continue
			}
			for _, file := range files {
				if ctx.Err() != nil {
					return s.finish(res)
				}
				s.scanFile(file, &res)
			}
		}
	}
	return s.finish(res)
}

func (s *Scanner) finish(res ScanResult) ScanResult {
	s.scans.Add(1)
	s.mu.Lock()
	s.lastScan = time.Now()
	s.mu.Unlock()

	if res.Records > 0 || res.Errors > 0 {
		s.logger.Debug().
			Int("files", res.Files).
			Int("records", res.Records).
			Int("duplicates", res.Duplicates).
			Int("errors", res.Errors).
			Msg("Scan complete")
	}
	return res
}

// scanChanged rescans one transcript reported by fsnotify, if it sits at
// the session level of an active data directory.
func (s *Scanner) scanChanged(ctx context.Context, path string) {
	if ctx.Err() != nil {
		return
	}
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()

	dataDir := filepath.Dir(filepath.Dir(path))
	known := false
	for _, d := range active {
		if filepath.Clean(d) == dataDir {
			known = true
			break
		}
	}
	if !known {
		return
	}

	if !s.scanning.CompareAndSwap(false, true) {
		// The next scheduled scan picks it up.
		return
	}
	defer s.scanning.Store(false)

	var res ScanResult
	s.scanFile(path, &res)
}

func (s *Scanner) scanFile(path string, res *ScanResult) {
	info, err := os.Stat(path)
	if err != nil {
		s.logger.Warn().Err(err).Str("file", path).Msg("Could not stat transcript")
		res.Errors++
		return
	}
	stamp := fileStamp{size: info.Size(), modTime: info.ModTime()}
	if prev, ok := s.files[path]; ok && prev.size == stamp.size && prev.modTime.Equal(stamp.modTime) {
		res.Unchanged++
		return
	}

	parsed, err := parser.ParseFile(path)
	if err != nil {
		s.logger.Warn().Err(err).Str("file", path).Msg("Error parsing file")
		res.Errors++
		return
	}
	res.Files++

	for _, le := range parsed.Errors {
		s.logger.Warn().Err(le.Err).Str("file", path).Int("line", le.Line).Msg("Could not parse line")
		res.Errors++
	}
	complete := parsed.ReadErr == nil
	if !complete {
		s.logger.Warn().Err(parsed.ReadErr).Str("file", path).Msg("Transcript read stopped early")
		res.Errors++
	}

	for _, rec := range parsed.Records {
		if s.dedup.Contains(rec.ID) {
			res.Duplicates++
			continue
		}
		if err := s.sink.Ingest(rec); err != nil {
			s.logger.Error().Err(err).Str("id", rec.ID).Msg("Failed to ingest record")
			res.Errors++
			complete = false
			continue
		}
		if err := s.dedup.Add(rec.ID); err != nil {
			s.logger.Error().Err(err).Str("id", rec.ID).Msg("Failed to remember record")
		}
		res.Records++
	}

	if complete {
		s.files[path] = stamp
	}
}

func isTranscript(path string) bool {
	return strings.HasSuffix(path, parser.TranscriptExt)
}

func existingDirs(candidates []string) []string {
	found := []string{}
	for _, d := range candidates {
		info, err := os.Stat(d)
		if err == nil && info.IsDir() {
			found = append(found, filepath.Clean(d))
		}
	}
	return found
}
