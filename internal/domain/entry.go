package domain

import "time"

// UsageRecord is one assistant response's token usage, read from a
// transcript line.
type UsageRecord struct {
	ID                  string // dedup key, unique across all transcripts
	Timestamp           time.Time
	InputTokens         int
	OutputTokens        int
	CacheCreationTokens int // parsed, not accumulated
	CacheReadTokens     int // parsed, not accumulated
	Role                string
	Model               string
	SessionID           string
	SourcePath          string // transcript file
	Line                int    // zero-based line index in SourcePath
}

// TotalTokens returns input + output tokens, the amount that is converted
// to emitted mass. Cache tokens are not counted.
func (r UsageRecord) TotalTokens() int {
	return r.InputTokens + r.OutputTokens
}
