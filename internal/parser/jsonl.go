package parser

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/domain"
)

// maxLineSize bounds a single transcript line.
const maxLineSize = 10 * 1024 * 1024

// rawRecord maps the JSONL structure we care about.
type rawRecord struct {
	Type      string `json:"type"`
	UUID      string `json:"uuid"`
	Timestamp string `json:"timestamp"`
	SessionID string `json:"sessionId"`
	Message   *struct {
		ID    string `json:"id"`
		Role  string `json:"role"`
		Model string `json:"model"`
		Usage *struct {
			InputTokens              int `json:"input_tokens"`
			OutputTokens             int `json:"output_tokens"`
			CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
			CacheReadInputTokens     int `json:"cache_read_input_tokens"`
		} `json:"usage"`
	} `json:"message"`
}

// LineError reports a line that could not be decoded.
type LineError struct {
	Line int // zero-based
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error { return e.Err }

// ParseResult holds parsed records and error stats.
type ParseResult struct {
	Records   []domain.UsageRecord
	SkipCount int
	Errors    []LineError
	// ReadErr is set when the reader failed before EOF; Records holds
	// whatever was parsed up to that point.
	ReadErr error
}

// ErrorCount returns the number of undecodable lines.
func (r ParseResult) ErrorCount() int {
	return len(r.Errors)
}

// ParseReader reads JSONL from an io.Reader, streaming line by line.
// sourcePath names the transcript and seeds ids for records that carry none.
func ParseReader(r io.Reader, sourcePath string) ParseResult {
	var result ParseResult
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := -1
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}

		rec, ok, err := parseLine(raw, sourcePath, line)
		if err != nil {
			result.Errors = append(result.Errors, LineError{Line: line, Err: err})
			continue
		}
		if !ok {
			result.SkipCount++
			continue
		}
		result.Records = append(result.Records, rec)
	}

	if err := scanner.Err(); err != nil {
		result.ReadErr = err
	}

	return result
}

// parseLine returns ok=false for well-formed lines that carry no usage.
func parseLine(raw []byte, sourcePath string, line int) (domain.UsageRecord, bool, error) {
	var rec rawRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.UsageRecord{}, false, err
	}

	if rec.Type == "summary" || rec.Message == nil || rec.Message.Usage == nil {
		return domain.UsageRecord{}, false, nil
	}

	usage := rec.Message.Usage
	out := domain.UsageRecord{
		ID:                  recordID(rec.Message.ID, rec.UUID, sourcePath, line),
		Timestamp:           parseTimestamp(rec.Timestamp),
		InputTokens:         nonNegative(usage.InputTokens),
		OutputTokens:        nonNegative(usage.OutputTokens),
		CacheCreationTokens: nonNegative(usage.CacheCreationInputTokens),
		CacheReadTokens:     nonNegative(usage.CacheReadInputTokens),
		Role:                rec.Message.Role,
		Model:               rec.Message.Model,
		SessionID:           rec.SessionID,
		SourcePath:          sourcePath,
		Line:                line,
	}
	if out.Role == "" {
		out.Role = "user"
	}
	return out, true, nil
}

// recordID prefers the API message id, then the transcript entry uuid, then
// a name-based UUID of path and line so malformed entries still dedup
// across rescans of the same file.
func recordID(messageID, entryUUID, sourcePath string, line int) string {
	if messageID != "" {
		return messageID
	}
	if entryUUID != "" {
		return entryUUID
	}
	return SyntheticID(sourcePath, line)
}

// SyntheticID derives a stable id from a transcript path and line index.
func SyntheticID(sourcePath string, line int) string {
	name := sourcePath + ":" + strconv.Itoa(line)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Now().UTC()
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		ts, err = time.Parse("2006-01-02T15:04:05.000Z", s)
		if err != nil {
			return time.Now().UTC()
		}
	}
	return ts.UTC()
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
