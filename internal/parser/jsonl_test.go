package parser

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseReader(t *testing.T) {
	input := strings.Join([]string{
		`{"type":"assistant","uuid":"u1","timestamp":"2026-02-19T13:56:04.070Z","sessionId":"sess_1","message":{"id":"msg_1","role":"assistant","model":"claude-opus-4-6","usage":{"input_tokens":100,"output_tokens":50,"cache_creation_input_tokens":200,"cache_read_input_tokens":30}}}`,
		`{"type":"user","timestamp":"2026-02-19T13:55:55.480Z","sessionId":"sess_1","message":{"role":"user","content":"hello"}}`,
		`{"type":"progress","timestamp":"2026-02-19T14:07:06.815Z","sessionId":"sess_1"}`,
		`{"type":"summary","message":{"id":"msg_s","usage":{"input_tokens":999,"output_tokens":999}}}`,
		`{"type":"assistant","timestamp":"2026-02-19T14:00:00.000Z","sessionId":"sess_1","message":{"id":"msg_2","model":"claude-haiku-4-5-20251001","usage":{"input_tokens":10,"output_tokens":5}}}`,
		`invalid json line`,
		``,
		`   `,
	}, "\n")

	result := ParseReader(strings.NewReader(input), "/test/project/a.jsonl")

	if len(result.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(result.Records))
	}
	if result.SkipCount != 3 { // user without usage + progress + summary
		t.Errorf("SkipCount = %d, want 3", result.SkipCount)
	}
	if result.ErrorCount() != 1 {
		t.Errorf("ErrorCount = %d, want 1", result.ErrorCount())
	}
	if result.Errors[0].Line != 5 {
		t.Errorf("error line = %d, want 5", result.Errors[0].Line)
	}

	r := result.Records[0]
	if r.ID != "msg_1" {
		t.Errorf("ID = %q, want msg_1", r.ID)
	}
	if r.InputTokens != 100 || r.OutputTokens != 50 {
		t.Errorf("tokens = %d/%d, want 100/50", r.InputTokens, r.OutputTokens)
	}
	if r.CacheCreationTokens != 200 || r.CacheReadTokens != 30 {
		t.Errorf("cache tokens = %d/%d, want 200/30", r.CacheCreationTokens, r.CacheReadTokens)
	}
	if r.SourcePath != "/test/project/a.jsonl" {
		t.Errorf("SourcePath = %q", r.SourcePath)
	}
	want := time.Date(2026, 2, 19, 13, 56, 4, 70_000_000, time.UTC)
	if !r.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", r.Timestamp, want)
	}

	r2 := result.Records[1]
	if r2.Role != "user" {
		t.Errorf("missing role should default to user, got %q", r2.Role)
	}
	if r2.Line != 4 {
		t.Errorf("Line = %d, want 4", r2.Line)
	}
}

func TestParseReader_IDPrecedence(t *testing.T) {
	input := strings.Join([]string{
		`{"uuid":"entry-1","message":{"id":"msg-1","usage":{"input_tokens":1}}}`,
		`{"uuid":"entry-2","message":{"usage":{"input_tokens":1}}}`,
		`{"message":{"usage":{"input_tokens":1}}}`,
	}, "\n")

	result := ParseReader(strings.NewReader(input), "/p/f.jsonl")
	if len(result.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(result.Records))
	}

	if got := result.Records[0].ID; got != "msg-1" {
		t.Errorf("message id should win, got %q", got)
	}
	if got := result.Records[1].ID; got != "entry-2" {
		t.Errorf("uuid fallback, got %q", got)
	}
	if got, want := result.Records[2].ID, SyntheticID("/p/f.jsonl", 2); got != want {
		t.Errorf("synthetic id = %q, want %q", got, want)
	}
}

func TestSyntheticID_Stable(t *testing.T) {
	a := SyntheticID("/p/f.jsonl", 7)
	if a != SyntheticID("/p/f.jsonl", 7) {
		t.Error("SyntheticID should be deterministic")
	}
	if a == SyntheticID("/p/f.jsonl", 8) {
		t.Error("different lines should yield different ids")
	}
	if a == SyntheticID("/p/g.jsonl", 7) {
		t.Error("different files should yield different ids")
	}
}

func TestParseReader_MissingTimestampUsesNow(t *testing.T) {
	before := time.Now().Add(-time.Second)
	result := ParseReader(strings.NewReader(`{"message":{"id":"m","usage":{"output_tokens":3}}}`), "/x")
	if len(result.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(result.Records))
	}
	if result.Records[0].Timestamp.Before(before) {
		t.Errorf("Timestamp = %v, want around now", result.Records[0].Timestamp)
	}
}

func TestParseReader_NegativeTokensClamped(t *testing.T) {
	result := ParseReader(strings.NewReader(`{"message":{"id":"m","usage":{"input_tokens":-5,"output_tokens":7}}}`), "/x")
	if len(result.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(result.Records))
	}
	if got := result.Records[0].TotalTokens(); got != 7 {
		t.Errorf("TotalTokens = %d, want 7", got)
	}
}

func TestParseReader_Empty(t *testing.T) {
	result := ParseReader(strings.NewReader(""), "/empty")
	if len(result.Records) != 0 {
		t.Errorf("got %d records, want 0", len(result.Records))
	}
}

func TestParseReader_NoUsage(t *testing.T) {
	input := `{"type":"assistant","timestamp":"2026-02-19T13:56:04.070Z","message":{"id":"m1","model":"opus"}}`
	result := ParseReader(strings.NewReader(input), "/test")
	if len(result.Records) != 0 {
		t.Errorf("got %d records, want 0 (no usage data)", len(result.Records))
	}
	if result.SkipCount != 1 {
		t.Errorf("SkipCount = %d, want 1", result.SkipCount)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestParseReader_ReadError(t *testing.T) {
	result := ParseReader(failingReader{}, "/broken")
	if result.ReadErr == nil {
		t.Fatal("expected ReadErr")
	}
	if len(result.Records) != 0 {
		t.Errorf("got %d records, want 0", len(result.Records))
	}
}
