package components

import (
	"strings"
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{100, "100"},
		{10000, "10,000"},
		{-1, "-1"},
		{-1000, "-1,000"},
	}
	for _, tt := range tests {
		got := FormatNumber(tt.input)
		if got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{999, "999"},
		{12345, "12.3K"},
		{2_500_000, "2.5M"},
	}
	for _, tt := range tests {
		if got := FormatCompact(tt.input); got != tt.want {
			t.Errorf("FormatCompact(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatMass(t *testing.T) {
	tests := []struct {
		kg   float64
		want string
	}{
		{0, "0.0000 kg CO₂"},
		{0.0304, "0.0304 kg CO₂"},
		{12.34567, "12.3457 kg CO₂"},
	}
	for _, tt := range tests {
		if got := FormatMass(tt.kg); got != tt.want {
			t.Errorf("FormatMass(%v) = %q, want %q", tt.kg, got, tt.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0.0014, "0.00"},
		{2.763, "2.76"},
		{50.66, "50.7"},
		{12345.6, "12,346"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.v); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestFormatSince(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	got := FormatSince(now.Add(-72*time.Hour), now)
	if !strings.HasPrefix(got, "2026-03-07") {
		t.Errorf("FormatSince = %q, want date prefix 2026-03-07", got)
	}
	if !strings.Contains(got, "ago") {
		t.Errorf("FormatSince = %q, want relative age", got)
	}
	if got := FormatSince(time.Time{}, now); got != "-" {
		t.Errorf("zero time = %q, want -", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(49.6); got != "50%" {
		t.Errorf("FormatPercent(49.6) = %q, want 50%%", got)
	}
}
