package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLerpColor(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		t    float64
		want string
	}{
		{"start", "#000000", "#ffffff", 0.0, "#000000"},
		{"end", "#000000", "#ffffff", 1.0, "#ffffff"},
		{"midpoint", "#000000", "#ffffff", 0.5, "#7f7f7f"},
		{"same color", "#22c55e", "#22c55e", 0.5, "#22c55e"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LerpColor(tt.from, tt.to, tt.t)
			if got != tt.want {
				t.Errorf("LerpColor(%s, %s, %f) = %s, want %s", tt.from, tt.to, tt.t, got, tt.want)
			}
		})
	}
}

func TestHexToRGB(t *testing.T) {
	r, g, b := HexToRGB("#ff8040")
	if r != 0xff || g != 0x80 || b != 0x40 {
		t.Errorf("got (%d, %d, %d), want (255, 128, 64)", r, g, b)
	}

	r, g, b = HexToRGB("ff8040")
	if r != 0xff || g != 0x80 || b != 0x40 {
		t.Errorf("without hash: got (%d, %d, %d), want (255, 128, 64)", r, g, b)
	}
}

func TestMultiStopGradient_Endpoints(t *testing.T) {
	stops := []string{"#000000", "#808080", "#ffffff"}
	if got := MultiStopGradient(0, stops); got != "#000000" {
		t.Errorf("t=0: got %s", got)
	}
	if got := MultiStopGradient(1, stops); got != "#ffffff" {
		t.Errorf("t=1: got %s", got)
	}
	if got := MultiStopGradient(0.5, stops); got != "#808080" {
		t.Errorf("t=0.5: got %s", got)
	}
}

func TestTierColor(t *testing.T) {
	if got := TierColor("#22c55e"); got != lipgloss.Color("#22c55e") {
		t.Errorf("TierColor(#22c55e) = %s", got)
	}
	if got := TierColor(""); got != ColorLavender {
		t.Errorf("empty color = %s, want lavender", got)
	}
	if got := TierColor("green"); got != ColorLavender {
		t.Errorf("named color = %s, want lavender", got)
	}
}

func TestTierGradient(t *testing.T) {
	from, to := TierGradient("#22c55e", "#84cc16")
	if from != "#22c55e" || to != "#84cc16" {
		t.Errorf("got %s %s", from, to)
	}
	from, to = TierGradient("#dc2626", "")
	if from != to {
		t.Errorf("top tier should be solid, got %s %s", from, to)
	}
}

func TestGradientText(t *testing.T) {
	result := GradientText("CO₂", "#000000", "#ffffff")
	if result == "" {
		t.Error("GradientText returned empty string")
	}

	result = GradientText("", "#000000", "#ffffff")
	if result != "" {
		t.Error("GradientText should return empty for empty input")
	}
}
