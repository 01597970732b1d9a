package components

import (
	"strings"
	"testing"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/i18n"
)

func TestTabBar_Render(t *testing.T) {
	i18n.SetLanguage("en")
	out := TabBar{ViewNames: []string{"Stats", "Tiers"}, ActiveIndex: 1, Width: 80, Monitoring: true}.Render()

	if !strings.Contains(out, "1 Stats") || !strings.Contains(out, "2 Tiers") {
		t.Errorf("tabs missing: %q", out)
	}
	if !strings.Contains(out, i18n.T("monitoring_active")) {
		t.Errorf("indicator missing: %q", out)
	}

	out = TabBar{ViewNames: []string{"Stats"}, Width: 80}.Render()
	if !strings.Contains(out, i18n.T("monitoring_inactive")) {
		t.Errorf("inactive indicator missing: %q", out)
	}
}
