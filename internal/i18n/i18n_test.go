package i18n

import "testing"

func TestT_English(t *testing.T) {
	SetLanguage("en")

	if got := T("tab_stats"); got != "Stats" {
		t.Errorf("T(tab_stats) = %q, want %q", got, "Stats")
	}
	if got := T("status_detail_title"); got != "Carbon Emissions from Claude Code" {
		t.Errorf("T(status_detail_title) = %q", got)
	}
}

func TestT_MissingKey(t *testing.T) {
	SetLanguage("en")
	if got := T("nonexistent_key"); got != "nonexistent_key" {
		t.Errorf("T(nonexistent_key) = %q, want %q", got, "nonexistent_key")
	}
}

func TestTf(t *testing.T) {
	SetLanguage("en")
	got := Tf("current_size", 120, 40)
	want := "Current: 120x40"
	if got != want {
		t.Errorf("Tf(current_size, 120, 40) = %q, want %q", got, want)
	}

	got = Tf("monitor_summary", T("active"), 1, 42)
	want = "Monitoring: Active | Paths found: 1 | Messages processed: 42"
	if got != want {
		t.Errorf("Tf(monitor_summary) = %q, want %q", got, want)
	}
}

func TestSetLanguage_Unknown(t *testing.T) {
	SetLanguage("fr")
	if Current() != LangEN {
		t.Errorf("unknown language should default to EN, got %q", Current())
	}
}

func TestSupported(t *testing.T) {
	langs := Supported()
	if len(langs) != 1 || langs[0] != "en" {
		t.Errorf("Supported() = %v, want [en]", langs)
	}
}
