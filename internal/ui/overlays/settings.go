// Package overlays holds the modal panels drawn over the main view.
package overlays

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/config"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/i18n"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/theme"
)

// ConfigChangedMsg carries a new configuration, from the settings panel or
// from a reload of the config file. Err is set when saving failed.
type ConfigChangedMsg struct {
	Config config.Config
	Err    error
}

type settingsField struct {
	label   string
	key     string
	options []string
	value   string
}

// SettingsOverlay edits the options that take effect without a restart.
type SettingsOverlay struct {
	cfg      config.Config
	cfgPath  string
	save     func(config.Config, string) error
	fields   []settingsField
	cursor   int
	dirty    bool
	animTick uint
}

func NewSettingsOverlay(cfg config.Config, cfgPath string) *SettingsOverlay {
	s := &SettingsOverlay{
		cfg:     cfg,
		cfgPath: cfgPath,
		save:    config.Save,
	}
	s.buildFields()
	return s
}

func (s *SettingsOverlay) SetAnimTick(tick uint) {
	s.animTick = tick
}

// Config returns the edited configuration.
func (s *SettingsOverlay) Config() config.Config {
	return s.cfg
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func factorOptions(current float64) []string {
	opts := []string{"0.0001", "0.0002", "0.0004", "0.0008", "0.001", "0.002", "0.005"}
	cur := strconv.FormatFloat(current, 'f', -1, 64)
	for _, o := range opts {
		if o == cur {
			return opts
		}
	}
	return append([]string{cur}, opts...)
}

func (s *SettingsOverlay) buildFields() {
	toggle := []string{"on", "off"}
	s.fields = []settingsField{
		{label: i18n.T("setting_emission_factor"), key: "emission_factor", options: factorOptions(s.cfg.Carbon.EmissionFactor), value: strconv.FormatFloat(s.cfg.Carbon.EmissionFactor, 'f', -1, 64)},
		{label: i18n.T("setting_refresh"), key: "refresh", options: []string{"1", "5", "10", "30", "60"}, value: strconv.Itoa(s.cfg.General.Refresh)},
		{label: i18n.T("setting_status_bar"), key: "show_in_status_bar", options: toggle, value: onOff(s.cfg.Display.ShowInStatusBar)},
		{label: i18n.T("setting_notifications"), key: "notifications", options: toggle, value: onOff(s.cfg.Notifications.Enabled)},
		{label: i18n.T("setting_desktop"), key: "desktop", options: toggle, value: onOff(s.cfg.Notifications.Desktop)},
		{label: i18n.T("setting_bell"), key: "bell", options: toggle, value: onOff(s.cfg.Notifications.Bell)},
		{label: i18n.T("setting_language"), key: "language", options: i18n.Supported(), value: s.cfg.General.Language},
	}
}

// Update handles a key. It reports whether the overlay closed; on close
// with changes the config is saved and a ConfigChangedMsg is emitted.
func (s *SettingsOverlay) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if s.cursor < len(s.fields)-1 {
			s.cursor++
		}
	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "enter", " ", "l", "right":
		s.cycleOption(1)
	case "h", "left":
		s.cycleOption(-1)
	case "esc", "s":
		if !s.dirty {
			return true, nil
		}
		cfg := s.cfg
		err := s.save(cfg, s.cfgPath)
		return true, func() tea.Msg { return ConfigChangedMsg{Config: cfg, Err: err} }
	}
	return false, nil
}

func (s *SettingsOverlay) cycleOption(dir int) {
	f := &s.fields[s.cursor]
	idx := 0
	for i, o := range f.options {
		if o == f.value {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(f.options)) % len(f.options)
	f.value = f.options[idx]
	s.dirty = true
	s.applyToConfig(f.key, f.value)
}

func (s *SettingsOverlay) applyToConfig(key, value string) {
	switch key {
	case "emission_factor":
		if f, err := strconv.ParseFloat(value, 64); err == nil && f >= 0 {
			s.cfg.Carbon.EmissionFactor = f
		}
	case "refresh":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			s.cfg.General.Refresh = n
		}
	case "show_in_status_bar":
		s.cfg.Display.ShowInStatusBar = value == "on"
	case "notifications":
		s.cfg.Notifications.Enabled = value == "on"
	case "desktop":
		s.cfg.Notifications.Desktop = value == "on"
	case "bell":
		s.cfg.Notifications.Bell = value == "on"
	case "language":
		s.cfg.General.Language = value
	}
}

func (s *SettingsOverlay) Render(width, height int) string {
	bg := theme.ColorCardBg
	title := theme.AnimatedGradientText(i18n.T("settings"), s.animTick, bg)

	rows := make([]string, 0, len(s.fields))
	for i, f := range s.fields {
		labelStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)
		valueStyle := lipgloss.NewStyle().Foreground(theme.ColorSkyBlue).Background(bg)
		arrow := "  "
		if i == s.cursor {
			labelStyle = lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true).Background(bg)
			valueStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true).Background(bg)
			arrow = lipgloss.NewStyle().Foreground(theme.ColorGold).Background(bg).Render("> ")
		}

		rows = append(rows, fmt.Sprintf("  %s%s%s",
			arrow,
			labelStyle.Render(fmt.Sprintf("%-22s", f.label)),
			valueStyle.Render(" "+f.value),
		))
	}

	content := title + "\n\n" + strings.Join(rows, "\n") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(i18n.T("settings_help"))

	boxWidth := 56
	if width < 60 {
		boxWidth = width - 4
	}

	return theme.CardStyle.
		Width(boxWidth).
		Render(content)
}
