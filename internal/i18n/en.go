package i18n

var en = map[string]string{
	// General
	"initializing":       "Initializing...",
	"terminal_too_small": "Terminal too small. Please resize to at least 80x24.",
	"current_size":       "Current: %dx%d",
	"overlay_close":      "Press Esc to close",

	// Tabs
	"tab_stats": "Stats",
	"tab_tiers": "Tiers",

	// Monitoring
	"monitoring_active":   "Monitoring",
	"monitoring_inactive": "Not monitoring",
	"monitoring_status":   "Monitoring Status",
	"monitor_summary":     "Monitoring: %s | Paths found: %d | Messages processed: %d",
	"active":              "Active",
	"inactive":            "Inactive",
	"no_data_dirs":        "No Claude Code data directories found",
	"monitoring_started":  "Carbon tracking started",

	// Stats view
	"current_tier":         "Current Tier",
	"next_tier":            "Next tier",
	"top_tier_reached":     "Top tier reached",
	"totals":               "Totals",
	"total_co2":            "Total CO₂",
	"tokens_split":         "in %s · out %s",
	"total_tokens":         "Tokens",
	"requests":             "Requests",
	"environmental_impact": "Environmental Impact",
	"impact_trees":         "%s trees/year needed",
	"impact_km":            "= %s km driven",
	"impact_phones":        "= %s smartphones charged",
	"impact_bulb":          "= %s hours of 60W bulb",
	"tracking_since":       "Tracking since",
	"emission_factor":      "Emission factor",
	"factor_value":         "%g kg CO₂ / 1000 tokens",

	// Tiers view
	"tier_ladder": "Tier Ladder",
	"waypoints":   "Waypoints",
	"tiers_help":  "j/k: select tier  g/G: top/bottom",

	// Status bar
	"status_help":         "help",
	"status_settings":     "settings",
	"status_monitor":      "monitor",
	"status_reset":        "reset",
	"status_refresh":      "refresh",
	"status_quit":         "quit",
	"status_detail_title": "Carbon Emissions from Claude Code",
	"tokens_lower":        "tokens",
	"requests_lower":      "requests",

	// Help overlay
	"keyboard_shortcuts": "Keyboard Shortcuts",
	"help_switch_views":  "Switch views",
	"help_cycle_views":   "Cycle views",
	"help_navigate":      "Navigate",
	"help_top_bottom":    "Jump to top / bottom",
	"help_toggle_help":   "Toggle help",
	"help_open_settings": "Open settings",
	"help_monitoring":    "Monitoring status",
	"help_reset":         "Reset tracking",
	"help_force_refresh": "Force refresh",
	"help_quit":          "Quit",
	"help_close":         "Press ? or Esc to close",

	// Settings overlay
	"settings":                "Settings",
	"settings_help":           "j/k: navigate  h/l/Enter: change  Esc: save & close",
	"setting_emission_factor": "Emission factor",
	"setting_refresh":         "Refresh (seconds)",
	"setting_status_bar":      "Show in status bar",
	"setting_notifications":   "Notifications",
	"setting_desktop":         "Desktop notifications",
	"setting_bell":            "Terminal bell",
	"setting_language":        "Language",
	"settings_saved":          "Settings saved",
	"settings_save_failed":    "Failed to save settings: %v",

	// Reset
	"reset_confirm":      "Reset carbon tracking? All totals will be set to zero.",
	"reset_confirm_help": "y: reset  n/Esc: cancel",
	"reset_done":         "Carbon tracking has been reset",
}
