package config

import "path/filepath"

func platformDataDirs(home string) []string {
	return []string{
		filepath.Join(home, ".claude", "projects"),
		filepath.Join(home, ".config", "claude", "projects"),
	}
}
