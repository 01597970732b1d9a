//go:build !linux && !darwin

package config

import "path/filepath"

func platformDataDirs(home string) []string {
	return []string{filepath.Join(home, ".claude", "projects")}
}
