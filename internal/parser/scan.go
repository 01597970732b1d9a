package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TranscriptExt is the suffix of session transcript files.
const TranscriptExt = ".jsonl"

// Sessions lists the immediate subdirectories of a data directory. Each one
// holds the transcripts of one project. Symlinked directories are followed.
func Sessions(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("read data dir %s: %w", dataDir, err)
	}

	var dirs []string
	for _, e := range entries {
		path := filepath.Join(dataDir, e.Name())
		if !e.IsDir() {
			if e.Type()&os.ModeSymlink == 0 {
				continue
			}
			info, err := os.Stat(path)
			if err != nil || !info.IsDir() {
				continue
			}
		}
		dirs = append(dirs, path)
	}
	sort.Strings(dirs)
	return dirs, nil
}

// Transcripts lists the transcript files directly inside a session directory.
func Transcripts(sessionDir string) ([]string, error) {
	entries, err := os.ReadDir(sessionDir)
	if err != nil {
		return nil, fmt.Errorf("read session dir %s: %w", sessionDir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), TranscriptExt) {
			continue
		}
		files = append(files, filepath.Join(sessionDir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// ParseFile reads and parses one transcript.
func ParseFile(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	return ParseReader(f, path), nil
}
