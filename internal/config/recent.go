package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	recentFile = "recent.txt"

	// MaxRecentFiles caps the recent-files list
	MaxRecentFiles = 10
)

// GetRecentPath returns the full path to the recent-files list.
// The list is a plain newline-delimited file of absolute paths,
// most-recent-first, so it stays trivially inspectable and editable.
func GetRecentPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, recentFile), nil
}

// LoadRecent reads the recent-files list from disk. Entries whose file
// no longer exists are dropped silently; a missing list is an empty
// list, not an error.
func LoadRecent() ([]string, error) {
	path, err := GetRecentPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read recent files list: %w", err)
	}

	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Stale entries disappear on reload rather than erroring
		if _, err := os.Stat(line); err != nil {
			continue
		}
		out = append(out, line)
		if len(out) == MaxRecentFiles {
			break
		}
	}
	return out, nil
}

// AddRecent promotes path to the front of the recent-files list and
// persists it. The path is stored absolute so the list stays valid
// regardless of the working directory it is read from later.
func AddRecent(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	existing, err := LoadRecent()
	if err != nil {
		return err
	}

	out := []string{abs}
	for _, p := range existing {
		if p == abs {
			continue
		}
		out = append(out, p)
		if len(out) == MaxRecentFiles {
			break
		}
	}
	return saveRecent(out)
}

// saveRecent writes the list newline-delimited, most-recent-first
func saveRecent(paths []string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := ensureConfigDir(); err != nil {
		return err
	}
	recentPath, err := GetRecentPath()
	if err != nil {
		return err
	}

	data := []byte(strings.Join(paths, "\n") + "\n")
	tmpPath := recentPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write recent files list: %w", err)
	}
	if err := os.Rename(tmpPath, recentPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save recent files list: %w", err)
	}
	return nil
}
