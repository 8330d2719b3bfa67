package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrCorruptState is returned by LoadState when the file exists but cannot
// be decoded.
var ErrCorruptState = errors.New("quiz: corrupt state file")

// State is everything the quiz CLI remembers between runs.
type State struct {
	Progress  Progress       `json:"progress"`
	Recent    RecentSearches `json:"recent"`
	Favorites Favorites      `json:"favorites"`
}

// LoadState reads the state file. A missing file yields a fresh state.
func LoadState(path string) (State, error) {
	st := State{Progress: NewProgress()}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("quiz: read state: %w", err)
	}

	if err := json.Unmarshal(data, &st); err != nil {
		return State{Progress: NewProgress()}, fmt.Errorf("%w %s: %w", ErrCorruptState, path, err)
	}
	if st.Progress.Level < 1 {
		st.Progress.Level = 1
	}
	return st, nil
}

// BackupState moves the file at path to a sibling ".bak" file so that a
// later SaveState cannot overwrite it. It returns the backup path.
func BackupState(path string) (string, error) {
	backup := path + ".bak"
	if err := os.Rename(path, backup); err != nil {
		return "", fmt.Errorf("quiz: back up state: %w", err)
	}
	return backup, nil
}

// SaveState writes the state file atomically (temp file + rename).
func SaveState(path string, st State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("quiz: encode state: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("quiz: create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".quiz-state-*")
	if err != nil {
		return fmt.Errorf("quiz: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("quiz: write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("quiz: close state: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("quiz: replace state: %w", err)
	}
	return nil
}
