package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage handles files inside a single directory
type Storage struct {
	dataDir string
}

// New creates a new Storage instance, creating dataDir if needed
func New(dataDir string) (*Storage, error) {
	dataDir, err := ExpandHome(dataDir)
	if err != nil {
		return nil, err
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// ExpandHome replaces a leading "~/" with the user's home directory
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

// Dir returns the resolved directory
func (s *Storage) Dir() string {
	return s.dataDir
}

// Path returns the location of name inside the directory. Only the base name
// is kept so a name can never escape the directory.
func (s *Storage) Path(name string) string {
	return filepath.Join(s.dataDir, filepath.Base(name))
}

// ReadJSON decodes name into v. It reports false, with no error, when the
// file does not exist yet.
func (s *Storage) ReadJSON(name string, v any) (bool, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parsing %s: %w", name, err)
	}

	return true, nil
}

// WriteJSON encodes v as indented JSON into name
func (s *Storage) WriteJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	return s.WriteFile(name, data)
}

// WriteFile writes data to name
func (s *Storage) WriteFile(name string, data []byte) error {
	if err := os.WriteFile(s.Path(name), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// Exists reports whether name is present in the directory
func (s *Storage) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}
