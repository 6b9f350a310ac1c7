package preferences

import (
	"fmt"

	"github.com/pfrederiksen/hltv-cal/internal/storage"
)

// FileStorage keeps settings in settings.json inside a local data directory
type FileStorage struct {
	store *storage.Storage
}

// NewFileStorage creates a FileStorage rooted at dataDir ("~/" is expanded)
func NewFileStorage(dataDir string) (*FileStorage, error) {
	store, err := storage.New(dataDir)
	if err != nil {
		return nil, err
	}
	return &FileStorage{store: store}, nil
}

// Path returns the settings file location
func (f *FileStorage) Path() string {
	return f.store.Path(settingsFilename)
}

// Load reads settings from disk, returning defaults if the file is missing
func (f *FileStorage) Load() (*Settings, error) {
	s := Defaults()
	found, err := f.store.ReadJSON(settingsFilename, s)
	if err != nil {
		return nil, err
	}
	if !found {
		return Defaults(), nil
	}
	s.fillDefaults()
	return s, nil
}

// Save validates and writes settings to disk
func (f *FileStorage) Save(s *Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return f.store.WriteJSON(settingsFilename, s)
}

// Exists reports whether a settings file has been written
func (f *FileStorage) Exists() (bool, error) {
	return f.store.Exists(settingsFilename), nil
}
