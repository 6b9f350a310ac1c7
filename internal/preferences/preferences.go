package preferences

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pfrederiksen/hltv-cal/internal/match"
)

const settingsFilename = "settings.json"

// Setting keys as they appear in stored JSON
const (
	KeyDefaultProvider = "defaultProvider"
	KeyOutlookVariant  = "outlookVariant"
)

// ErrUnknownKey is returned by Set for keys other than the two settings
var ErrUnknownKey = errors.New("unknown setting")

// Settings holds the user's export preferences
type Settings struct {
	DefaultProvider match.Provider       `json:"defaultProvider" yaml:"defaultProvider"`
	OutlookVariant  match.OutlookVariant `json:"outlookVariant" yaml:"outlookVariant"`
}

// Storage defines the interface for settings storage. Load returns the
// defaults when nothing has been stored.
type Storage interface {
	Load() (*Settings, error)
	Save(s *Settings) error
	Exists() (bool, error)
}

// Defaults returns the settings used before the user has chosen anything
func Defaults() *Settings {
	return &Settings{
		DefaultProvider: match.ProviderUnset,
		OutlookVariant:  match.OutlookLive,
	}
}

// Validate checks both fields against their allowed values
func (s *Settings) Validate() error {
	if s.DefaultProvider != match.ProviderUnset {
		if _, err := match.ParseProvider(string(s.DefaultProvider)); err != nil {
			return err
		}
	}
	if _, err := match.ParseVariant(string(s.OutlookVariant)); err != nil {
		return err
	}
	return nil
}

// ToJSON marshals settings to JSON
func (s *Settings) ToJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// FromJSON unmarshals settings, keeping defaults for absent keys
func FromJSON(data []byte) (*Settings, error) {
	s := Defaults()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	s.fillDefaults()
	return s, nil
}

// fillDefaults restores defaults for keys stored as empty strings
func (s *Settings) fillDefaults() {
	d := Defaults()
	if s.DefaultProvider == "" {
		s.DefaultProvider = d.DefaultProvider
	}
	if s.OutlookVariant == "" {
		s.OutlookVariant = d.OutlookVariant
	}
}

// Install writes the defaults when nothing has been stored yet. Existing
// settings are returned untouched; installed reports whether a write happened.
func Install(store Storage) (settings *Settings, installed bool, err error) {
	exists, err := store.Exists()
	if err != nil {
		return nil, false, fmt.Errorf("checking stored settings: %w", err)
	}
	if exists {
		s, err := store.Load()
		return s, false, err
	}

	s := Defaults()
	if err := store.Save(s); err != nil {
		return nil, false, fmt.Errorf("saving default settings: %w", err)
	}
	return s, true, nil
}

// Set updates one setting, validating the value before saving
func Set(store Storage, key, value string) (*Settings, error) {
	s, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	value = strings.ToLower(strings.TrimSpace(value))
	switch normalizeKey(key) {
	case "defaultprovider", "provider":
		if value == string(match.ProviderUnset) || value == "" {
			s.DefaultProvider = match.ProviderUnset
			break
		}
		p, err := match.ParseProvider(value)
		if err != nil {
			return nil, err
		}
		s.DefaultProvider = p
	case "outlookvariant", "variant":
		v, err := match.ParseVariant(value)
		if err != nil {
			return nil, err
		}
		s.OutlookVariant = v
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	if err := store.Save(s); err != nil {
		return nil, fmt.Errorf("saving settings: %w", err)
	}
	return s, nil
}

func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, "_", "")
	return strings.ReplaceAll(key, "-", "")
}
