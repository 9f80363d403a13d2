package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/nmckinney/sok-downloader/internal/model"
)

// Settings holds everything one run needs.
type Settings struct {
	// Conferences are catalog names, processed in this order.
	Conferences []string `json:"conferences"`

	// OutputDir is the directory under which per-conference
	// subdirectories are created.
	OutputDir string `json:"output_dir"`

	// Username is the portal account name.
	Username string `json:"username"`

	// Password is never persisted; it comes from a flag or the prompt.
	Password string `json:"-"`

	// DelaySeconds is the pause after every download attempt.
	DelaySeconds int `json:"delay_seconds"`

	// MaxAttempts bounds the retries per video.
	MaxAttempts int `json:"max_attempts"`

	// Debug dumps the raw playlist JSON per conference.
	Debug bool `json:"debug"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DelaySeconds: 5,
		MaxAttempts:  3,
	}
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes settings to a JSON file. The password is excluded.
func (s *Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings that would fail a run, before any network
// call: unknown conference names, missing output directory or username,
// and nonsensical retry or delay values.
func (s *Settings) Validate() error {
	if len(s.Conferences) == 0 {
		return errors.New("no conferences requested")
	}
	for _, name := range s.Conferences {
		if _, err := model.LookupConference(name); err != nil {
			return err
		}
	}
	if s.OutputDir == "" {
		return errors.New("output directory is required")
	}
	if s.Username == "" {
		return errors.New("username is required")
	}
	if s.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", s.MaxAttempts)
	}
	if s.DelaySeconds < 0 {
		return fmt.Errorf("delay must not be negative, got %d", s.DelaySeconds)
	}
	return nil
}
