package config

import (
	"path/filepath"
	"testing"
)

func validSettings() *Settings {
	s := DefaultSettings()
	s.Conferences = []string{"DEFCON27"}
	s.OutputDir = "/tmp/videos"
	s.Username = "alice"
	return s
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.DelaySeconds != 5 {
		t.Errorf("DelaySeconds = %d, want 5", s.DelaySeconds)
	}
	if s.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", s.MaxAttempts)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{name: "valid", mutate: func(s *Settings) {}},
		{name: "no conferences", mutate: func(s *Settings) { s.Conferences = nil }, wantErr: true},
		{name: "unknown conference", mutate: func(s *Settings) { s.Conferences = []string{"DEFCON99"} }, wantErr: true},
		{name: "missing output dir", mutate: func(s *Settings) { s.OutputDir = "" }, wantErr: true},
		{name: "missing username", mutate: func(s *Settings) { s.Username = "" }, wantErr: true},
		{name: "zero attempts", mutate: func(s *Settings) { s.MaxAttempts = 0 }, wantErr: true},
		{name: "negative delay", mutate: func(s *Settings) { s.DelaySeconds = -1 }, wantErr: true},
		{name: "zero delay allowed", mutate: func(s *Settings) { s.DelaySeconds = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s := validSettings()
	s.Password = "secret"
	s.DelaySeconds = 9
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.DelaySeconds != 9 {
		t.Errorf("DelaySeconds = %d, want 9", loaded.DelaySeconds)
	}
	if loaded.Username != "alice" {
		t.Errorf("Username = %q, want alice", loaded.Username)
	}
	if loaded.Password != "" {
		t.Error("password must never be persisted")
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want default 3", s.MaxAttempts)
	}
}
