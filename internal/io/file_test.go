package ioutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no separators", input: "Opening Keynote", want: "Opening Keynote"},
		{name: "forward slash removed", input: "Talk/Two", want: "TalkTwo"},
		{name: "backslash removed", input: `Talk\Two`, want: "TalkTwo"},
		{name: "mixed separators", input: `a/b\c`, want: "abc"},
		{name: "nul removed", input: "a\x00b", want: "ab"},
		{name: "whitespace trimmed", input: "  padded  ", want: "padded"},
		{name: "only separators", input: `/\/`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEnsureDir(t *testing.T) {
	base := t.TempDir()

	dir := filepath.Join(base, "DEFCON27")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}

	// Second call on an existing directory is a no-op.
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir on existing dir: %v", err)
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.json")
	payload := map[string]any{"data": []any{map[string]any{"sess_id": "1"}}}

	if err := WriteJSON(path, payload); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading dump: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("dump is not valid JSON: %v", err)
	}
	if _, ok := decoded["data"]; !ok {
		t.Error("dump lost the data key")
	}
}
