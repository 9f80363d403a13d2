package model

import (
	"strings"
	"testing"
)

func TestLookupConference(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  int
		wantErr bool
	}{
		{name: "known conference", input: "DEFCON27", wantID: 71},
		{name: "village catalog entry", input: "DEFCON26-VILLAGE", wantID: 67},
		{name: "unknown conference", input: "DEFCON99", wantErr: true},
		{name: "empty name", input: "", wantErr: true},
		{name: "case sensitive", input: "defcon27", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := LookupConference(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("LookupConference(%q) expected error, got %+v", tt.input, conf)
				}
				if !strings.Contains(err.Error(), "choose from") {
					t.Errorf("error should list allowed choices, got %q", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LookupConference(%q) unexpected error: %v", tt.input, err)
			}
			if conf.ID != tt.wantID {
				t.Errorf("ID = %d, want %d", conf.ID, tt.wantID)
			}
			if conf.Name != tt.input {
				t.Errorf("Name = %q, want %q", conf.Name, tt.input)
			}
		})
	}
}

func TestConferenceNamesSorted(t *testing.T) {
	names := ConferenceNames()
	if len(names) == 0 {
		t.Fatal("catalog is empty")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestVideoFileName(t *testing.T) {
	tests := []struct {
		name  string
		video Video
		want  string
	}{
		{name: "plain title", video: Video{ID: "1", Name: "Talk One"}, want: "Talk One.mp4"},
		{name: "slash stripped", video: Video{ID: "2", Name: "Talk/Two"}, want: "TalkTwo.mp4"},
		{name: "backslash stripped", video: Video{ID: "3", Name: `Talk\Three`}, want: "TalkThree.mp4"},
		{name: "multiple separators", video: Video{ID: "4", Name: "a/b/c"}, want: "abc.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.video.FileName()
			if got != tt.want {
				t.Errorf("FileName() = %q, want %q", got, tt.want)
			}
			if strings.ContainsAny(got, `/\`) {
				t.Errorf("FileName() = %q contains a path separator", got)
			}
		})
	}
}
