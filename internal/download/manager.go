package download

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/nmckinney/sok-downloader/internal/config"
	ioutils "github.com/nmckinney/sok-downloader/internal/io"
	"github.com/nmckinney/sok-downloader/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Client is the portal surface the Manager drives. *sokmedia.Client
// satisfies it.
type Client interface {
	Login(ctx context.Context, username, password string) error
	GetPlaylist(ctx context.Context, conf model.Conference) ([]model.Video, json.RawMessage, error)
	DownloadVideo(ctx context.Context, video model.Video, dir string) (path string, skipped bool, err error)
}

// Manager coordinates one sequential download run.
//
// A run logs in once, then walks the requested conferences in order,
// fetching each playlist and downloading its videos one at a time with
// bounded retry. Per-video failures never abort the run; only a login
// failure (or an unknown conference name, caught before any network call)
// does.
type Manager struct {
	settings   *config.Settings
	client     Client
	onProgress func(ProgressEvent)
	runID      string

	// wait implements the post-attempt pause; swapped out in tests.
	wait func(ctx context.Context, d time.Duration)
}

// NewManager creates a Manager for one run.
func NewManager(settings *config.Settings, client Client, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		client:     client,
		onProgress: onProgress,
		runID:      uuid.NewString(),
		wait:       sleepWait,
	}
}

// Run executes the whole pipeline.
//
// Conference names are resolved against the catalog up front, so a typo is
// rejected before the login request. A login failure aborts the entire run:
// the session is shared process state and nothing works without it.
func (m *Manager) Run(ctx context.Context) error {
	conferences := make([]model.Conference, 0, len(m.settings.Conferences))
	for _, name := range m.settings.Conferences {
		conf, err := model.LookupConference(name)
		if err != nil {
			return err
		}
		conferences = append(conferences, conf)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Starting run %s for %d conference(s)", m.runID, len(conferences)), Level: LevelVerbose})

	if err := m.client.Login(ctx, m.settings.Username, m.settings.Password); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Login failed: %v", err), Level: LevelError})
		return fmt.Errorf("login: %w", err)
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Logged in as %s", m.settings.Username), Level: LevelInfo})

	for _, conf := range conferences {
		m.downloadConference(ctx, conf)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Run %s complete", m.runID), Level: LevelVerbose})
	return nil
}

// downloadConference processes one conference. Failures here are logged
// and the run moves on to the next conference.
func (m *Manager) downloadConference(ctx context.Context, conf model.Conference) {
	m.progress(ProgressEvent{Message: fmt.Sprintf("Start processing conference: %s", conf.Name), Level: LevelInfo})

	dir := filepath.Join(m.settings.OutputDir, conf.Name)
	if err := ioutils.EnsureDir(dir); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Cannot create %s: %v", dir, err), Level: LevelError})
		return
	}

	videos, raw, err := m.client.GetPlaylist(ctx, conf)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Failed to get playlist for %s, skipping conference: %v", conf.Name, err), Level: LevelError})
		return
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Retrieved %d videos from conference %s", len(videos), conf.Name), Level: LevelInfo})

	if m.settings.Debug {
		dumpPath := filepath.Join(dir, "playlist.json")
		if err := ioutils.WriteJSON(dumpPath, raw); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Could not write playlist dump: %v", err), Level: LevelWarning})
		} else {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote playlist dump to %s", dumpPath), Level: LevelVerbose})
		}
	}

	for _, video := range videos {
		m.downloadVideo(ctx, video, dir)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Done downloading for conference: %s", conf.Name), Level: LevelSuccess})
}

// downloadVideo attempts one video up to MaxAttempts times. The pause runs
// after every attempt, successful or not; a success or skip then ends the
// retry loop. Exhausted attempts are logged and the video abandoned.
func (m *Manager) downloadVideo(ctx context.Context, video model.Video, dir string) {
	for attempt := 1; attempt <= m.settings.MaxAttempts; attempt++ {
		path, skipped, err := m.client.DownloadVideo(ctx, video, dir)
		switch {
		case err != nil:
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading %s (attempt %d/%d): %v", video.Name, attempt, m.settings.MaxAttempts, err), Level: LevelError})
		case skipped:
			m.progress(ProgressEvent{Message: fmt.Sprintf("Video %s already exists. Skipping...", filepath.Base(path)), Level: LevelWarning})
		default:
			m.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded video %s to %s", video.Name, path), Level: LevelSuccess})
		}

		m.pause(ctx)

		if err == nil {
			return
		}
	}
}

// pause sleeps the configured delay. It runs unconditionally after every
// download attempt, a quirk of the historical behavior this tool preserves.
func (m *Manager) pause(ctx context.Context) {
	if m.settings.DelaySeconds <= 0 {
		return
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Sleeping for %d sec(s)", m.settings.DelaySeconds), Level: LevelVerbose})
	m.wait(ctx, time.Duration(m.settings.DelaySeconds)*time.Second)
}

func sleepWait(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
