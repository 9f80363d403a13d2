package sokmedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nmckinney/sok-downloader/internal/model"
	"github.com/nmckinney/sok-downloader/internal/sokmedia/dto"
)

// GetPlaylist retrieves the video descriptors for one conference, in the
// order the portal lists them.
//
// Requires a prior successful Login; without a session it fails with
// ErrNotLoggedIn before issuing any request. A non-200 response is returned
// as a StatusError so the caller can skip the conference without aborting
// the run.
//
// The raw response body is returned alongside the videos so callers can
// persist it for diagnostics (the debug playlist dump).
func (c *Client) GetPlaylist(ctx context.Context, conf model.Conference) ([]model.Video, json.RawMessage, error) {
	if !c.LoggedIn() {
		return nil, nil, ErrNotLoggedIn
	}

	playlistURL := fmt.Sprintf("%s/player?action=get_playlist&conf_id=%d", c.baseURL, conf.ID)
	resp, err := c.get(ctx, playlistURL, true)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching playlist for %s: %w", conf.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, &StatusError{Op: "playlist", URL: playlistURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("reading playlist for %s: %w", conf.Name, err)
	}

	var playlist dto.JSONPlaylist
	if err := json.Unmarshal(body, &playlist); err != nil {
		return nil, nil, fmt.Errorf("decoding playlist for %s: %w", conf.Name, err)
	}

	return playlist.ToVideos(), json.RawMessage(body), nil
}
