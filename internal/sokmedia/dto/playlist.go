// Package dto contains the wire-format structures of the portal's player
// API, kept separate from the domain model.
package dto

import (
	"encoding/json"

	"github.com/nmckinney/sok-downloader/internal/model"
)

// JSONPlaylist mirrors the get_playlist response body.
type JSONPlaylist struct {
	Data []JSONEntry `json:"data"`
}

// JSONEntry is one playlist row.
type JSONEntry struct {
	// SessID identifies the video; the portal serves it as either a JSON
	// number or a string depending on the conference, so json.Number
	// covers both.
	SessID   json.Number  `json:"sess_id"`
	SessData JSONSessData `json:"sess_data"`
}

// JSONSessData carries the per-session metadata; only the display name is
// used.
type JSONSessData struct {
	SessionName string `json:"session_name"`
}

// ToVideos converts the decoded playlist to model videos, preserving the
// source order.
func (p *JSONPlaylist) ToVideos() []model.Video {
	videos := make([]model.Video, 0, len(p.Data))
	for _, entry := range p.Data {
		videos = append(videos, model.Video{
			ID:   entry.SessID.String(),
			Name: entry.SessData.SessionName,
		})
	}
	return videos
}
