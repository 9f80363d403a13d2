package model

import (
	"strings"

	ioutils "github.com/nmckinney/sok-downloader/internal/io"
)

// Video represents one entry of a conference playlist.
//
// Video is a value object created while decoding the playlist response and
// never mutated afterwards. The id is the portal's session id used to
// resolve the signed streaming URL; the name is the talk title shown in the
// player, from which the local filename is derived.
//
// Example:
//
//	v := model.Video{ID: "2", Name: "Talk/Two"}
//	v.FileName() // "TalkTwo.mp4"
type Video struct {
	// ID is the portal session id for this video.
	ID string

	// Name is the talk title as published in the playlist.
	Name string
}

// FileName returns the filesystem-safe name the video is saved under.
//
// Path separator characters are stripped from the title (the portal uses
// slashes inside talk titles) and the ".mp4" container extension is
// appended. The result never contains a path separator.
func (v Video) FileName() string {
	return ioutils.SanitizeFileName(v.Name) + ".mp4"
}

// String implements fmt.Stringer for log lines.
func (v Video) String() string {
	return strings.TrimSpace(v.Name)
}
