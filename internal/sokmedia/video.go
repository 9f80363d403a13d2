package sokmedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/nmckinney/sok-downloader/internal/model"
)

// downloadChunkSize is the buffer size for streaming a video body to disk.
const downloadChunkSize = 4096

// DownloadVideo resolves the signed streaming URL for one video and streams
// it into dir.
//
// The destination is dir/<video.FileName()>. If that file already exists
// the download is skipped and the existing path returned with skipped set;
// re-running a pipeline never re-downloads finished files.
//
// Requires a prior successful Login (ErrNotLoggedIn otherwise). Resolution
// failures wrap ErrResolveVideo, streaming failures wrap ErrFetchStream;
// both are retryable from the caller's point of view. On a mid-stream
// failure a partially written file may remain at path — the error reports
// it, nothing cleans it up.
func (c *Client) DownloadVideo(ctx context.Context, video model.Video, dir string) (path string, skipped bool, err error) {
	if !c.LoggedIn() {
		return "", false, ErrNotLoggedIn
	}

	path = filepath.Join(dir, video.FileName())
	if _, statErr := os.Stat(path); statErr == nil {
		return path, true, nil
	}

	streamURL, err := c.resolveStreamURL(ctx, video)
	if err != nil {
		return "", false, err
	}

	if err := c.fetchStream(ctx, streamURL, path); err != nil {
		return "", false, err
	}
	return path, false, nil
}

// resolveStreamURL asks the portal for the time-limited signed URL of one
// video. The URL only stays valid for a few hours.
func (c *Client) resolveStreamURL(ctx context.Context, video model.Video) (string, error) {
	resolveURL := fmt.Sprintf("%s/player?session_id=%s&action=get_video", c.baseURL, url.QueryEscape(video.ID))
	resp, err := c.get(ctx, resolveURL, true)
	if err != nil {
		return "", fmt.Errorf("%w for %q: %v", ErrResolveVideo, video.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w for %q: status %d", ErrResolveVideo, video.Name, resp.StatusCode)
	}

	var resolved struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&resolved); err != nil {
		return "", fmt.Errorf("%w for %q: decoding response: %v", ErrResolveVideo, video.Name, err)
	}
	if resolved.URL == "" {
		return "", fmt.Errorf("%w for %q: response carried no url", ErrResolveVideo, video.Name)
	}
	return resolved.URL, nil
}

// fetchStream downloads the signed URL to path in fixed-size chunks. The
// signed URL is served by a CDN, not the portal, so no session cookies are
// attached.
func (c *Client) fetchStream(ctx context.Context, streamURL, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchStream, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.streamClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchStream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrFetchStream, resp.StatusCode)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if _, err := io.CopyBuffer(file, resp.Body, make([]byte, downloadChunkSize)); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrFetchStream, path, err)
	}
	return nil
}
