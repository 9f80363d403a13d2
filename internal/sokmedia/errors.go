package sokmedia

import (
	"errors"
	"fmt"
)

// ErrNotLoggedIn is returned when a playlist fetch or video download is
// attempted before Login has succeeded. No request is issued in that case.
var ErrNotLoggedIn = errors.New("must login first")

// ErrLoginFailed is returned when the login POST completes but the server
// does not confirm the login by redirecting to an authenticated page.
//
// This typically means the credentials were rejected: the portal re-renders
// the login form with a 200 instead of redirecting.
var ErrLoginFailed = errors.New("login not confirmed: no redirect from the login endpoint")

// ErrResolveVideo is returned when the signed streaming URL for a video
// cannot be obtained. Retried by the download orchestrator.
var ErrResolveVideo = errors.New("could not resolve streaming URL")

// ErrFetchStream is returned when the signed streaming URL cannot be
// fetched or the body cannot be written out. Retried by the download
// orchestrator. A partially written file may remain on disk.
var ErrFetchStream = errors.New("could not fetch video stream")

// StatusError reports an unexpected, non-200 HTTP status.
type StatusError struct {
	// Op names the operation that failed ("login page", "playlist", ...).
	Op string

	// URL is the request URL.
	URL string

	// Status is the HTTP status code received.
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d from %s", e.Op, e.Status, e.URL)
}
