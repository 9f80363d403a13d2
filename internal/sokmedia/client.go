package sokmedia

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the production portal address.
const DefaultBaseURL = "https://www.sok-media.com"

// apiTimeout bounds the page, login, playlist and resolution requests.
// The stream request is not bounded: a conference talk can take hours to
// transfer on a slow link.
const apiTimeout = 60 * time.Second

// Client talks to the sok-media portal.
//
// Client holds the authenticated session captured by Login; every other
// method requires that session and fails with ErrNotLoggedIn without it.
// A Client is built for exactly one run and its session is never refreshed:
// if the server expires it mid-run, subsequent calls surface ordinary
// resolution failures.
//
// Example usage:
//
//	client := sokmedia.NewClient(sokmedia.DefaultBaseURL)
//	if err := client.Login(ctx, user, pass); err != nil {
//	    return err
//	}
//	videos, _, err := client.GetPlaylist(ctx, conf)
type Client struct {
	baseURL      string
	userAgent    string
	httpClient   *http.Client
	streamClient *http.Client

	// session maps cookie names to values, captured from the first
	// redirect response of a successful login. nil until Login succeeds.
	session map[string]string
}

// NewClient creates a Client for the portal at baseURL.
//
// Pass DefaultBaseURL outside of tests.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		userAgent:    "sok-downloader",
		httpClient:   &http.Client{Timeout: apiTimeout},
		streamClient: &http.Client{},
	}
}

// LoggedIn reports whether a session has been captured.
func (c *Client) LoggedIn() bool {
	return c.session != nil
}

// get issues a GET with the configured User-Agent, attaching the session
// cookies when withSession is set.
func (c *Client) get(ctx context.Context, url string, withSession bool) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	if withSession {
		for name, value := range c.session {
			req.AddCookie(&http.Cookie{Name: name, Value: value})
		}
	}
	return c.httpClient.Do(req)
}
