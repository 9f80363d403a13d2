package sokmedia

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

const (
	loginPath = "/node?destination=node"

	// loginContainerID is the element wrapping the login form; the hidden
	// inputs inside it (form_build_id and friends) must be echoed back in
	// the login POST.
	loginContainerID = "page_container"

	// loginOpValue is sent verbatim; the portal's form expects this exact
	// value for the op field.
	loginOpValue = "Log+in"
)

// Login performs the login handshake and captures the session.
//
// The handshake fetches the site root, scrapes the hidden form fields out
// of the login container, merges in the credentials and POSTs the result
// URL-encoded to the login endpoint. The portal signals success by
// redirecting to an authenticated page: an empty redirect chain means the
// credentials were rejected (ErrLoginFailed). The cookies set on the first
// response of that chain become the session.
//
// Login does not retry; an authentication failure is fatal for the whole
// run. The redirect-chain success signal is how the live service behaved
// when this was written and should be re-verified if logins start failing.
func (c *Client) Login(ctx context.Context, username, password string) error {
	resp, err := c.get(ctx, c.baseURL, false)
	if err != nil {
		return fmt.Errorf("fetching login page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Op: "login page", URL: c.baseURL, Status: resp.StatusCode}
	}

	form, err := parseHiddenInputs(resp.Body, loginContainerID)
	if err != nil {
		return fmt.Errorf("scraping login form: %w", err)
	}
	form.Set("name", username)
	form.Set("pass", password)
	form.Set("op", loginOpValue)

	loginURL := c.baseURL + loginPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	postResp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("submitting login form: %w", err)
	}
	defer postResp.Body.Close()
	io.Copy(io.Discard, postResp.Body)

	history := redirectHistory(postResp)
	if len(history) == 0 {
		return ErrLoginFailed
	}

	session := make(map[string]string)
	for _, cookie := range history[0].Cookies() {
		session[cookie.Name] = cookie.Value
	}
	c.session = session
	return nil
}

// redirectHistory returns the responses that redirected into resp, oldest
// first. Empty when resp was served directly.
func redirectHistory(resp *http.Response) []*http.Response {
	var history []*http.Response
	for r := resp.Request.Response; r != nil; r = r.Request.Response {
		history = append([]*http.Response{r}, history...)
	}
	return history
}

// parseHiddenInputs collects the name/value pairs of every hidden input
// inside the element with the given id.
func parseHiddenInputs(r io.Reader, containerID string) (url.Values, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	container := findByID(doc, containerID)
	if container == nil {
		return nil, fmt.Errorf("no element with id %q on login page", containerID)
	}

	form := url.Values{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "input" {
			var typ, name, value string
			for _, attr := range n.Attr {
				switch attr.Key {
				case "type":
					typ = attr.Val
				case "name":
					name = attr.Val
				case "value":
					value = attr.Val
				}
			}
			if typ == "hidden" && name != "" {
				form.Set(name, value)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(container)
	return form, nil
}

// findByID walks the parsed document for the element with the given id.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val == id {
				return n
			}
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findByID(child, id); found != nil {
			return found
		}
	}
	return nil
}
