package registry

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal read-only client for the Docker Hub v2 API.
// It only answers one question: does this repository tag exist?
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError represents an unexpected response from the registry API.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("registry API error (%d): %s", e.StatusCode, string(e.Body))
}

// NewClient creates a client against the given API base URL
// (e.g. "https://hub.docker.com"). A trailing slash is tolerated.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// TagExists reports whether repo (e.g. "rwthika/acdc") has the given tag.
// A 404 is a definitive "no", anything other than 200/404 is an error.
func (c *Client) TagExists(repo, tag string) (bool, error) {
	if strings.TrimSpace(repo) == "" || strings.TrimSpace(tag) == "" {
		return false, fmt.Errorf("TagExists: repo and tag must be set")
	}

	endpoint := fmt.Sprintf("%s/v2/repositories/%s/tags/%s",
		c.baseURL, repo, url.PathEscape(tag))

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return false, fmt.Errorf("registry request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return false, &APIError{StatusCode: resp.StatusCode, Body: body}
	}
}
