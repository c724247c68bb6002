package googlebooks

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bookshelf/internal/platform/jsontree"
)

const (
	DefaultBaseURL = "https://www.googleapis.com/books/v1"
	DefaultTimeout = 2 * time.Second
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("google books returned status %d", e.StatusCode)
}

// Client queries the Google Books volumes endpoint.
type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
}

func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// Volumes runs the search volumes?q=isbn:{isbn}.
func (c *Client) Volumes(ctx context.Context, isbn string) (jsontree.Node, error) {
	u := fmt.Sprintf("%s/volumes?q=isbn:%s", c.baseURL, isbn)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return jsontree.Node{}, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return jsontree.Node{}, fmt.Errorf("google books request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return jsontree.Node{}, &StatusError{URL: u, StatusCode: resp.StatusCode}
	}

	doc, err := jsontree.Decode(resp.Body)
	if err != nil {
		return jsontree.Node{}, fmt.Errorf("decoding google books response: %w", err)
	}
	return doc, nil
}
