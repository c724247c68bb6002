package openbd

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookshelf/internal/platform/jsontree"
)

const (
	DefaultBaseURL = "https://api.openbd.jp"
	DefaultTimeout = 10 * time.Second
)

// Client talks to the openBD bibliographic API.
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

// Get fetches /v1/get?isbn={isbn} and returns the decoded document untouched.
// openBD answers unknown ISBNs with [null], so the caller decides what "no data" is;
// an error is only returned for transport failures and undecodable bodies.
func (c *Client) Get(ctx context.Context, isbn string) (jsontree.Node, error) {
	u := fmt.Sprintf("%s/v1/get?isbn=%s", c.baseURL, url.QueryEscape(isbn))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return jsontree.Node{}, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return jsontree.Node{}, fmt.Errorf("openbd request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	doc, err := jsontree.Decode(resp.Body)
	if err != nil {
		return jsontree.Node{}, fmt.Errorf("decoding openbd response: %w", err)
	}
	return doc, nil
}
