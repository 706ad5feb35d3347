package todoapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// Client is an HTTP client for the todo list API.
//
// A Client holds no per-call state and is safe for concurrent use.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	logger    zerolog.Logger
}

// NewClient creates a new todo API client for the service rooted at baseURL,
// for example "https://jsonplaceholder.typicode.com".
//
// Optional options:
//   - WithHTTPClient: sets the underlying HTTP client (default: a new http.Client)
//   - WithTimeout: sets the HTTP client timeout (default: none)
//   - WithUserAgent: sets the User-Agent header (default: DefaultUserAgent)
//   - WithLogger: sets the debug logger (default: disabled)
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.timeout > 0 {
		// Copy so a shared client passed through WithHTTPClient is not modified.
		clone := *httpClient
		clone.Timeout = cfg.timeout
		httpClient = &clone
	}

	return &Client{
		baseURL:   base,
		userAgent: cfg.userAgent,
		http:      httpClient,
		logger:    cfg.logger,
	}, nil
}

// BaseURL returns the endpoint prefix requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// normalizeBaseURL checks that raw is an absolute http(s) URL and strips any
// trailing slash.
func normalizeBaseURL(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("base URL is required")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid base URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: host is required", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("invalid base URL %q: query and fragment are not allowed", raw)
	}

	return strings.TrimRight(raw, "/"), nil
}
