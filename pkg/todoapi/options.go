package todoapi

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultUserAgent is sent with every request unless WithUserAgent is used.
const DefaultUserAgent = "todoapi-go"

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

// clientConfig holds the configuration for a Client.
type clientConfig struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     zerolog.Logger
}

// defaultConfig returns the default client configuration.
func defaultConfig() *clientConfig {
	return &clientConfig{
		userAgent: DefaultUserAgent,
		logger:    zerolog.Nop(),
	}
}

// WithHTTPClient sets the HTTP client used to send requests. The client owns
// connection pooling and TLS.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets a timeout on the HTTP client. The default is no timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
