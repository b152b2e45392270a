// Package capture is the Go client SDK for the Numbers Protocol Capture
// platform: blockchain-backed digital-asset provenance. It registers files
// as assets (with optional EIP-191 integrity signing), updates asset
// metadata, fetches commit history, merges that history into a reconciled
// asset tree, and queries the verify engine for duplicate or
// near-duplicate assets.
//
// The client is synchronous: every operation blocks until its network
// round trips complete, and nothing is cached or retried. Hard failures
// are returned as *Error values carrying a machine-readable kind and
// code; callers that want to treat availability gaps as soft can wrap
// calls with pkg/poll.
package capture

import (
	"net/http"
	"strings"
	"sync"

	"github.com/numbersprotocol/capture-go/pkg/log"
)

// Config carries the settings for a Capture client.
type Config struct {
	// Token authenticates every request (Authorization: token <value>).
	// Required.
	Token string

	// Testnet targets the test network where the history service is
	// concerned. It does not change the main API base URL.
	Testnet bool

	// BaseURL overrides the default main API base URL.
	BaseURL string
}

// Option customizes a Client beyond its Config.
type Option func(*Client)

// WithLogger wires a structured logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient replaces the owned HTTP transport, e.g. to route requests
// through a recording transport in tests. The caller keeps responsibility
// for the replacement's lifecycle settings; the fixed request timeout is
// not re-applied.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// Client talks to the Capture platform. Construct with New and release the
// transport with Close when done. Methods are safe for concurrent use to
// the extent the underlying *http.Client is; the SDK adds no locking of
// its own, so callers needing per-asset serialization coordinate
// externally.
type Client struct {
	token      string
	testnet    bool
	baseURL    string
	httpClient *http.Client
	logger     log.Logger

	// Service URLs are fields so tests can point the client at local
	// servers; production code always sees the fixed endpoints.
	historyURL string
	mergeURL   string
	searchURL  string

	closeOnce sync.Once
}

// New builds a Client for the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Token == "" {
		return nil, newValidationError("token is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		token:      cfg.Token,
		testnet:    cfg.Testnet,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     log.NewNoopLogger(),
		historyURL: historyAPIURL,
		mergeURL:   mergeTreeAPIURL,
		searchURL:  assetSearchAPIURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Close releases the transport's pooled connections. It is safe to call
// more than once; only the first call acts.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
	})
}
