package fastnote

import (
	"net/http"
	"strings"
	"time"

	"github.com/fastnote-sync/fastnote-go/logging"
)

const (
	// DefaultBaseURL is the local development endpoint of the service.
	DefaultBaseURL = "http://localhost:9000"

	// DefaultTimeout applies to every request unless overridden.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies this library unless WithUserAgent
	// overrides it.
	DefaultUserAgent = "fastnote-go"

	apiPrefix    = "/api"
	bearerPrefix = "Bearer "
)

// Client talks to one Fast Note Sync Service instance. Construct it with
// New; the zero value is not usable.
//
// The stored token is the only mutable state: it is set at construction,
// replaced by a successful Register/Login, or injected via SetToken, and is
// attached to every subsequent request. Access to it is not guarded; callers
// that need concurrent use with independent identities should use separate
// Client instances.
type Client struct {
	baseURL   string
	httpc     *http.Client
	log       logging.Logger
	token     string
	userAgent string
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithTimeout overrides DefaultTimeout. The timeout applies uniformly to
// every request the client issues.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client entirely; the caller is
// then responsible for its timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// WithToken seeds the client with an externally obtained bearer token, with
// or without the "Bearer " prefix.
func WithToken(token string) Option {
	return func(c *Client) { c.SetToken(token) }
}

// WithUserAgent replaces DefaultUserAgent on outgoing requests, letting the
// embedding application identify itself to the server. An empty value keeps
// the default.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger attaches a structured logger. Requests are logged at debug
// level, transport failures at error level.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New builds a Client for the given base URL (DefaultBaseURL when empty),
// applies defaults, then overlays the options in order.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		httpc:     &http.Client{Timeout: DefaultTimeout},
		log:       logging.NewNopLogger(),
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized server base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Bool returns a pointer to b; a convenience for the optional tri-state
// flags such as ListNotesOptions.IsRecycle.
func Bool(b bool) *bool { return &b }
