package shaheen

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Option customizes a Client at construction time.
type Option func(*Client)

func WithBaseURL(u string) Option          { return func(c *Client) { c.BaseURL = strings.TrimRight(u, "/") } }
func WithTokenStore(s TokenStore) Option   { return func(c *Client) { c.Tokens = s } }
func WithToken(t string) Option            { return func(c *Client) { c.Tokens = NewMemoryTokenStore(t) } }
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.HTTPClient = h } }
func WithUserAgent(ua string) Option       { return func(c *Client) { c.UserAgent = ua } }
func WithRetries(max int) Option           { return func(c *Client) { c.MaxRetries = max } }
func WithBackoff(init, max time.Duration) Option {
	return func(c *Client) {
		c.InitialBackoff = init
		c.MaxBackoff = max
	}
}
func WithLogger(l Logger) Option         { return func(c *Client) { c.Logger = l } }
func WithOnAuthExpired(f func()) Option  { return func(c *Client) { c.OnAuthExpired = f } }

// CallOption customizes a single API call (for example, idempotency keys).
type CallOption func(*callOptions)

type callOptions struct {
	headers http.Header
}

// WithIdempotencyKey attaches an idempotency key for write operations.
func WithIdempotencyKey(k string) CallOption {
	return func(co *callOptions) {
		if co.headers == nil {
			co.headers = http.Header{}
		}
		co.headers.Set("x-idempotency-key", k)
	}
}

// WithNewIdempotencyKey attaches a random UUID idempotency key.
func WithNewIdempotencyKey() CallOption {
	return WithIdempotencyKey(uuid.NewString())
}

// WithHeader adds an arbitrary header to a single API call.
func WithHeader(key, value string) CallOption {
	return func(co *callOptions) {
		if co.headers == nil {
			co.headers = http.Header{}
		}
		co.headers.Add(key, value)
	}
}
