// Package shaheen provides a typed Go client for the Shaheen marketplace
// admin API. The client wraps HTTP transport, retries, bearer-token
// authentication, and response decoding with strongly-typed helpers for the
// dashboard resources (lands, auctions, purchase requests, users, customers,
// contact messages, admins, broadcasts, reports).
//
// Authentication failures are handled centrally: a 401 response clears the
// configured TokenStore, fires OnAuthExpired, and surfaces ErrAuthExpired so
// callers can route the operator back to login.
package shaheen

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// Logger defines an optional structured logging hook. Implementations should
// avoid recording sensitive values. The SDK already redacts bearer tokens in
// headers.
type Logger func(event string, metadata map[string]any)

// TokenStore supplies the bearer token attached to every request and is the
// single place the token is cleared when the backend reports it expired.
type TokenStore interface {
	Token() string
	Save(token string) error
	Clear() error
}

// Client contains shared configuration and HTTP plumbing for the SDK.
type Client struct {
	// BaseURL is the API origin (for example: https://core-api-x41.shaheenplus.sa).
	BaseURL string

	// Tokens persists the admin bearer token. Login saves into it, a 401
	// clears it. Defaults to an in-memory store.
	Tokens TokenStore

	// OnAuthExpired runs after a 401 cleared the stored token. The dashboard
	// uses it to navigate back to the login screen.
	OnAuthExpired func()

	// HTTPClient is the underlying HTTP client. A tuned default is provided
	// and can be replaced via WithHTTPClient.
	HTTPClient *http.Client

	// UserAgent is added to each request.
	UserAgent string

	// Retry configuration controls jittered exponential backoff for 429/5xx.
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	// Observability hooks.
	Logger      Logger
	BeforeHooks []func(*http.Request)
	AfterHooks  []func(*http.Response, []byte, error)
}

// New constructs a Client with safe defaults. Options can override defaults.
func New(opts ...Option) *Client {
	c := &Client{
		BaseURL: "https://core-api-x41.shaheenplus.sa",
		Tokens:  NewMemoryTokenStore(""),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		UserAgent:      "shaheen-admin-go/0.3 (+https://github.com/shaheenplus/shaheen-admin-go)",
		MaxRetries:     3,
		InitialBackoff: 300 * time.Millisecond,
		MaxBackoff:     3 * time.Second,
	}
	for _, f := range opts {
		f(c)
	}
	return c
}

// memoryTokenStore is the zero-config TokenStore used when persistence is not
// wired up (tests, short-lived scripts).
type memoryTokenStore struct {
	mu  sync.Mutex
	tok string
}

// NewMemoryTokenStore returns a TokenStore that keeps the token in memory only.
func NewMemoryTokenStore(token string) TokenStore {
	return &memoryTokenStore{tok: token}
}

func (m *memoryTokenStore) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tok
}

func (m *memoryTokenStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok = token
	return nil
}

func (m *memoryTokenStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok = ""
	return nil
}
