package shaheen

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func urlValues(kv ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	return q
}

func newTestServer(handler http.HandlerFunc) (*httptest.Server, *Client) {
	srv := httptest.NewServer(handler)
	cl := New(
		WithBaseURL(srv.URL),
		WithToken("test-token"),
		WithRetries(2),
		WithBackoff(50*time.Millisecond, 200*time.Millisecond),
	)
	return srv, cl
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, data any, p *Pagination) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	body := map[string]any{"success": true, "data": data}
	if p != nil {
		body["pagination"] = p
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		t.Fatalf("encode envelope: %v", err)
	}
}

func mustPath(t *testing.T, r *http.Request, want string) {
	t.Helper()
	if r.URL.Path != want {
		t.Fatalf("path = %s, want %s", r.URL.Path, want)
	}
}
