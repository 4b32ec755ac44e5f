package shaheen

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

func TestRetry_WithRetryAfter_ThenSuccess(t *testing.T) {
	var attempts int32

	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			w.Header().Set("Retry-After", "1")
			http.Error(w, `{"success":false,"message":"too many"}`, http.StatusTooManyRequests)
			return
		}
		writeEnvelope(t, w, []Land{{ID: 1}}, nil)
	})
	defer srv.Close()

	var sawBefore, sawAfter bool
	cl.BeforeHooks = append(cl.BeforeHooks, func(*http.Request) { sawBefore = true })
	cl.AfterHooks = append(cl.AfterHooks, func(*http.Response, []byte, error) { sawAfter = true })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := cl.ListLands(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Items) != 1 {
		t.Fatalf("items = %d", len(res.Items))
	}
	if atomic.LoadInt32(&attempts) < 2 {
		t.Fatalf("expected retry, attempts=%d", attempts)
	}
	if !sawBefore || !sawAfter {
		t.Fatalf("hooks not triggered: before=%v after=%v", sawBefore, sawAfter)
	}
}

func TestRetry_ExhaustsOn500(t *testing.T) {
	var attempts int32
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		http.Error(w, `{"success":false,"message":"down"}`, http.StatusInternalServerError)
	})
	defer srv.Close()

	_, err := cl.ListLands(context.Background(), nil)
	if err == nil {
		t.Fatal("expected failure after retries")
	}
	// MaxRetries is 2 in the test client: initial attempt plus two retries.
	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Fatalf("attempts = %d, want 3", got)
	}
}

func TestNoRetryOn4xx(t *testing.T) {
	var attempts int32
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		http.Error(w, `{"success":false,"message":"not found"}`, http.StatusNotFound)
	})
	defer srv.Close()

	_, err := cl.ListLands(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := atomic.LoadInt32(&attempts); got != 1 {
		t.Fatalf("4xx was retried: attempts = %d", got)
	}
}

func TestRedactedLogger(t *testing.T) {
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, []Land{}, nil)
	})
	defer srv.Close()

	var leaked bool
	cl.Logger = func(event string, meta map[string]any) {
		if hdr, ok := meta["headers"].(http.Header); ok {
			if got := hdr.Get("Authorization"); got == "Bearer test-token" {
				leaked = true
			}
		}
	}

	if _, err := cl.ListLands(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if leaked {
		t.Fatal("logger saw the raw bearer token")
	}
}
