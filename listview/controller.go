package listview

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/shaheenplus/shaheen-admin-go/shaheen"
)

// ErrStaleResponse marks a fetch whose result arrived after a newer fetch was
// dispatched. The result is discarded; the newer request owns the view.
var ErrStaleResponse = errors.New("listview: stale response discarded")

// FetchFunc loads one page of a resource for the given query parameters.
type FetchFunc[T Entity] func(ctx context.Context, query url.Values) (*shaheen.ListResult[T], error)

// Controller owns the fetch lifecycle of one paginated resource: it issues
// requests keyed by the encoded filter/page state, exposes loading and error
// state, and guards against out-of-order responses with a generation counter.
// It never retries by itself; Refresh is the only retry path.
type Controller[T Entity] struct {
	mu      sync.Mutex
	fetch   FetchFunc[T]
	filters *FilterStore
	perPage int

	gen        uint64
	activeKey  string
	result     *shaheen.ListResult[T]
	loading    bool
	refreshing bool
	err        error
}

// State is a consistent snapshot for rendering.
type State[T Entity] struct {
	Result     *shaheen.ListResult[T]
	Loading    bool
	Refreshing bool
	Err        error
}

// NewController builds a controller over a filter store and a fetch function.
func NewController[T Entity](filters *FilterStore, perPage int, fetch FetchFunc[T]) *Controller[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return &Controller[T]{fetch: fetch, filters: filters, perPage: perPage}
}

// Load fetches the page for the current filter state. If a newer Load or
// Refresh is dispatched before this one resolves, the late result is dropped
// and ErrStaleResponse returned.
func (c *Controller[T]) Load(ctx context.Context) (*shaheen.ListResult[T], error) {
	return c.run(ctx, false)
}

// Refresh force-refetches the active key. It raises the Refreshing flag
// instead of Loading so the UI can show a lighter affordance.
func (c *Controller[T]) Refresh(ctx context.Context) (*shaheen.ListResult[T], error) {
	return c.run(ctx, true)
}

func (c *Controller[T]) run(ctx context.Context, refresh bool) (*shaheen.ListResult[T], error) {
	c.mu.Lock()
	q := c.filters.Query(c.perPage)
	c.gen++
	gen := c.gen
	c.activeKey = q.Encode()
	if refresh {
		c.refreshing = true
	} else {
		c.loading = true
	}
	c.mu.Unlock()

	res, err := c.fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil, ErrStaleResponse
	}
	c.loading = false
	c.refreshing = false
	if err != nil {
		c.err = err
		return nil, err
	}
	c.result = res
	c.err = nil
	return res, nil
}

// State returns the current snapshot.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State[T]{Result: c.result, Loading: c.loading, Refreshing: c.refreshing, Err: c.err}
}

// ActiveKey returns the encoded query of the most recent dispatch.
func (c *Controller[T]) ActiveKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeKey
}

// find looks the entity up in the loaded page.
func (c *Controller[T]) find(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if c.result == nil {
		return zero, false
	}
	for _, it := range c.result.Items {
		if it.EntityID() == id {
			return it, true
		}
	}
	return zero, false
}

// patch replaces the matching row with the server-confirmed entity. Applying
// the same patch twice is a no-op the second time.
func (c *Controller[T]) patch(updated T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return
	}
	for i, it := range c.result.Items {
		if it.EntityID() == updated.EntityID() {
			c.result.Items[i] = updated
		}
	}
}

// remove drops the row and decrements the authoritative total. The rest of
// the pagination block intentionally stays as fetched; callers showing
// aggregate counts fall back to Refresh.
func (c *Controller[T]) remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return
	}
	kept := c.result.Items[:0]
	removed := 0
	for _, it := range c.result.Items {
		if it.EntityID() == id {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	c.result.Items = kept
	if removed > 0 && c.result.Pagination.Total >= removed {
		c.result.Pagination.Total -= removed
	}
}
