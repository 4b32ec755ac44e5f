package shaheen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Methods cannot be generic, so the shared envelope plumbing lives in
// package-level helpers the typed endpoint methods forward to.

// listResource fetches one page of a paginated resource. The query string is
// produced upstream (see package listview) and forwarded verbatim.
func listResource[T any](ctx context.Context, c *Client, path string, q url.Values, opts ...CallOption) (*ListResult[T], error) {
	if qs := q.Encode(); qs != "" {
		path += "?" + qs
	}
	var env envelope
	if err := c.doJSON(ctx, http.MethodGet, path, buildHeaders(opts...), nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &APIError{StatusCode: http.StatusOK, Message: env.Message, Errors: env.Errors}
	}
	out := &ListResult[T]{Items: []T{}}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &out.Items); err != nil {
			return nil, fmt.Errorf("decode %s items: %w", path, err)
		}
	}
	if p := env.page(); p != nil {
		out.Pagination = *p
	} else {
		// Older endpoints omit the block for single-page results.
		n := len(out.Items)
		out.Pagination = Pagination{CurrentPage: 1, LastPage: 1, PerPage: n, Total: n, From: 1, To: n}
	}
	return out, nil
}

// mutateResource issues a write (POST/PATCH/PUT) and decodes the returned
// entity. The server-confirmed entity is what list caches are patched with.
func mutateResource[T any](ctx context.Context, c *Client, method, path string, body any, opts ...CallOption) (*T, error) {
	var env envelope
	if err := c.doJSON(ctx, method, path, buildHeaders(opts...), body, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &APIError{StatusCode: http.StatusOK, Message: env.Message, Errors: env.Errors}
	}
	var out T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return nil, fmt.Errorf("decode %s entity: %w", path, err)
		}
	}
	return &out, nil
}

// deleteResource issues a DELETE and checks the envelope.
func deleteResource(ctx context.Context, c *Client, path string, opts ...CallOption) error {
	var env envelope
	if err := c.doJSON(ctx, http.MethodDelete, path, buildHeaders(opts...), nil, &env); err != nil {
		return err
	}
	if !env.Success {
		return &APIError{StatusCode: http.StatusOK, Message: env.Message, Errors: env.Errors}
	}
	return nil
}
