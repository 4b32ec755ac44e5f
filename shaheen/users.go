package shaheen

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListUsers returns one page of marketplace accounts awaiting or past
// approval. Supported query parameters: search, status, page, per_page.
func (c *Client) ListUsers(ctx context.Context, q url.Values, opts ...CallOption) (*ListResult[User], error) {
	return listResource[User](ctx, c, "/api/v1/admin/users", q, opts...)
}

// UpdateUserStatus approves, rejects, or suspends an account.
func (c *Client) UpdateUserStatus(ctx context.Context, id int64, change StatusChange, opts ...CallOption) (*User, error) {
	path := fmt.Sprintf("/api/v1/admin/users/%d/status", id)
	return mutateResource[User](ctx, c, http.MethodPatch, path, change, opts...)
}

// DeleteUser permanently removes an account.
func (c *Client) DeleteUser(ctx context.Context, id int64, opts ...CallOption) error {
	return deleteResource(ctx, c, fmt.Sprintf("/api/v1/admin/users/%d", id), opts...)
}
