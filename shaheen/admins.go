package shaheen

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateAdminRequest carries the fields for a new dashboard operator account.
type CreateAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ListAdmins returns one page of dashboard operator accounts. Supported query
// parameters: search, status, role, page, per_page.
func (c *Client) ListAdmins(ctx context.Context, q url.Values, opts ...CallOption) (*ListResult[Admin], error) {
	return listResource[Admin](ctx, c, "/api/v1/admin/admins", q, opts...)
}

// CreateAdmin registers a new operator account.
func (c *Client) CreateAdmin(ctx context.Context, req CreateAdminRequest, opts ...CallOption) (*Admin, error) {
	return mutateResource[Admin](ctx, c, http.MethodPost, "/api/v1/admin/admins", req, opts...)
}

// UpdateAdminStatus activates or suspends an operator account.
func (c *Client) UpdateAdminStatus(ctx context.Context, id int64, change StatusChange, opts ...CallOption) (*Admin, error) {
	path := fmt.Sprintf("/api/v1/admin/admins/%d/status", id)
	return mutateResource[Admin](ctx, c, http.MethodPatch, path, change, opts...)
}

// DeleteAdmin permanently removes an operator account.
func (c *Client) DeleteAdmin(ctx context.Context, id int64, opts ...CallOption) error {
	return deleteResource(ctx, c, fmt.Sprintf("/api/v1/admin/admins/%d", id), opts...)
}
