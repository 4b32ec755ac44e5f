package shaheen

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListCustomers returns one page of client accounts. Supported query
// parameters: search, status, city, page, per_page.
func (c *Client) ListCustomers(ctx context.Context, q url.Values, opts ...CallOption) (*ListResult[Customer], error) {
	return listResource[Customer](ctx, c, "/api/v1/admin/customers", q, opts...)
}

// UpdateCustomerStatus activates or suspends a client account.
func (c *Client) UpdateCustomerStatus(ctx context.Context, id int64, change StatusChange, opts ...CallOption) (*Customer, error) {
	path := fmt.Sprintf("/api/v1/admin/customers/%d/status", id)
	return mutateResource[Customer](ctx, c, http.MethodPatch, path, change, opts...)
}

// DeleteCustomer permanently removes a client account.
func (c *Client) DeleteCustomer(ctx context.Context, id int64, opts ...CallOption) error {
	return deleteResource(ctx, c, fmt.Sprintf("/api/v1/admin/customers/%d", id), opts...)
}
