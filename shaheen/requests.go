package shaheen

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListPurchaseRequests returns one page of land-purchase requests. Supported
// query parameters: search, status, city, purpose, page, per_page.
func (c *Client) ListPurchaseRequests(ctx context.Context, q url.Values, opts ...CallOption) (*ListResult[PurchaseRequest], error) {
	return listResource[PurchaseRequest](ctx, c, "/api/v1/admin/purchase-requests", q, opts...)
}

// UpdatePurchaseRequestStatus approves, rejects, or completes a purchase request.
func (c *Client) UpdatePurchaseRequestStatus(ctx context.Context, id int64, change StatusChange, opts ...CallOption) (*PurchaseRequest, error) {
	path := fmt.Sprintf("/api/v1/admin/purchase-requests/%d/status", id)
	return mutateResource[PurchaseRequest](ctx, c, http.MethodPatch, path, change, opts...)
}

// DeletePurchaseRequest permanently removes a purchase request.
func (c *Client) DeletePurchaseRequest(ctx context.Context, id int64, opts ...CallOption) error {
	return deleteResource(ctx, c, fmt.Sprintf("/api/v1/admin/purchase-requests/%d", id), opts...)
}
