package shaheen

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListLands returns one page of land listings. Supported query parameters:
// search, status, city, purpose, date_from, date_to, page, per_page.
func (c *Client) ListLands(ctx context.Context, q url.Values, opts ...CallOption) (*ListResult[Land], error) {
	return listResource[Land](ctx, c, "/api/v1/admin/lands", q, opts...)
}

// UpdateLandStatus moves a land listing to a new moderation status and
// returns the server-confirmed listing.
func (c *Client) UpdateLandStatus(ctx context.Context, id int64, change StatusChange, opts ...CallOption) (*Land, error) {
	path := fmt.Sprintf("/api/v1/admin/lands/%d/status", id)
	return mutateResource[Land](ctx, c, http.MethodPatch, path, change, opts...)
}

// DeleteLand permanently removes a land listing.
func (c *Client) DeleteLand(ctx context.Context, id int64, opts ...CallOption) error {
	return deleteResource(ctx, c, fmt.Sprintf("/api/v1/admin/lands/%d", id), opts...)
}
