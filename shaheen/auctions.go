package shaheen

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListAuctions returns one page of auctions. Supported query parameters:
// search, status, city, date_from, date_to, page, per_page.
func (c *Client) ListAuctions(ctx context.Context, q url.Values, opts ...CallOption) (*ListResult[Auction], error) {
	return listResource[Auction](ctx, c, "/api/v1/admin/auctions", q, opts...)
}

// UpdateAuctionStatus moves an auction to a new status (open, close, reject).
func (c *Client) UpdateAuctionStatus(ctx context.Context, id int64, change StatusChange, opts ...CallOption) (*Auction, error) {
	path := fmt.Sprintf("/api/v1/admin/auctions/%d/status", id)
	return mutateResource[Auction](ctx, c, http.MethodPatch, path, change, opts...)
}

// DeleteAuction permanently removes an auction.
func (c *Client) DeleteAuction(ctx context.Context, id int64, opts ...CallOption) error {
	return deleteResource(ctx, c, fmt.Sprintf("/api/v1/admin/auctions/%d", id), opts...)
}
