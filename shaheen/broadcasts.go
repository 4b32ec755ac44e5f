package shaheen

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// SendBroadcastRequest describes a WhatsApp or newsletter campaign.
// Audience selects the recipient segment ("all", "customers", "subscribers").
type SendBroadcastRequest struct {
	Channel  string `json:"channel"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Audience string `json:"audience"`
}

// ListBroadcasts returns one page of sent and scheduled campaigns. Supported
// query parameters: search, status, channel, page, per_page.
func (c *Client) ListBroadcasts(ctx context.Context, q url.Values, opts ...CallOption) (*ListResult[Broadcast], error) {
	return listResource[Broadcast](ctx, c, "/api/v1/admin/broadcasts", q, opts...)
}

// SendBroadcast queues a campaign for delivery and returns it.
func (c *Client) SendBroadcast(ctx context.Context, req SendBroadcastRequest, opts ...CallOption) (*Broadcast, error) {
	return mutateResource[Broadcast](ctx, c, http.MethodPost, "/api/v1/admin/broadcasts", req, opts...)
}

// DeleteBroadcast removes a draft or scheduled campaign.
func (c *Client) DeleteBroadcast(ctx context.Context, id int64, opts ...CallOption) error {
	return deleteResource(ctx, c, fmt.Sprintf("/api/v1/admin/broadcasts/%d", id), opts...)
}

// ListSubscribers returns one page of newsletter subscribers. Supported query
// parameters: search, status, page, per_page.
func (c *Client) ListSubscribers(ctx context.Context, q url.Values, opts ...CallOption) (*ListResult[Subscriber], error) {
	return listResource[Subscriber](ctx, c, "/api/v1/admin/newsletter/subscribers", q, opts...)
}

// UpdateSubscriberStatus resubscribes or unsubscribes an address.
func (c *Client) UpdateSubscriberStatus(ctx context.Context, id int64, change StatusChange, opts ...CallOption) (*Subscriber, error) {
	path := fmt.Sprintf("/api/v1/admin/newsletter/subscribers/%d/status", id)
	return mutateResource[Subscriber](ctx, c, http.MethodPatch, path, change, opts...)
}
