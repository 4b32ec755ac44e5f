package shaheen

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListContactMessages returns one page of contact-form messages. Supported
// query parameters: search, status, date_from, date_to, page, per_page.
func (c *Client) ListContactMessages(ctx context.Context, q url.Values, opts ...CallOption) (*ListResult[ContactMessage], error) {
	return listResource[ContactMessage](ctx, c, "/api/v1/admin/contact-messages", q, opts...)
}

// UpdateContactMessageStatus marks a message read or archived.
func (c *Client) UpdateContactMessageStatus(ctx context.Context, id int64, change StatusChange, opts ...CallOption) (*ContactMessage, error) {
	path := fmt.Sprintf("/api/v1/admin/contact-messages/%d/status", id)
	return mutateResource[ContactMessage](ctx, c, http.MethodPatch, path, change, opts...)
}

// DeleteContactMessage permanently removes a message.
func (c *Client) DeleteContactMessage(ctx context.Context, id int64, opts ...CallOption) error {
	return deleteResource(ctx, c, fmt.Sprintf("/api/v1/admin/contact-messages/%d", id), opts...)
}
