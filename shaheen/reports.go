package shaheen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ReportSummary aggregates per-status counts across the dashboard domains.
// Keys are the localized status strings the backend stores.
type ReportSummary struct {
	Lands            map[string]int `json:"lands"`
	Auctions         map[string]int `json:"auctions"`
	PurchaseRequests map[string]int `json:"purchase_requests"`
	Users            map[string]int `json:"users"`
	Customers        map[string]int `json:"customers"`
	ContactMessages  map[string]int `json:"contact_messages"`
	Broadcasts       map[string]int `json:"broadcasts"`
	Subscribers      int            `json:"subscribers"`
}

// GetReportSummary returns the aggregate counts shown on the dashboard home.
func (c *Client) GetReportSummary(ctx context.Context, opts ...CallOption) (*ReportSummary, error) {
	var env envelope
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/admin/reports/summary", buildHeaders(opts...), nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &APIError{StatusCode: http.StatusOK, Message: env.Message, Errors: env.Errors}
	}
	var out ReportSummary
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, fmt.Errorf("decode report summary: %w", err)
	}
	return &out, nil
}
