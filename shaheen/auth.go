package shaheen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// LoginRequest carries dashboard operator credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the authenticated session returned by the backend.
type LoginResponse struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

// Login authenticates an operator and saves the bearer token into the
// configured TokenStore so subsequent calls carry it.
func (c *Client) Login(ctx context.Context, req LoginRequest, opts ...CallOption) (*LoginResponse, error) {
	var env envelope
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/admin/auth/login", buildHeaders(opts...), req, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &APIError{StatusCode: http.StatusOK, Message: env.Message, Errors: env.Errors}
	}
	var out LoginResponse
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	if c.Tokens != nil {
		if err := c.Tokens.Save(out.Token); err != nil {
			return nil, fmt.Errorf("save token: %w", err)
		}
	}
	return &out, nil
}

// Logout invalidates the session server-side and clears the stored token
// regardless of the response.
func (c *Client) Logout(ctx context.Context, opts ...CallOption) error {
	err := c.doJSON(ctx, http.MethodPost, "/api/v1/admin/auth/logout", buildHeaders(opts...), struct{}{}, nil)
	if c.Tokens != nil {
		_ = c.Tokens.Clear()
	}
	return err
}
