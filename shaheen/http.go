package shaheen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// doJSON sends an HTTP request with a JSON encoded body and decodes a JSON
// response. Retries are performed for 429 and 5xx responses using jittered
// backoff and honoring Retry-After when present. A 401 is never retried; when
// the request carried a bearer token the stored token is cleared and
// OnAuthExpired fires. Either way the error unwraps to ErrAuthExpired.
func (c *Client) doJSON(ctx context.Context, method, path string, hdr http.Header, in, out any) error {
	u := c.BaseURL + path

	makeBody := func() (io.ReadCloser, error) {
		if in == nil {
			return nil, nil
		}
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		return io.NopCloser(bytes.NewReader(b)), nil
	}

	var lastErr error
	backoff, maxBack := normalizeBackoff(c.InitialBackoff, c.MaxBackoff)
	retries := normalizeRetries(c.MaxRetries)

	for attempt := 0; attempt <= retries; attempt++ {
		rc, err := makeBody()
		if err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, method, u, rc)
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		if c.UserAgent != "" {
			req.Header.Set("User-Agent", c.UserAgent)
		}
		tok := c.token()
		if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
		for k, vs := range hdr {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
		if c.Logger != nil {
			c.Logger("request", map[string]any{
				"method": method, "url": u, "headers": redactHeaders(req.Header), "attempt": attempt,
			})
		}
		for _, h := range c.BeforeHooks {
			h(req)
		}

		res, err := c.HTTPClient.Do(req)
		var body []byte
		if err == nil {
			body, _ = io.ReadAll(res.Body)
			res.Body.Close()
		}
		if c.Logger != nil {
			c.Logger("response", map[string]any{
				"method": method, "url": u, "status": statusOf(res), "attempt": attempt,
			})
		}
		for _, h := range c.AfterHooks {
			h(res, body, err)
		}

		if err != nil {
			lastErr = fmt.Errorf("%s %s: %w", method, u, err)
		} else if res.StatusCode/100 == 2 {
			if out != nil && len(body) > 0 {
				if err := json.Unmarshal(body, out); err != nil {
					return fmt.Errorf("decode response: %w (body=%s)", err, string(body))
				}
			}
			return nil
		} else {
			apiErr := parseAPIError(res.StatusCode, body)
			if res.StatusCode == http.StatusUnauthorized {
				// Only a rejected session token means expiry. A 401 on an
				// unauthenticated request (a failed login) is a plain error.
				if tok != "" {
					c.authExpired()
				}
				return apiErr
			}
			if res.StatusCode == http.StatusTooManyRequests || res.StatusCode/100 == 5 {
				lastErr = fmt.Errorf("%s %s: %w", method, u, apiErr)
				if ra := parseRetryAfter(res.Header.Get("Retry-After")); ra > 0 && ra > backoff {
					backoff = ra
				}
			} else {
				return apiErr
			}
		}

		if attempt < retries {
			jitterSleep(ctx, backoff, maxBack)
			backoff = nextBackoff(backoff, maxBack)
		}
	}
	return fmt.Errorf("shaheen request failed after %d attempts: %w", retries+1, lastErr)
}

func (c *Client) token() string {
	if c.Tokens == nil {
		return ""
	}
	return c.Tokens.Token()
}

// authExpired clears the stored token and notifies the application once per
// 401 response.
func (c *Client) authExpired() {
	if c.Tokens != nil {
		_ = c.Tokens.Clear()
	}
	if c.OnAuthExpired != nil {
		c.OnAuthExpired()
	}
}
