package fastnote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fastnote-sync/fastnote-go/apierr"
)

// envelope is the outer wrapper every JSON endpoint returns.
type envelope struct {
	Status  bool     `json:"status"`
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
	Data    any      `json:"data"`
}

// StatusError reports a non-2xx HTTP response. It is deliberately distinct
// from *apierr.Error: the response envelope was never reached, so there is
// no application code to map.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: %s", e.Status)
}

// do sends one request and returns the envelope's data field. At most one
// of query/form/body may be set: the server parses each route with a fixed
// encoding, so the choice per endpoint must never change.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, form url.Values, body any) (any, error) {
	raw, err := c.send(ctx, method, endpoint, query, form, body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !env.Status {
		return nil, apierr.FromCode(env.Code, env.Message, env.Details)
	}
	return env.Data, nil
}

// doRaw sends one request and returns the body bytes untouched; used for
// the single non-JSON endpoint (/note/file).
func (c *Client) doRaw(ctx context.Context, method, endpoint string, query url.Values) ([]byte, error) {
	return c.send(ctx, method, endpoint, query, nil, nil)
}

func (c *Client) send(ctx context.Context, method, endpoint string, query url.Values, form url.Values, body any) ([]byte, error) {
	u := c.baseURL + apiPrefix + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	contentType := ""
	switch {
	case form != nil:
		rdr = strings.NewReader(form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case body != nil:
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}
	req.Header.Set("User-Agent", c.userAgent)
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed",
			"method", method, "endpoint", endpoint,
			"request_id", requestID, "error", err)
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug(ctx, "request done",
		"method", method, "endpoint", endpoint,
		"status", resp.StatusCode, "request_id", requestID,
		"elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: raw}
	}
	return raw, nil
}

// dataMap coerces an envelope data value into a map. Nil and non-object
// payloads come back as an empty map.
func dataMap(data any) map[string]any {
	if m, ok := data.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
