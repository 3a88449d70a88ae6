// Package transport sends requests to the gateway API and decodes its JSON
// envelope. The SDK never inspects HTTP status codes; a gateway reply is
// interpreted only through the decoded envelope's error/result shape.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// APIError is a failure reported by the gateway inside the response envelope,
// or a malformed envelope. It satisfies the error interface so callers can
// surface the gateway's own message.
type APIError struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("gateway error %d: %s", e.Code, e.Message)
	}
	return "gateway error: " + e.Message
}

// Envelope is the decoded JSON body of a gateway response. Exactly one of
// Error and Result is expected to be present in a well-formed reply.
type Envelope struct {
	Error  *APIError      `json:"error,omitempty"`
	Result map[string]any `json:"result,omitempty"`
}

// Transport is the outbound HTTP collaborator consumed by the SDK. Timeout
// and cancellation semantics are whatever the implementation's context
// handling provides; the SDK imposes none of its own. Retry policy, if any,
// also belongs here.
type Transport interface {
	// Request performs an HTTP call with the given method ("GET" or "POST")
	// and query parameters and decodes the JSON envelope.
	Request(ctx context.Context, method, rawURL string, query url.Values) (*Envelope, error)
}

// Client is the production Transport backed by net/http.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Client. A nil httpClient falls back to a default
// http.Client; pass a configured one to control timeouts.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{httpClient: httpClient}
}

// Request implements Transport.
func (c *Client) Request(ctx context.Context, method, rawURL string, query url.Values) (*Envelope, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse request url: %w", err)
	}
	u.RawQuery = query.Encode()

	zap.L().Debug("gateway request",
		zap.String("method", method),
		zap.String("url", Redacted(u)))

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}
	return &env, nil
}

// secretParams are query keys whose values must never reach a log line.
var secretParams = []string{
	"secretKey",
	"params[secretKey]",
	"signature",
	"params[signature]",
}

// Redacted renders a URL with secret-bearing query values masked.
func Redacted(u *url.URL) string {
	q := u.Query()
	for _, key := range secretParams {
		if q.Has(key) {
			q.Set(key, "***")
		}
	}
	masked := *u
	masked.RawQuery = q.Encode()
	return masked.String()
}
