// Package api is the shared HTTP layer every resource client sits on. It
// owns JSON encoding, bearer attachment, request IDs, and the mapping from
// transport/HTTP failures to the typed error codes the UI understands.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/spikemate/mobile-core/pkg/errors"
)

const (
	defaultTimeout             = 10 * time.Second
	errorBodyReadLimit   int64 = 4096
	headerRequestID            = "X-Request-ID"
	headerAuthorization        = "Authorization"
	bearerPrefix               = "Bearer "
)

// TokenSource supplies the bearer token for protected requests. Invalidate is
// called when the backend rejects the token, so a stale token is never
// retried.
type TokenSource interface {
	Token() string
	Invalidate()
}

// Client wraps the Spikemate REST backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// NewClient builds the REST client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, fmt.Errorf("api base url is required")
	}

	client := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// SetTokenSource binds the session to the client. Wired after construction
// because the session manager itself issues requests through this client.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// Get issues a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set(headerAuthorization, bearerPrefix+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "execute request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.mapFailure(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeServer, err, "decode response")
	}
	return nil
}

// mapFailure turns a non-2xx response into a typed error, preferring the
// backend-supplied message when one is present.
func (c *Client) mapFailure(resp *http.Response) error {
	message := extractMessage(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		// The token was rejected; drop it so the session transitions to
		// anonymous before the error reaches the UI.
		if c.tokens != nil {
			c.tokens.Invalidate()
		}
		if message == "" {
			message = "unauthorized"
		}
		return pkgerrors.New(pkgerrors.CodeUnauthorized, message)
	case resp.StatusCode == http.StatusNotFound:
		if message == "" {
			message = "resource not found"
		}
		return pkgerrors.New(pkgerrors.CodeNotFound, message)
	default:
		if message == "" {
			message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return pkgerrors.New(pkgerrors.CodeServer, message).WithDetails(map[string]any{
			"status": resp.StatusCode,
		})
	}
}

// extractMessage pulls the human-readable message out of the backend's error
// body, which is either {"message": ...} or {"error": {"message": ...}}.
func extractMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, errorBodyReadLimit))
	if err != nil {
		return ""
	}

	var envelope struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error.Message
}

func (c *Client) buildURL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}
