// Package api contains the HTTP client implementations of the remote
// storefront API ports: catalog, orders and authentication.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TokenSource supplies the current bearer credential, or an empty string
// when no session is held.
type TokenSource interface {
	Token(ctx context.Context) string
}

// Client is the shared HTTP transport for all storefront API calls. It
// injects the bearer token and an X-Request-Id header, and converts
// non-success responses into domain APIErrors carrying the body's message
// field when one is present.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
	logger      *slog.Logger
}

// NewClient creates the shared API client from configuration.
func NewClient(cfg *config.Config, tokenSource TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
		tokenSource: tokenSource,
		logger:      logger,
	}
}

// apiErrorBody is the error envelope the API uses on failure responses.
type apiErrorBody struct {
	Message string `json:"message"`
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response body")
	}

	return nil
}

// doRaw issues a request and returns the raw response bytes, for binary
// endpoints such as product images.
func (c *Client) doRaw(ctx context.Context, method, path string) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}

	return data, nil
}

// doMultipart issues a request with an already-assembled multipart body.
func (c *Client) doMultipart(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response body")
	}

	return nil
}

// newRequest builds a request with the bearer token and a fresh request id.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req.Header.Set("X-Request-Id", uuid.New().String())
	if token := c.tokenSource.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("API request",
		slog.String("method", method),
		slog.String("path", path),
	)

	return req, nil
}

// checkStatus converts non-success responses into a domain APIError with
// the body's message field, falling back to a generic notice.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var body apiErrorBody
	// A malformed error body still yields a usable generic error.
	_ = json.NewDecoder(resp.Body).Decode(&body)

	return domainerrors.NewAPIError(resp.StatusCode, body.Message)
}
