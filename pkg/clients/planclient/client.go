// Package planclient is the HTTP client for the shift-plan backend. It owns
// the request/response contract: the credential header on every call, the 401
// mapping to ErrUnauthorized, and the error-body decoding for everything else.
package planclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnauthorized reports a rejected or expired credential. Any 401 from any
// endpoint maps to it, and callers must treat it as fatal for the session
// rather than retrying the individual call.
var ErrUnauthorized = errors.New("unauthorized: credential rejected or expired")

// APIError is a non-2xx, non-401 backend response. The message comes from
// the JSON "error" field when present, otherwise the raw body, and is meant
// to be surfaced to the operator verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend error (%d)", e.Status)
}

// TokenSource supplies the current bearer credential. An empty string means
// no credential, in which case the header is omitted.
type TokenSource interface {
	Token() string
}

// Client talks to the shift-plan backend
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *zap.Logger
}

// New creates a client for the backend at baseURL. The token source is read
// on every request so a login or logout mid-session takes effect immediately.
func New(baseURL string, tokens TokenSource, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
		logger:  logger,
	}
}

// do issues one request and decodes a JSON response into out (skipped when
// out is nil). Every request carries a correlation id so a failing fetch can
// be matched to its log lines.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqID := uuid.NewString()

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", token)
	}

	c.logger.Debug("backend request",
		zap.String("request_id", reqID),
		zap.String("method", method),
		zap.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Warn("backend rejected credential",
			zap.String("request_id", reqID),
			zap.String("path", path))
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(reqID, path, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// decodeError extracts the operator-facing message from an error response:
// the JSON "error" field when the body parses, the raw text otherwise.
func (c *Client) decodeError(reqID, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	message := strings.TrimSpace(string(raw))

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
		message = envelope.Error
	}

	c.logger.Debug("backend error response",
		zap.String("request_id", reqID),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("message", message))

	return &APIError{Status: resp.StatusCode, Message: message}
}
