// Package client is the Go SDK for the storefront API. It carries the
// client-side state the web UI holds: the cart, the auth session, and
// the checkout flow, plus typed wrappers over every endpoint.
//
// Failures are split into two kinds the caller can branch on:
// ErrOffline when the server was never reached, and *APIError when the
// server answered with a structured error message.
package client

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

	"github.com/sirupsen/logrus"
)

// ErrOffline marks a connection-level failure: the request never got a
// response from the server.
var ErrOffline = errors.New("cannot connect to server")

// APIError is a non-2xx response carrying the server's message
// verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned an error (%d): %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
	token   string
}

func New(baseURL string, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.New()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// SetToken attaches a session token to subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// errorBody is the shape the server uses for failures.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// do performs one request and decodes the response into out. A
// transport failure wraps ErrOffline; a non-2xx status becomes an
// *APIError with the body's message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOffline, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOffline, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		message := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &eb) == nil && eb.Error != "" {
			message = eb.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("unexpected response shape: %w", err)
		}
	}
	return nil
}
