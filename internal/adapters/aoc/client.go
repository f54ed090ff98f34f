// Package aoc implements the InputSource port against the puzzle site's HTTP API.
package aoc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"go.trai.ch/aoc/internal/core/domain"
	"go.trai.ch/aoc/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 30 * time.Second

var _ ports.InputSource = (*Client)(nil)

// Client downloads puzzle inputs using a session cookie.
type Client struct {
	baseURL     string
	credentials domain.Credentials
	httpClient  *http.Client
}

// NewClient creates a Client for the given URL prefix and credentials.
func NewClient(baseURL string, creds domain.Credentials) *Client {
	return NewClientWithHTTP(baseURL, creds, &http.Client{
		Timeout: httpClientTimeout,
	})
}

// NewClientWithHTTP creates a Client that issues requests through httpClient.
func NewClientWithHTTP(baseURL string, creds domain.Credentials, httpClient *http.Client) *Client {
	return &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		credentials: creds,
		httpClient:  httpClient,
	}
}

// Download fetches the input for day with a single GET request.
// Missing credentials fail before any request is built.
func (c *Client) Download(ctx context.Context, day domain.Day) (string, error) {
	if err := c.credentials.Validate(); err != nil {
		return "", err
	}

	url := c.inputURL(day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInputRequestFailed.Error()), "url", url)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: c.credentials.SessionID})
	req.Header.Set("User-Agent", c.credentials.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInputRequestFailed.Error()), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := zerr.With(zerr.Wrap(domain.ErrInputRequestFailed, resp.Status), "status_code", resp.StatusCode)
		apiErr = zerr.With(apiErr, "day", day.String())
		return "", zerr.With(apiErr, "url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInputRequestFailed.Error()), "url", url)
	}

	if !utf8.Valid(body) {
		return "", zerr.With(zerr.Wrap(domain.ErrInputInvalidEncoding, "invalid response body"), "url", url)
	}

	return string(body), nil
}

func (c *Client) inputURL(day domain.Day) string {
	return fmt.Sprintf("%s/%s/input", c.baseURL, day)
}
