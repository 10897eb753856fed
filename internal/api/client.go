// Package api is a small JSON client for the remote admin REST service.
// It knows nothing about resource kinds; callers pass collection paths.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// maxErrorBody bounds how much of a failed response ends up in errors and logs.
const maxErrorBody = 512

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration // per request; zero means no timeout
}

// Client issues requests against one base origin. It is safe for
// concurrent use.
type Client struct {
	baseURL  string
	timeout  time.Duration
	http     *http.Client
	observer Observer
}

// NewClient creates a Client. A nil observer discards events.
func NewClient(opts Options, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		timeout: opts.Timeout,
		http: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// BaseURL returns the origin requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// List GETs the collection at path and decodes the JSON array into out.
func (c *Client) List(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

// Create POSTs body as JSON to the collection at path. When out is non-nil
// the response must carry a JSON body, which is decoded into out.
func (c *Client) Create(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, "", body, out)
}

// Delete removes the record id from the collection at path. An empty id
// fails without a request, since it would address the collection itself.
func (c *Client) Delete(ctx context.Context, path, id string) error {
	if id == "" {
		return fmt.Errorf("%w: DELETE %s", ErrMissingID, path)
	}
	return c.do(ctx, http.MethodDelete, path, id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, id string, body, out any) error {
	start := time.Now()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	status, err := c.roundTrip(ctx, method, path, id, body, out)
	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			err = fmt.Errorf("%w: %s %s", ErrTimeout, method, path)
		case errors.Is(ctx.Err(), context.Canceled):
			err = fmt.Errorf("%s %s: %w", method, path, context.Canceled)
		}
	}

	c.observer.OnCallComplete(CallEvent{
		Method:    method,
		Path:      path,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: ErrorCode(err),
	})
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path, id string, body, out any) (int, error) {
	target := c.baseURL + path
	if id != "" {
		target += "/" + url.PathEscape(id)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectionError(err) {
			return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   truncate(strings.TrimSpace(string(respBody)), maxErrorBody),
		}
	}

	if out == nil {
		return resp.StatusCode, nil
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return resp.StatusCode, fmt.Errorf("%w: %s %s: empty body", ErrDecode, method, path)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %s %s: %v", ErrDecode, method, path, err)
	}
	return resp.StatusCode, nil
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "…"
}

// Close releases idle keep-alive connections.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}
