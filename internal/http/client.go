package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrRequest wraps every transport-level failure returned by Get.
var ErrRequest = errors.New("http: request failed")

// Options configures the HTTP client.
type Options struct {
	// Timeout for individual requests, including reading the body.
	// Default: 0 (no timeout)
	Timeout time.Duration

	// MaxIdleConnsPerHost sets the maximum idle connections per host.
	// Default: 2
	MaxIdleConnsPerHost int

	// UserAgent is sent with every request when set.
	UserAgent string
}

// DefaultOptions returns options matching a plain blocking GET.
func DefaultOptions() Options {
	return Options{
		MaxIdleConnsPerHost: 2,
		UserAgent:           "sovfetch",
	}
}

// Response is the unchecked result of a GET.
type Response struct {
	StatusCode int
	Status     string
	Body       io.ReadCloser
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client is a single-shot HTTP client.
type Client struct {
	client *http.Client
	opts   Options
}

// NewClient creates a new HTTP client with the given options.
func NewClient(opts Options) *Client {
	if opts.MaxIdleConnsPerHost <= 0 {
		opts.MaxIdleConnsPerHost = DefaultOptions().MaxIdleConnsPerHost
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = opts.MaxIdleConnsPerHost
	transport.IdleConnTimeout = 90 * time.Second
	transport.DisableCompression = true // raw bytes are written to disk

	return &Client{
		client: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
		opts: opts,
	}
}

// Get performs a single GET request. The status code is not checked.
// The caller must close Response.Body.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrRequest, err)
	}
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       resp.Body,
	}, nil
}

// CloseIdleConnections releases pooled connections.
func (c *Client) CloseIdleConnections() {
	c.client.CloseIdleConnections()
}
