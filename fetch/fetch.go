// SPDX-License-Identifier: EPL-2.0

package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"
)

const (
	DefaultTimeout   = 5 * time.Minute
	DefaultUserAgent = "soundbank/1.0"
)

// Opener opens a local path or URL for reading.
type Opener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

// Client reads resources over HTTP(S) or from the local filesystem. A
// location with a scheme and a host is a URL, anything else is a path.
type Client struct {
	http      *http.Client
	userAgent string
}

type Option func(*Client)

// WithHTTPClient replaces the underlying client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithTimeout sets the per-request timeout of the underlying client.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.http.Timeout = d
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(cl *Client) { cl.userAgent = ua }
}

func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// IsURL reports whether s parses with both a scheme and a host.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// Base returns the last path element of a URL or local path, without any
// query string or fragment.
func Base(location string) string {
	if IsURL(location) {
		u, _ := url.Parse(location)
		return path.Base(u.Path)
	}
	return filepath.Base(location)
}

func (c *Client) request(ctx context.Context, method, location string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, location, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, location, err)
	}

	return resp, nil
}

// Available reports whether location can be read: an HTTP HEAD answered with
// 200, or an existing regular file.
func (c *Client) Available(ctx context.Context, location string) bool {
	if location == "" {
		return false
	}

	if !IsURL(location) {
		st, err := os.Stat(location)
		return err == nil && st.Mode().IsRegular()
	}

	resp, err := c.request(ctx, http.MethodHead, location)
	if err != nil {
		return false
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// Open returns the body of a GET that answered 200, or the opened file. The
// caller closes it.
func (c *Client) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if location == "" {
		return nil, ErrEmptyLocation
	}

	if !IsURL(location) {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		st, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w", err)
		}
		if !st.Mode().IsRegular() {
			f.Close()
			return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, location)
		}
		return f, nil
	}

	resp, err := c.request(ctx, http.MethodGet, location)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s: %d", ErrUnexpectedStatus, location, resp.StatusCode)
	}

	return resp.Body, nil
}

// Download copies location into dir/name and returns the written path. dir is
// created when missing; an empty name takes the base of location. A partial
// file is removed when the copy fails.
func (c *Client) Download(ctx context.Context, location, dir, name string) (string, error) {
	if name == "" {
		name = Base(location)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}

	body, err := c.Open(ctx, location)
	if err != nil {
		return "", err
	}
	defer body.Close()

	dst := filepath.Join(dir, name)
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("saving %s: %w", dst, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("closing %s: %w", dst, err)
	}

	return dst, nil
}

// GetJSON decodes the JSON body at location into v.
func (c *Client) GetJSON(ctx context.Context, location string, v any) error {
	body, err := c.Open(ctx, location)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", location, err)
	}

	return nil
}
