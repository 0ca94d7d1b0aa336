// internal/common/http/client.go
package http

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// Client is a thin wrapper around http.Client carrying a cookie jar so
// the credential cookie set at login rides on every later request.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

func (c *Client) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	return c.httpClient.Do(req)
}

// ClearCookies replaces the jar, dropping the credential cookie. Used
// on logout so a later request cannot ride a stale session.
func (c *Client) ClearCookies() {
	jar, _ := cookiejar.New(nil)
	c.httpClient.Jar = jar
}
