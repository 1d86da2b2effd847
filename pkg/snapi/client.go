// Package snapi is a typed client for the social-network web API.
package snapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"resty.dev/v3"

	"socialite/internal/core"
)

const apiPrefix = "/api/v1"

// CookieSource supplies the ambient credential cookies attached to
// every API request, the way a browser does in withCredentials mode.
type CookieSource interface {
	Cookies() []*http.Cookie
}

type Client struct {
	Config  *core.Config
	Cookies CookieSource

	client *resty.Client
}

type messageResponse struct {
	Message string `json:"message"`
}

func (c *Client) Init(_ context.Context) error {
	cfg := DefaultConfig

	if cfg.TransportSettings != nil {
		c.client = resty.NewWithTransportSettings(cfg.TransportSettings)
	} else {
		c.client = resty.New()
	}
	c.client.SetBaseURL(strings.TrimRight(c.Config.APIServer, "/") + apiPrefix)

	for _, m := range cfg.RequestMiddlewares {
		c.client.AddRequestMiddleware(m)
	}
	for _, m := range cfg.ResponseMiddlewares {
		c.client.AddResponseMiddleware(m)
	}

	return nil
}

func (c *Client) Shutdown(_ context.Context) error {
	return c.client.Close()
}

func (c *Client) r(ctx context.Context) *resty.Request {
	req := c.client.R().WithContext(ctx).SetError(&messageResponse{})
	if c.Cookies != nil {
		req.SetCookies(c.Cookies.Cookies())
	}
	return req
}

// check folds a transport error and a non-2xx response into a single
// error, keeping the server's message field when it sent one.
func (c *Client) check(res *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if res.IsError() {
		if msg, ok := res.Error().(*messageResponse); ok && msg.Message != "" {
			return fmt.Errorf("api: %s: %s", res.Status(), msg.Message)
		}
		return fmt.Errorf("api: unexpected status %s", res.Status())
	}
	return nil
}
