// Package platform wraps the Giro Certo REST API with one typed method per
// operation. Each method pins a single request/response contract; shape
// drift upstream is a breaking change to surface, not something to probe
// around at runtime.
package platform

import (
	"context"
	"net/url"
	"strconv"
)

// API is the gateway surface the wrappers are built on.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
	GetRaw(ctx context.Context, path string) ([]byte, string, error)
}

// Client groups the endpoint wrappers over a session-bound gateway client.
type Client struct {
	api API
}

func NewClient(api API) *Client {
	return &Client{api: api}
}

// setIf adds a query parameter only when the value is set; unset dimensions
// never appear in the query string.
func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setBoolIf(v url.Values, key string, value *bool) {
	if value != nil {
		v.Set(key, strconv.FormatBool(*value))
	}
}

func setLimit(v url.Values, limit int) {
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
}

func encode(path string, v url.Values) string {
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}
