package ports

import (
	"context"
	"net/url"
)

// Call describes one logical API call for the request pipeline.
type Call struct {
	Method string
	Path   string // server-relative, e.g. "/drinks/"
	Query  url.Values
	Body   any
	// SkipAuth marks operations that must not carry a bearer token
	// (login, register, token refresh).
	SkipAuth bool
}

// Requester executes a Call and decodes a 2xx JSON body into out (ignored
// when out is nil). Implementations classify failures into the domain error
// taxonomy and perform at most one transparent re-authentication retry.
type Requester interface {
	Do(ctx context.Context, call Call, out any) error
}
