// Package middleware holds the client-side request and route middleware: the
// transport that attaches the bearer token and the guards that gate commands
// on the session.
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/campusjobs/jobboard/internal/core/ports"
)

// ErrTokenUnavailable wraps failures reading the durable slot.
var ErrTokenUnavailable = errors.New("bearer: token unavailable")

// BearerTransport reads the durable slot before every request and sets
// "Authorization: Bearer <token>" when it holds one. With an empty slot the
// header is left off entirely.
type BearerTransport struct {
	Tokens ports.TokenStore
	// Host restricts the header to requests for this host[:port]. Requests
	// to any other host, such as a redirect target, go out without it. Empty
	// means every host.
	Host string
	// Base defaults to http.DefaultTransport.
	Base http.RoundTripper
}

func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Host != "" && !strings.EqualFold(req.URL.Host, t.Host) {
		return t.base().RoundTrip(req)
	}

	token, err := t.Tokens.Load(req.Context())
	if err != nil {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenUnavailable, err)
	}
	if token == "" {
		return t.base().RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	authed := req.Clone(req.Context())
	authed.Header.Set("Authorization", "Bearer "+token)
	return t.base().RoundTrip(authed)
}

func (t *BearerTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
