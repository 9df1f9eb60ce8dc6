// Package api is the client's single point of contact with the backend. The
// Gateway attaches the bearer token, normalizes every failure into an *Error
// and hosts the typed resource clients.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusjobs/jobboard/internal/api/metrics"
	"github.com/campusjobs/jobboard/internal/api/middleware"
	"github.com/campusjobs/jobboard/internal/core/ports"
)

const (
	defaultTimeout   = 30 * time.Second
	maxResponseBytes = 10 << 20

	myDepartmentPath = "/departments/my-department"
)

// Options configures a Gateway.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// Transport is wrapped by the bearer middleware. Defaults to
	// http.DefaultTransport.
	Transport http.RoundTripper
}

// Gateway issues every backend request. It is safe for concurrent use.
type Gateway struct {
	baseURL string
	client  *http.Client
	tokens  ports.TokenStore
	log     zerolog.Logger
}

// New builds a Gateway that reads the bearer token from tokens before each
// request and clears it on any 401.
func New(opts Options, tokens ports.TokenStore, log zerolog.Logger) (*Gateway, error) {
	u, err := url.Parse(opts.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api: invalid base URL %q", opts.BaseURL)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Gateway{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: &middleware.BearerTransport{Tokens: tokens, Host: u.Host, Base: opts.Transport},
		},
		tokens: tokens,
		log:    log,
	}, nil
}

// BaseURL is the backend root without a trailing slash.
func (g *Gateway) BaseURL() string { return g.baseURL }

func (g *Gateway) Auth() *AuthClient                       { return &AuthClient{g: g} }
func (g *Gateway) Jobs() *JobsClient                       { return &JobsClient{g: g} }
func (g *Gateway) Applications() *ApplicationsClient       { return &ApplicationsClient{g: g} }
func (g *Gateway) Departments() *DepartmentsClient         { return &DepartmentsClient{g: g} }
func (g *Gateway) Reviews() *ReviewsClient                 { return &ReviewsClient{g: g} }
func (g *Gateway) EmployerReviews() *EmployerReviewsClient { return &EmployerReviewsClient{g: g} }

func (g *Gateway) get(ctx context.Context, path string, query url.Values, out any) error {
	return g.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (g *Gateway) delete(ctx context.Context, path string) error {
	return g.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

// sendJSON encodes in as the request body.
func (g *Gateway) sendJSON(ctx context.Context, method, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		g.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("api: encode request body")
		metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeDispatch).Inc()
		return &Error{Kind: KindDispatch, Message: MessageDispatch}
	}
	return g.do(ctx, method, path, nil, bytes.NewReader(body), "application/json", out)
}

// upload posts r as a multipart form with a single file field.
func (g *Gateway) upload(ctx context.Context, path, field, fileName string, r io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, fileName)
	if err == nil {
		_, err = io.Copy(part, r)
	}
	if err == nil {
		err = mw.Close()
	}
	if err != nil {
		g.log.Debug().Err(err).Str("path", path).Msg("api: build multipart body")
		metrics.RequestsTotal.WithLabelValues(http.MethodPost, metrics.OutcomeDispatch).Inc()
		return &Error{Kind: KindDispatch, Message: MessageDispatch}
	}
	return g.do(ctx, http.MethodPost, path, nil, &buf, mw.FormDataContentType(), out)
}

func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return g.fail(method, path, metrics.OutcomeDispatch, &Error{Kind: KindDispatch, Message: MessageDispatch}, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		if errors.Is(err, middleware.ErrTokenUnavailable) {
			return g.fail(method, path, metrics.OutcomeDispatch, &Error{Kind: KindDispatch, Message: MessageDispatch}, err)
		}
		return g.fail(method, path, metrics.OutcomeNoResponse, &Error{Kind: KindNoResponse, Message: MessageNoResponse}, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		return g.fail(method, path, metrics.OutcomeNoResponse, &Error{Kind: KindNoResponse, Status: resp.StatusCode, Message: MessageNoResponse}, err)
	}

	g.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api: response")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return g.decode(method, path, raw, out)
	}

	if resp.StatusCode == http.StatusNotFound && method == http.MethodGet && path == myDepartmentPath {
		metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeEmpty).Inc()
		return nil
	}

	if resp.StatusCode == http.StatusUnauthorized {
		g.clearToken(ctx)
	}

	metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeBackend).Inc()
	return backendError(resp.StatusCode, raw)
}

func (g *Gateway) decode(method, path string, raw []byte, out any) error {
	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			g.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("api: undecodable success body")
			metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeBackend).Inc()
			return &Error{Kind: KindBackend, Message: MessageGeneric}
		}
	}
	metrics.RequestsTotal.WithLabelValues(method, metrics.OutcomeSuccess).Inc()
	return nil
}

// clearToken drops the durable credential. It runs detached from ctx so a
// cancelled caller cannot leave a rejected token behind.
func (g *Gateway) clearToken(ctx context.Context) {
	if err := g.tokens.Clear(context.WithoutCancel(ctx)); err != nil {
		g.log.Error().Err(err).Msg("api: clearing rejected token failed")
		return
	}
	metrics.TokenClearsTotal.Inc()
	g.log.Warn().Msg("api: 401 received, persisted token cleared")
}

func (g *Gateway) fail(method, path, outcome string, apiErr *Error, cause error) error {
	metrics.RequestsTotal.WithLabelValues(method, outcome).Inc()
	g.log.Debug().Err(cause).Str("method", method).Str("path", path).Str("kind", apiErr.Kind.String()).Msg("api: request failed")
	return apiErr
}
