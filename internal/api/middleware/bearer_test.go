package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceStore struct {
	token string
	err   error
}

func (s *sliceStore) Load(context.Context) (string, error)     { return s.token, s.err }
func (s *sliceStore) Save(_ context.Context, tok string) error { s.token = tok; return nil }
func (s *sliceStore) Clear(context.Context) error              { s.token = ""; return nil }

func captureAuth(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, ok := r.Header["Authorization"]
		if !ok {
			seen = append(seen, "<absent>")
		} else {
			seen = append(seen, v[0])
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestBearerTransport_AttachesToken(t *testing.T) {
	srv, seen := captureAuth(t)
	store := &sliceStore{token: "abc"}
	client := &http.Client{Transport: &BearerTransport{Tokens: store}}

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{"Bearer abc"}, *seen)
	assert.Empty(t, req.Header.Get("Authorization"), "caller's request must not be mutated")
}

func TestBearerTransport_OmitsHeaderWhenEmpty(t *testing.T) {
	srv, seen := captureAuth(t)
	client := &http.Client{Transport: &BearerTransport{Tokens: &sliceStore{}}}

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{"<absent>"}, *seen)
}

func TestBearerTransport_ReadsSlotPerRequest(t *testing.T) {
	srv, seen := captureAuth(t)
	store := &sliceStore{token: "first"}
	client := &http.Client{Transport: &BearerTransport{Tokens: store}}

	for _, next := range []string{"second", ""} {
		resp, err := client.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()
		store.token = next
	}
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{"Bearer first", "Bearer second", "<absent>"}, *seen)
}

func TestBearerTransport_StoreFailure(t *testing.T) {
	srv, seen := captureAuth(t)
	client := &http.Client{Transport: &BearerTransport{Tokens: &sliceStore{err: errors.New("disk gone")}}}

	_, err := client.Get(srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenUnavailable)
	assert.Empty(t, *seen, "request must not be sent")
}

func hostOf(t *testing.T, raw string) string {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u.Host
}

func TestBearerTransport_RedirectToOtherHostDropsToken(t *testing.T) {
	foreign, foreignSeen := captureAuth(t)
	var apiSeen []string
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiSeen = append(apiSeen, r.Header.Get("Authorization"))
		http.Redirect(w, r, foreign.URL+"/collect", http.StatusFound)
	}))
	t.Cleanup(apiSrv.Close)

	client := &http.Client{Transport: &BearerTransport{
		Tokens: &sliceStore{token: "secret-token"},
		Host:   hostOf(t, apiSrv.URL),
	}}
	resp, err := client.Get(apiSrv.URL + "/auth/me")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{"Bearer secret-token"}, apiSeen)
	assert.Equal(t, []string{"<absent>"}, *foreignSeen)
}

func TestBearerTransport_RedirectOnSameHostKeepsToken(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.Path+" "+r.Header.Get("Authorization"))
		if r.URL.Path == "/jobs" {
			http.Redirect(w, r, "/jobs/", http.StatusTemporaryRedirect)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	client := &http.Client{Transport: &BearerTransport{Tokens: &sliceStore{token: "abc"}, Host: hostOf(t, srv.URL)}}
	resp, err := client.Get(srv.URL + "/jobs")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{"/jobs Bearer abc", "/jobs/ Bearer abc"}, seen)
}
