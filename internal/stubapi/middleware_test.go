package stubapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

func newAuthFixture(t *testing.T) (*AuthService, string) {
	t.Helper()
	svc := NewAuthService(NewStore(), "secret", time.Hour)
	_, err := svc.Register(context.Background(), domain.Registration{Name: "Alice", Email: "alice@example.com", Password: "pass123", Role: domain.RoleEmployer})
	require.NoError(t, err)
	token, _, err := svc.Login(context.Background(), "alice@example.com", "pass123")
	require.NoError(t, err)
	return svc, token
}

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, header string, setup func(echo.Context)) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	svc, token := newAuthFixture(t)

	var seen *domain.User
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	c := e.NewContext(req, httptest.NewRecorder())

	err := Auth(svc)(func(c echo.Context) error {
		seen, _ = currentUser(c)
		return nil
	})(c)
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, "alice@example.com", seen.Email)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	svc, token := newAuthFixture(t)

	for name, header := range map[string]string{
		"missing header":  "",
		"wrong scheme":    "Token " + token,
		"no token":        "Bearer ",
		"invalid token":   "Bearer not-a-token",
		"garbage token":   "bearer garbage",
		"no space at all": "Bearer",
	} {
		t.Run(name, func(t *testing.T) {
			rec, called := runMiddleware(t, Auth(svc), header, nil)
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			assert.JSONEq(t, `{"detail":{"error":"Not authenticated","detail":"Could not validate credentials","help":"Log in to access this resource"}}`, rec.Body.String())
		})
	}
}

func TestAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	svc, token := newAuthFixture(t)
	rec, called := runMiddleware(t, Auth(svc), "bearer "+token, nil)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_Allows(t *testing.T) {
	rec, called := runMiddleware(t, RequireRole(domain.RoleEmployer, domain.RoleAdmin), "", func(c echo.Context) {
		c.Set(userKey, &domain.User{ID: 1, Role: domain.RoleAdmin})
	})
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_Forbidden(t *testing.T) {
	rec, called := runMiddleware(t, RequireRole(domain.RoleEmployer), "", func(c echo.Context) {
		c.Set(userKey, &domain.User{ID: 1, Role: domain.RoleStudent})
	})
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "available to employer accounts only")
}

func TestRequireRole_WithoutAuth(t *testing.T) {
	rec, called := runMiddleware(t, RequireRole(domain.RoleStudent), "", nil)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
