package stubapi

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

const userKey = "user"

// Auth validates the bearer token and injects the resolved user into context.
func Auth(auth *AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return errNotAuthenticated
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
				return errNotAuthenticated
			}

			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return errNotAuthenticated
			}

			c.Set(userKey, user)
			return next(c)
		}
	}
}

// RequireRole enforces role-based access control. It must run after Auth.
func RequireRole(allowed ...domain.Role) echo.MiddlewareFunc {
	names := make([]string, len(allowed))
	for i, r := range allowed {
		names[i] = string(r)
	}
	detail := fmt.Sprintf("This resource is available to %s accounts only", strings.Join(names, ", "))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := currentUser(c)
			if err != nil {
				return err
			}
			if !slices.Contains(allowed, user.Role) {
				return newProblem(http.StatusForbidden, "Access denied", detail, "Log in with an account of the right role")
			}
			return next(c)
		}
	}
}

// currentUser returns the user injected by Auth. Its absence means the route
// was registered without the middleware, so it is reported as unauthenticated.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(userKey).(*domain.User)
	if user == nil {
		return nil, errNotAuthenticated
	}
	return user, nil
}
