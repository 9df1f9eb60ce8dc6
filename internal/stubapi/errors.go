package stubapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

// Problem is the structured failure body: {"detail": {"error", "detail", "help"}}.
type Problem struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
	Help   string `json:"help,omitempty"`
}

// errorResponse is the canonical error envelope for all API errors. Detail
// holds a Problem, a plain string, or a list of validation issues.
type errorResponse struct {
	Detail any `json:"detail"`
}

// HTTPError is returned by handlers to render a specific status and detail.
type HTTPError struct {
	Status int
	Detail any
}

func (e *HTTPError) Error() string { return fmt.Sprintf("%d: %v", e.Status, e.Detail) }

func newProblem(status int, title, detail, help string) *HTTPError {
	return &HTTPError{Status: status, Detail: Problem{Error: title, Detail: detail, Help: help}}
}

func newDetail(status int, msg string) *HTTPError {
	return &HTTPError{Status: status, Detail: msg}
}

var errNotAuthenticated = newProblem(http.StatusUnauthorized,
	"Not authenticated", "Could not validate credentials", "Log in to access this resource")

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders handler-chosen HTTPErrors as-is.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, detail := resolveError(err, log, c)
		if code == http.StatusUnauthorized {
			c.Response().Header().Set("WWW-Authenticate", "Bearer")
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Detail: detail})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status, he.Detail
	}

	var ve validationErrors
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, ve
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var ee *echo.HTTPError
	if errors.As(err, &ee) {
		return ee.Code, fmt.Sprintf("%v", ee.Message)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, Problem{Error: "Invalid credentials", Detail: "Wrong email or password", Help: "Check your email and password"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, Problem{Error: "User already exists", Detail: "An account with this email is already registered", Help: "Use another email or log in"}
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, Problem{Error: "Invalid role", Detail: "Role must be one of: student, employer, admin", Help: "Pick a valid role"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Access to this resource is forbidden"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusBadRequest, "Already exists"
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, "Invalid status"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal Server Error"
}
