package middleware

import (
	"slices"

	"github.com/campusjobs/jobboard/internal/core/domain"
	"github.com/campusjobs/jobboard/internal/core/service"
)

// Decision is a guard verdict for one view or command.
type Decision int

const (
	// Wait means the session is still resolving; decide again later.
	Wait Decision = iota
	Allow
	RedirectLogin
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Wait:
		return "wait"
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// SessionReader is satisfied by *service.SessionStore.
type SessionReader interface {
	Snapshot() service.Session
}

// Guard decides whether the holder of a session may proceed.
type Guard func(SessionReader) Decision

// Public lets everyone through once the session has resolved.
func Public() Guard {
	return func(s SessionReader) Decision {
		if s.Snapshot().Loading {
			return Wait
		}
		return Allow
	}
}

// RequireAuth admits any authenticated session.
func RequireAuth() Guard {
	return RequireRole()
}

// RequireRole admits authenticated sessions whose role is listed. With no
// roles it behaves like RequireAuth.
func RequireRole(roles ...domain.Role) Guard {
	allowed := slices.Clone(roles)
	return func(s SessionReader) Decision {
		snap := s.Snapshot()
		switch {
		case snap.Loading:
			return Wait
		case !snap.IsAuthenticated():
			return RedirectLogin
		case len(allowed) > 0 && !slices.Contains(allowed, snap.User.Role):
			return Forbidden
		}
		return Allow
	}
}
