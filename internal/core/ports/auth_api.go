package ports

import (
	"context"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

// AuthAPI is the slice of the backend the session store depends on.
type AuthAPI interface {
	// Me resolves the token currently held in the durable slot.
	Me(ctx context.Context) (*domain.User, error)
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthToken, error)
	// Register creates an account. It does not yield a token.
	Register(ctx context.Context, reg domain.Registration) (*domain.User, error)
}
