package api

import (
	"context"
	"net/http"

	"github.com/campusjobs/jobboard/internal/core/domain"
	"github.com/campusjobs/jobboard/internal/core/ports"
)

var _ ports.AuthAPI = (*AuthClient)(nil)

// AuthClient covers /auth.
type AuthClient struct{ g *Gateway }

// Me resolves the token currently in the durable slot. A success response
// without a user is a backend failure.
func (c *AuthClient) Me(ctx context.Context) (*domain.User, error) {
	var u *domain.User
	if err := c.g.get(ctx, "/auth/me", nil, &u); err != nil {
		return nil, err
	}
	if u == nil {
		c.g.log.Warn().Msg("api: /auth/me returned no user")
		return nil, &Error{Kind: KindBackend, Message: MessageGeneric}
	}
	return u, nil
}

func (c *AuthClient) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthToken, error) {
	var tok domain.AuthToken
	if err := c.g.sendJSON(ctx, http.MethodPost, "/auth/login", creds, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

func (c *AuthClient) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	var u domain.User
	if err := c.g.sendJSON(ctx, http.MethodPost, "/auth/register", reg, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
