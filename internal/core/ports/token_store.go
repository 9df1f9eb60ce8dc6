package ports

import "context"

// TokenStore is the durable slot holding the bearer token between runs.
// An empty token with a nil error means no credential is stored.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
