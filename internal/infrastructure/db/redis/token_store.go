package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/campusjobs/jobboard/internal/core/ports"
)

var _ ports.TokenStore = (*TokenStore)(nil)

// TokenStore keeps the bearer token in Redis so several client processes on
// one machine share a session.
// Key format: <prefix><key>
type TokenStore struct {
	client *redis.Client
	key    string
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client, prefix, key string) *TokenStore {
	return &TokenStore{client: client, key: prefix + key}
}

// Load returns the stored token, or "" when the key does not exist.
func (s *TokenStore) Load(ctx context.Context) (string, error) {
	tok, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("token load: %w", err)
	}
	return tok, nil
}

// Save stores the token without expiry; the backend decides when it lapses.
func (s *TokenStore) Save(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, 0).Err(); err != nil {
		return fmt.Errorf("token save: %w", err)
	}
	return nil
}

func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("token clear: %w", err)
	}
	return nil
}
