package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fallbackTimeout bounds the connect ping when Options.Timeout is unset.
const fallbackTimeout = 3 * time.Second

// Options addresses the Redis instance that backs the session slot.
type Options struct {
	Addr     string
	Password string
	DB       int
	// Timeout bounds the initial ping and every later command, so a dead
	// server fails a CLI run instead of hanging it.
	Timeout time.Duration
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return fallbackTimeout
	}
	return o.Timeout
}

// Connect dials Redis and pings it once. The client is closed again when the
// ping fails.
func Connect(ctx context.Context, opts Options) (*redis.Client, error) {
	timeout := opts.timeout()
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: connect %s: %w", opts.Addr, err)
	}
	return client, nil
}
