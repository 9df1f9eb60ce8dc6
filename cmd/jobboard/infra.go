package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusjobs/jobboard/internal/api"
	"github.com/campusjobs/jobboard/internal/core/ports"
	"github.com/campusjobs/jobboard/internal/core/service"
	redisdb "github.com/campusjobs/jobboard/internal/infrastructure/db/redis"
	"github.com/campusjobs/jobboard/internal/infrastructure/tokenstore"
	"github.com/campusjobs/jobboard/internal/pkg/config"
	"github.com/campusjobs/jobboard/pkg/logger"
)

// openTokenStore builds the durable slot named by TOKEN_STORE. The returned
// close function is always non-nil.
func openTokenStore(ctx context.Context, cfg *config.Config) (ports.TokenStore, func() error, error) {
	switch cfg.Tokens.Store {
	case config.TokenStoreRedis:
		client, err := redisdb.Connect(ctx, redisdb.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Timeout:  cfg.Redis.Timeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("token store: %w", err)
		}
		return redisdb.NewTokenStore(client, cfg.Redis.Prefix, cfg.Tokens.Key), client.Close, nil
	case config.TokenStoreMemory:
		return tokenstore.NewMemory(), noopClose, nil
	default:
		return tokenstore.NewFile(cfg.Tokens.File, cfg.Tokens.Key), noopClose, nil
	}
}

func noopClose() error { return nil }

func newCommandContext(ctx context.Context, cfg *config.Config, tokens ports.TokenStore, log zerolog.Logger) (*commandContext, error) {
	gw, err := api.New(api.Options{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout}, tokens, logger.For("api"))
	if err != nil {
		return nil, err
	}
	v := service.NewValidator()
	return &commandContext{
		Ctx:      ctx,
		Log:      log,
		Session:  service.NewSessionStore(gw.Auth(), tokens, logger.For("session")),
		Gateway:  gw,
		Validate: v,
		Apps:     service.NewApplicationService(gw.Applications(), gw.Jobs(), v, 0, logger.For("applications")),
		Depts:    service.NewDepartmentService(gw.Departments(), v),
	}, nil
}
