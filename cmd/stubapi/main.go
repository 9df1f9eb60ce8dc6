// Command stubapi serves an in-memory job board backend for local
// development of the jobboard client.
//
//	@title						Job Board stub API
//	@version					1.0
//	@description				In-memory backend for the job board client.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusjobs/jobboard/internal/pkg/config"
	"github.com/campusjobs/jobboard/internal/stubapi"
	"github.com/campusjobs/jobboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx, ".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, App: "stubapi"})

	store := stubapi.NewStore()
	auth := stubapi.NewAuthService(store, cfg.Stub.JWTSecret, cfg.Stub.TokenTTL)
	e := stubapi.NewRouter(stubapi.Deps{Store: store, Auth: auth, Log: log})

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Stub.Port),
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("stub api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
