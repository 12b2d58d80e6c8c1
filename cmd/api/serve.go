package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sangkips/billdesk-api/internal/app"
	applog "github.com/sangkips/billdesk-api/internal/logger"
	"github.com/sangkips/billdesk-api/internal/infrastructure/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := applog.WithComponent("server")

	entities, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := entities.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close store")
		}
	}()

	if err := entities.Idempotency().DeleteExpired(ctx, time.Now()); err != nil {
		log.Warn().Err(err).Msg("failed to purge expired idempotency keys")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: app.NewRouter(cfg, entities),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("app", cfg.App.Name).
			Str("env", cfg.App.Env).
			Str("port", cfg.App.Port).
			Str("store", cfg.Store.Backend).
			Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
