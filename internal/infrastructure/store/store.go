// Package store opens the Entity Store backend selected in configuration.
package store

import (
	"context"
	"fmt"

	"github.com/sangkips/billdesk-api/internal/config"
	domainRepo "github.com/sangkips/billdesk-api/internal/domain/repository"
	applog "github.com/sangkips/billdesk-api/internal/logger"
	"github.com/sangkips/billdesk-api/internal/infrastructure/database"
	"github.com/sangkips/billdesk-api/internal/infrastructure/memory"
	"github.com/sangkips/billdesk-api/internal/infrastructure/repository"
	"github.com/sangkips/billdesk-api/internal/infrastructure/seed"
)

// Open creates the backend named by cfg.Store.Backend
func Open(ctx context.Context, cfg *config.Config) (domainRepo.Store, error) {
	log := applog.WithComponent("store")

	switch cfg.Store.Backend {
	case config.StoreBackendMemory, "":
		s := memory.New(memory.WithLatency(cfg.Store.Latency))
		if cfg.Store.Seed {
			data, err := seed.Default()
			if err != nil {
				return nil, err
			}
			res, err := seed.Apply(ctx, s, data)
			if err != nil {
				return nil, fmt.Errorf("failed to seed memory store: %w", err)
			}
			log.Info().
				Int("clients", res.Clients).
				Int("bills", res.Bills).
				Int("payments", res.Payments).
				Msg("seeded memory store")
		}
		log.Info().Dur("latency", cfg.Store.Latency).Msg("using memory backend")
		return s, nil

	case config.StoreBackendPostgres:
		db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info().Msg("using postgres backend")
		return repository.NewStore(db), nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %q", cfg.Store.Backend)
	}
}
