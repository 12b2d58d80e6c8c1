package main

import (
	"fmt"

	"github.com/sangkips/billdesk-api/internal/config"
	applog "github.com/sangkips/billdesk-api/internal/logger"
	"github.com/sangkips/billdesk-api/internal/infrastructure/database"
	"github.com/sangkips/billdesk-api/internal/infrastructure/repository"
	"github.com/sangkips/billdesk-api/internal/infrastructure/seed"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the postgres schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openPostgres(cfg)
		if err != nil {
			return err
		}
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log := applog.WithComponent("migrate")
		log.Info().Msg("migrations applied")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo dataset into postgres",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openPostgres(cfg)
		if err != nil {
			return err
		}
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		data, err := seed.Default()
		if err != nil {
			return err
		}
		store := repository.NewStore(db)
		defer store.Close()

		res, err := seed.Apply(cmd.Context(), store, data)
		if err != nil {
			return err
		}
		log := applog.WithComponent("seed")
		log.Info().
			Int("clients", res.Clients).
			Int("bills", res.Bills).
			Int("payments", res.Payments).
			Int("quotations", res.Quotations).
			Int("services", res.Services).
			Msg("seed data applied")
		return nil
	},
}

func openPostgres(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
