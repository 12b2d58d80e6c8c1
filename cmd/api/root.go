package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/billdesk-api/internal/config"
	applog "github.com/sangkips/billdesk-api/internal/logger"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "billdesk-api",
	Short: "Billing administration API for small businesses",
	Long: `billdesk-api serves clients, bills, payments, quotations, the service
catalog and business settings over HTTP.

Without a subcommand it starts the server.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if err := applog.Setup(applog.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}); err != nil {
			return fmt.Errorf("invalid log configuration: %w", err)
		}
		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log := applog.WithComponent("cmd")
		log.Error().Err(err).Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}
