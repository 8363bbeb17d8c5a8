package main

import (
	"context"
	"os"

	"github.com/justsurfingit/sales-intake/internal/config"
	"github.com/justsurfingit/sales-intake/internal/database"
	"github.com/justsurfingit/sales-intake/internal/services"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "intakectl",
	Short: "Inspect and export the sales-manager application log",
	Long: `intakectl reads the application log from the configured storage backend
(STORAGE_BACKEND, DATABASE_URL, REDIS_ADDR, STORAGE_KEY; a .env file is honoured)
without going through the HTTP API.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// openLog loads the application log the server would see. The returned func
// closes the storage connection.
func openLog(ctx context.Context) (log *services.ApplicationLog, cfg config.Config, closeFn func() error, err error) {
	cfg = config.Load()
	if err = cfg.Validate(); err != nil {
		return nil, cfg, nil, errors.Wrap(err, "invalid configuration")
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, cfg, nil, err
		}
	}

	store, closeFn, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, cfg, nil, errors.Wrap(err, "failed to open storage")
	}
	return services.LoadApplicationLog(ctx, store, cfg.StorageKey, logger), cfg, closeFn, nil
}
