// Package main is the yokeair command: the API server with its workers,
// database migrations and a token helper for local testing.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"yokeair/internal/config"
	"yokeair/pkg/logger"
	"yokeair/pkg/storage/postgres"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	db := cfg.Database
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           db.Username,
		Password:           db.Password,
		Host:               db.Host,
		Port:               db.Port,
		Database:           db.DatabaseName,
		SslMode:            db.SslMode,
		ConnMaxLifetime:    db.ConnMaxLifetime,
		ConnMaxIdleTime:    db.ConnMaxIdleTime,
		MaxOpenConnections: db.MaxOpenConnections,
		MaxIdleConnections: db.MaxIdleConnections,
		StatementTimeout:   db.StatementTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// loadConfig reads .env (optional, real environment variables win) and the
// YAML config, then sets up the process logger.
func loadConfig(path string, into *config.Config) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load .env file: %w", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	*into = *cfg

	logger.Setup(cfg.Environment, cfg.LogLevel)

	return nil
}

func main() {
	// filled by the root PersistentPreRunE before any subcommand runs
	cfg := &config.Config{}

	var configPath string
	rootCmd := &cobra.Command{
		Use:          "yokeair",
		Short:        "Real-estate listing marketplace",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return loadConfig(configPath, cfg)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "config file path")

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		JWTCommand(cfg),
	)

	ctx := context.Background()
	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	err := rootCmd.ExecuteContext(ctx)
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
