package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	root "yokeair"
	"yokeair/internal/config"
	"yokeair/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateSchema applies the embedded goose migrations.
func migrateSchema(ctx context.Context, db *sql.DB) error {
	migrations, err := fs.Sub(root.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("could not create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	for _, r := range results {
		logger.Info(ctx, "applied migration",
			zap.String("source", r.Source.Path),
			zap.Duration("took", r.Duration))
	}
	if err != nil {
		return fmt.Errorf("could not migrate schema: %w", err)
	}

	return nil
}

// migrateQueue brings the river job tables to the latest version.
func migrateQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version

	current := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if current >= latest {
		return nil
	}

	logger.Info(ctx, "migrating river queue tables", zap.Int("from", current), zap.Int("to", latest))
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{TargetVersion: latest}); err != nil {
		return fmt.Errorf("could not migrate river queue tables: %w", err)
	}

	return nil
}

func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the schema and the job queue tables to the latest version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db := strg.DB.(*sql.DB)
			if err := migrateSchema(ctx, db); err != nil {
				return err
			}

			return migrateQueue(ctx, db)
		},
	}
}
