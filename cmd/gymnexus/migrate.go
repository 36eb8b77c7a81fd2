package main

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gymnexus/pkg/config"
	"github.com/dmitrymomot/gymnexus/pkg/pg"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the PostgreSQL schema",
}

func init() {
	migrateCmd.AddCommand(
		migrateStep("up", "Apply all pending migrations", pg.Migrate),
		migrateStep("down", "Roll back the latest migration", pg.Rollback),
		migrateStep("status", "Print applied and pending migrations", pg.Status),
	)
}

type migrateFunc func(ctx context.Context, pool *pgxpool.Pool, cfg pg.Config, log *slog.Logger) error

func migrateStep(use, short string, run migrateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var lc logConfig
			if err := config.Load(&lc); err != nil {
				return err
			}
			var cfg pg.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			log := newLogger(lc.Env, lc.Name)

			pool, err := pg.Connect(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			return run(ctx, pool, cfg, log)
		},
	}
}
