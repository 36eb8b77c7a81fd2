package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/gymnexus/pkg/config"
	"github.com/dmitrymomot/gymnexus/pkg/httpserver"
)

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the periodic suspension sweep",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		var cfg appConfig
		if err := config.Load(&cfg); err != nil {
			return err
		}
		log := newLogger(cfg.Env, cfg.Name)
		slog.SetDefault(log)

		app, err := newApplication(ctx, cfg, log, serveMigrate)
		if err != nil {
			return err
		}
		defer app.Close()

		g, ctx := errgroup.WithContext(ctx)

		srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
		g.Go(func() error {
			return srv.Run(ctx, app.handler)
		})

		if cfg.SweepEnabled {
			g.Go(func() error {
				if err := app.sweeper.Run(ctx); !errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			})
		}

		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "apply pending database migrations before serving")
}
