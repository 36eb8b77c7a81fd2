package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gymnexus/pkg/config"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Reactivate memberships whose suspension has ended, once",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		var cfg appConfig
		if err := config.Load(&cfg); err != nil {
			return err
		}
		log := newLogger(cfg.Env, cfg.Name)

		app, err := newApplication(ctx, cfg, log, false)
		if err != nil {
			return err
		}
		defer app.Close()

		res, err := app.sweeper.Sweep(ctx)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}
