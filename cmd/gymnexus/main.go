package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gymnexus",
	Short: "Multi-tenant gym platform: tenant resolution, routing and suspension sweeps",
	Long: `gymnexus serves the tenant-scoped API of the gym platform.

Configuration is read from the environment and an optional .env file.
Set FIXTURES_PATH to run against YAML fixtures instead of PostgreSQL.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, sweepCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
