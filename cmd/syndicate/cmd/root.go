// Package cmd holds the syndicate commands. Each one runs a single batch job
// against the configured database and prints its log lines.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vastgoed-sync/internal/app"
	"vastgoed-sync/internal/config"
	"vastgoed-sync/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "syndicate",
	Short:         "Sync D&A Vastgoed listings to marketplaces and subscribers",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// jobFunc is one batch job run against a built container.
type jobFunc func(ctx context.Context, c *app.Container) ([]string, error)

// runJob loads config, builds the container, runs fn and prints its lines.
// Ctrl-C cancels the job between items.
func runJob(cmd *cobra.Command, fn jobFunc) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.Env)

	c, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lines, err := fn(ctx, c)
	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return err
}
