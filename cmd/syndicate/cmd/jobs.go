package cmd

import (
	"context"
	"fmt"
	"strconv"

	"vastgoed-sync/internal/app"

	"github.com/spf13/cobra"
)

var scrapePage int

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape one feed page and reconcile it with the store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if scrapePage < 1 {
			return fmt.Errorf("--page must be at least 1")
		}
		return runJob(cmd, func(ctx context.Context, c *app.Container) ([]string, error) {
			return c.Runner.Scrape(ctx, scrapePage)
		})
	},
}

var geocodeCmd = &cobra.Command{
	Use:   "geocode",
	Short: "Fill in missing coordinates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runJob(cmd, func(ctx context.Context, c *app.Container) ([]string, error) {
			return c.Runner.Geocode(ctx)
		})
	},
}

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Mail matching subscribers about newly added listings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runJob(cmd, func(ctx context.Context, c *app.Container) ([]string, error) {
			return c.Runner.Notify(ctx)
		})
	},
}

var publishCmd = &cobra.Command{
	Use:     "publish <marketplace>",
	Short:   "Publish every pending listing to a marketplace",
	Example: "  syndicate publish immovlan",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJob(cmd, func(ctx context.Context, c *app.Container) ([]string, error) {
			return c.Runner.Publish(ctx, args[0])
		})
	},
}

var suspendCmd = &cobra.Command{
	Use:     "suspend <marketplace> <id>",
	Short:   "Take one listing offline on a marketplace",
	Example: "  syndicate suspend spotto 42",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid listing id %q", args[1])
		}
		return runJob(cmd, func(ctx context.Context, c *app.Container) ([]string, error) {
			return c.Runner.Suspend(ctx, args[0], uint(id))
		})
	},
}

var suspendAllCmd = &cobra.Command{
	Use:   "suspend-all <marketplace>",
	Short: "Take every listing offline and mark it for re-publishing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJob(cmd, func(ctx context.Context, c *app.Container) ([]string, error) {
			return c.Runner.SuspendAll(ctx, args[0])
		})
	},
}

var purgeYes bool

var purgeCmd = &cobra.Command{
	Use:   "purge <marketplace>",
	Short: "Suspend every listing and delete the local records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !purgeYes {
			return fmt.Errorf("purge deletes local listings; pass --yes to confirm")
		}
		return runJob(cmd, func(ctx context.Context, c *app.Container) ([]string, error) {
			return c.Runner.Purge(ctx, args[0])
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset <marketplace>",
	Short: "Flag every listing for a full re-publish",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJob(cmd, func(ctx context.Context, c *app.Container) ([]string, error) {
			return c.Runner.Reset(ctx, args[0])
		})
	},
}

func init() {
	scrapeCmd.Flags().IntVar(&scrapePage, "page", 1, "feed page to scrape (1-based)")
	purgeCmd.Flags().BoolVar(&purgeYes, "yes", false, "confirm the deletion")

	rootCmd.AddCommand(scrapeCmd, geocodeCmd, notifyCmd, publishCmd, suspendCmd, suspendAllCmd, purgeCmd, resetCmd)
}
