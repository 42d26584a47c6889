/*
Copyright © 2026 The Cosmos Authors
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phukemrunal322-hue/cosmos-sub003/internal/config"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/status"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/ui"
	"github.com/spf13/cobra"
)

// watchCmd follows the config file and reports status option changes
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload status options whenever the config file changes",
	Long: `Watch the config file and swap in the new status options each time it is
saved. Every reload prints the options now in effect. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		path := configFilePath()
		out := cmd.OutOrStdout()
		holder := status.NewCatalogHolder(status.NewCatalog(config.LoadStatusOptions()))
		w, err := config.NewCatalogWatcher(path, holder,
			config.WithLogger(slog.Default()),
			config.OnSwap(func(c *status.Catalog) {
				fmt.Fprintf(out, "%s %s\n", ui.Icon("↻", ui.StyleSuccess), strings.Join(c.Labels(), ", "))
			}),
		)
		if err != nil {
			return configError(fmt.Errorf("watch %s: %w", path, err))
		}

		fmt.Fprintf(out, "Watching %s (%d status options)\n", path, holder.Load().Len())
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
