// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SamirRachidZaim/scholar-metrics/internal/schedule"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Fetch on a schedule until interrupted",
	Long: `Watch runs the fetch job immediately and then on every interval
(default 24h), updating the artifact and history each time. A failed run
is logged and the schedule continues. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("user", "", "Google Scholar user ID (e.g. _cxg7m4AAAAJ)")
	watchCmd.Flags().String("semantic-author", "", "Semantic Scholar author ID for the fallback source")
	watchCmd.Flags().Duration("interval", 0, "time between fetch runs (default 24h)")
	watchCmd.Flags().String("artifact", "", "artifact file path (default assets/scholar.json)")
	watchCmd.Flags().String("history-dir", "", "history database directory (default history)")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)
	if cfg.Fetch.ProfileID == "" {
		return fmt.Errorf("profile ID required: pass --user or set fetch.profile_id in the config file")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	job := func(ctx context.Context) error {
		m, err := fetchMetrics(ctx, cfg, os.Stderr)
		if err != nil {
			return err
		}
		return publish(ctx, cfg, m)
	}

	runner := schedule.NewRunner(cfg.Watch.Interval, cfg.Watch.RunTimeout, job, os.Stderr)
	return runner.Run(ctx)
}
