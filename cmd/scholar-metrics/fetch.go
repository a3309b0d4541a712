// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/SamirRachidZaim/scholar-metrics/internal/artifact"
	"github.com/SamirRachidZaim/scholar-metrics/internal/history"
	"github.com/SamirRachidZaim/scholar-metrics/internal/metrics"
	"github.com/SamirRachidZaim/scholar-metrics/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch current citation metrics and update the artifact",
	Long: `Fetch retrieves the citation counts for the configured profile, prints
what changed, replaces the artifact file atomically, and records a history
snapshot. When the Google Scholar page blocks the request the Semantic
Scholar API is tried instead.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("user", "", "Google Scholar user ID (e.g. _cxg7m4AAAAJ)")
	fetchCmd.Flags().String("semantic-author", "", "Semantic Scholar author ID for the fallback source")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	fetchCmd.Flags().String("artifact", "", "artifact file path (default assets/scholar.json)")
	fetchCmd.Flags().String("history-dir", "", "history database directory (default history)")
	fetchCmd.Flags().Bool("dry-run", false, "fetch and print, but do not write the artifact or history")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)
	if cfg.Fetch.ProfileID == "" {
		return fmt.Errorf("profile ID required: pass --user or set fetch.profile_id in the config file")
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	m, err := fetchMetrics(cmd.Context(), cfg, os.Stderr)
	if err != nil {
		return err
	}

	printDelta(os.Stdout, cfg.Artifact.Path, m)

	if dryRun {
		fmt.Fprintln(os.Stdout, "dry run: artifact and history left untouched")
		return nil
	}

	return publish(cmd.Context(), cfg, m)
}

// fetchMetrics runs the backend chain for cfg.
func fetchMetrics(ctx context.Context, cfg types.PipelineConfig, w io.Writer) (types.Metrics, error) {
	backends := metrics.Backends(cfg.Fetch)
	return metrics.Fetch(ctx, backends, cfg.Fetch, w)
}

// publish writes the artifact and records a history snapshot.
func publish(ctx context.Context, cfg types.PipelineConfig, m types.Metrics) error {
	if err := artifact.Write(cfg.Artifact.Path, m); err != nil {
		return err
	}
	fmt.Printf("wrote %s (source: %s)\n", cfg.Artifact.Path, m.Source)

	store, err := history.NewStore(cfg.History)
	if err != nil {
		return fmt.Errorf("opening history store: %w", err)
	}
	defer store.Close()

	if err := store.Record(ctx, m); err != nil {
		return err
	}
	return nil
}

// printDelta compares the fetched metrics against the current artifact, if
// one exists, and prints the movement.
func printDelta(w io.Writer, path string, m types.Metrics) {
	doc, err := artifact.Load(path)
	if err != nil {
		// First fetch, or an unreadable artifact that Write will replace.
		fmt.Fprintf(w, "citations %d, h-index %d, i10-index %d\n", m.Citations, m.HIndex, m.I10)
		return
	}

	old, err := doc.Metrics()
	if err != nil {
		fmt.Fprintf(w, "existing artifact is invalid and will be replaced: %v\n", err)
		return
	}

	fmt.Fprintln(w, artifact.FormatDiff(artifact.Diff(old, m)))
}
