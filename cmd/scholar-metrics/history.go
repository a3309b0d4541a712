// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SamirRachidZaim/scholar-metrics/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse and export recorded metric snapshots",
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded snapshots, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	snapshots, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshots)
	}

	if len(snapshots) == 0 {
		fmt.Println("No snapshots recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-10s  %-8s  %-10s  %s\n",
		"Fetched", "Citations", "h-index", "i10-index", "Source")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 64))
	for _, s := range snapshots {
		fmt.Fprintf(os.Stdout, "%-20s  %-10d  %-8d  %-10d  %s\n",
			s.FetchedAt.Format("2006-01-02 15:04"), s.Citations, s.HIndex, s.I10, s.Source)
	}
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all snapshots as JSON or YAML",
	RunE:  runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	if output == "" || output == "-" {
		return store.Export(cmd.Context(), os.Stdout, format)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()

	if err := store.Export(cmd.Context(), f, format); err != nil {
		return err
	}
	fmt.Printf("exported history to %s\n", output)
	return nil
}

func openHistory(cmd *cobra.Command) (*history.Store, error) {
	cfg := pipelineConfig(cmd)
	store, err := history.NewStore(cfg.History)
	if err != nil {
		return nil, fmt.Errorf("opening history store: %w", err)
	}
	return store, nil
}

func init() {
	historyListCmd.Flags().Int("limit", 0, "maximum snapshots to list (default 20)")
	historyListCmd.Flags().Bool("json", false, "output as JSON")
	historyListCmd.Flags().String("history-dir", "", "history database directory (default history)")

	historyExportCmd.Flags().String("format", "json", "export format: json or yaml")
	historyExportCmd.Flags().String("output", "", "output file (default stdout)")
	historyExportCmd.Flags().String("history-dir", "", "history database directory (default history)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}
