// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SamirRachidZaim/scholar-metrics/internal/artifact"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current artifact",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().String("artifact", "", "artifact file path (default assets/scholar.json)")
	showCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	path := pipelineConfig(cmd).Artifact.Path

	doc, err := artifact.Load(path)
	if err != nil {
		return err
	}
	m, err := doc.Metrics()
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(artifact.FromMetrics(m))
	}

	fmt.Printf("Citations:  %d\n", m.Citations)
	fmt.Printf("h-index:    %d\n", m.HIndex)
	fmt.Printf("i10-index:  %d\n", m.I10)
	fmt.Printf("Updated:    %s\n", m.Updated.Format("2006-01-02 15:04 UTC"))
	fmt.Printf("Profile:    %s\n", m.Profile)
	if m.Source != "" {
		fmt.Printf("Source:     %s\n", m.Source)
	}
	return nil
}
