// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SamirRachidZaim/scholar-metrics/internal/artifact"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate an artifact file",
	Long: `Validate checks an artifact file against the format rules: citations,
hindex, and i10 must be non-negative integers, updated must be an ISO 8601
UTC timestamp, and profile must be an absolute URL. Without an argument the
configured artifact path is checked.

Run this after editing assets/scholar.json by hand.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().String("artifact", "", "artifact file path (default assets/scholar.json)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := pipelineConfig(cmd).Artifact.Path
	if len(args) == 1 {
		path = args[0]
	}

	if err := artifact.ValidateFile(path); err != nil {
		return err
	}
	fmt.Printf("%s is valid\n", path)
	return nil
}
