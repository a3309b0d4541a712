// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scholar-metrics CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SamirRachidZaim/scholar-metrics/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// secretKeys lists the credentials the CLI knows how to use.
var secretKeys = []string{"semantic-scholar-api-key", "scholar-cookie"}

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the scholar-metrics CLI.
var rootCmd = &cobra.Command{
	Use:   "scholar-metrics",
	Short: "Keep the published citation metrics file up to date",
	Long: `scholar-metrics maintains assets/scholar.json, the citation metrics file
the website reads at page load. It fetches the current counts from the
Google Scholar profile page (falling back to the Semantic Scholar API when
the scrape is blocked), validates them, and replaces the file atomically.

Use fetch for a one-shot update, validate to check a hand-edited file,
show to inspect the current artifact, history to browse past fetches, and
watch to run the update on a schedule.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; absence is the common case.
		godotenv.Load()

		s, err := secrets.Load(".secrets/", secretKeys...)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scholar-metrics.yaml or ~/.config/scholar-metrics/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scholar-metrics")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scholar-metrics"))
		}
	}

	viper.SetEnvPrefix("SCHOLAR_METRICS")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
