// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SamirRachidZaim/scholar-metrics/internal/artifact"
	"github.com/SamirRachidZaim/scholar-metrics/pkg/types"
)

const defaultUserAgent = "scholar-metrics/0.1"

// setDefaults registers the config defaults with viper. Config file values
// override these; command flags override both.
func setDefaults() {
	viper.SetDefault("fetch.profile_id", "")
	viper.SetDefault("fetch.enable_scholar", true)
	viper.SetDefault("fetch.enable_semantic_scholar", true)
	viper.SetDefault("fetch.semantic_scholar_author_id", "")
	viper.SetDefault("fetch.timeout", 30*time.Second)
	viper.SetDefault("fetch.user_agent", defaultUserAgent)
	viper.SetDefault("fetch.requests_per_minute", 6.0)
	viper.SetDefault("fetch.max_retries", 3)
	viper.SetDefault("artifact.path", artifact.DefaultPath)
	viper.SetDefault("history.dir", "history")
	viper.SetDefault("history.max_results", 20)
	viper.SetDefault("watch.interval", 24*time.Hour)
	viper.SetDefault("watch.run_timeout", 2*time.Minute)
}

// pipelineConfig assembles the full configuration from viper, credentials,
// and the command's flag overrides.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.PipelineConfig{
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("fetch.timeout"),
				UserAgent: viper.GetString("fetch.user_agent"),
			},
			ProfileID:               viper.GetString("fetch.profile_id"),
			EnableScholar:           viper.GetBool("fetch.enable_scholar"),
			EnableSemanticScholar:   viper.GetBool("fetch.enable_semantic_scholar"),
			SemanticScholarAuthorID: viper.GetString("fetch.semantic_scholar_author_id"),
			RequestsPerMinute:       viper.GetFloat64("fetch.requests_per_minute"),
			MaxRetries:              viper.GetInt("fetch.max_retries"),
		},
		Artifact: types.ArtifactConfig{
			Path: viper.GetString("artifact.path"),
		},
		History: types.HistoryConfig{
			Dir:        viper.GetString("history.dir"),
			MaxResults: viper.GetInt("history.max_results"),
		},
		Watch: types.WatchConfig{
			Interval:   viper.GetDuration("watch.interval"),
			RunTimeout: viper.GetDuration("watch.run_timeout"),
		},
	}

	cfg.Fetch.SemanticScholarAPIKey = loadedSecrets["semantic-scholar-api-key"]
	cfg.Fetch.Cookie = loadedSecrets["scholar-cookie"]

	applyFlagOverrides(cmd, &cfg)

	// The fallback needs an author ID; without one it cannot run.
	if cfg.Fetch.SemanticScholarAuthorID == "" {
		cfg.Fetch.EnableSemanticScholar = false
	}

	return cfg
}

// applyFlagOverrides copies changed flag values into cfg. Commands only
// define the flags they need, so lookups guard for absence.
func applyFlagOverrides(cmd *cobra.Command, cfg *types.PipelineConfig) {
	if f := cmd.Flags().Lookup("user"); f != nil && f.Changed {
		cfg.Fetch.ProfileID = f.Value.String()
	}
	if f := cmd.Flags().Lookup("semantic-author"); f != nil && f.Changed {
		cfg.Fetch.SemanticScholarAuthorID = f.Value.String()
	}
	if f := cmd.Flags().Lookup("timeout"); f != nil && f.Changed {
		if d, err := time.ParseDuration(f.Value.String()); err == nil {
			cfg.Fetch.Timeout = d
		}
	}
	if f := cmd.Flags().Lookup("artifact"); f != nil && f.Changed {
		cfg.Artifact.Path = f.Value.String()
	}
	if f := cmd.Flags().Lookup("history-dir"); f != nil && f.Changed {
		cfg.History.Dir = f.Value.String()
	}
	if f := cmd.Flags().Lookup("interval"); f != nil && f.Changed {
		if d, err := time.ParseDuration(f.Value.String()); err == nil {
			cfg.Watch.Interval = d
		}
	}
}
