// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"context"

	"github.com/SamirRachidZaim/scholar-metrics/internal/scholar"
	"github.com/SamirRachidZaim/scholar-metrics/pkg/types"
)

// ScholarBackend scrapes the Google Scholar profile page. It is the
// primary source: the page shows exactly the three numbers the artifact
// publishes.
type ScholarBackend struct {
	Client *scholar.Client
}

// NewScholarBackend builds a backend with a rate-limited page client
// derived from cfg.
func NewScholarBackend(cfg types.FetchConfig) *ScholarBackend {
	opts := []scholar.ClientOption{}
	if cfg.UserAgent != "" {
		opts = append(opts, scholar.WithUserAgent(cfg.UserAgent))
	}
	if cfg.Cookie != "" {
		opts = append(opts, scholar.WithCookie(cfg.Cookie))
	}
	if cfg.RequestsPerMinute > 0 {
		opts = append(opts, scholar.WithRequestsPerMinute(cfg.RequestsPerMinute))
	}
	if cfg.MaxRetries > 0 {
		opts = append(opts, scholar.WithMaxRetries(cfg.MaxRetries))
	}
	return &ScholarBackend{Client: scholar.NewClient(opts...)}
}

// Name returns the backend identifier.
func (b *ScholarBackend) Name() string { return "google_scholar" }

// Fetch downloads the profile page and converts its summary table to
// Metrics. A 403 surfaces as scholar.ErrBlocked for the fallback chain.
func (b *ScholarBackend) Fetch(ctx context.Context, cfg types.FetchConfig) (types.Metrics, error) {
	summary, err := b.Client.FetchSummary(ctx, cfg.ProfileID)
	if err != nil {
		return types.Metrics{}, err
	}
	return types.Metrics{
		Citations: summary.Citations,
		HIndex:    summary.HIndex,
		I10:       summary.I10,
		Profile:   scholar.ProfileURL(cfg.ProfileID),
	}, nil
}
