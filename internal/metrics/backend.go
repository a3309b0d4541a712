// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics fetches citation metrics from configured sources.
//
// Sources implement the Backend interface. Fetch tries them in order and
// falls through on failure, so a scrape block on the primary source
// degrades to the fallback API instead of aborting the run.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SamirRachidZaim/scholar-metrics/internal/scholar"
	"github.com/SamirRachidZaim/scholar-metrics/pkg/types"
)

// Backend fetches citation metrics from a single source.
type Backend interface {
	Name() string
	Fetch(ctx context.Context, cfg types.FetchConfig) (types.Metrics, error)
}

// Fetch tries each backend in order and returns the first successful
// result, stamped with the fetch time and the producing source. Backend
// failures are reported to w and the next backend is tried; the returned
// error is non-nil only when every backend failed.
func Fetch(ctx context.Context, backends []Backend, cfg types.FetchConfig, w io.Writer) (types.Metrics, error) {
	if len(backends) == 0 {
		return types.Metrics{}, fmt.Errorf("no metrics backends configured")
	}

	var failures []string
	for _, b := range backends {
		m, err := b.Fetch(ctx, cfg)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return types.Metrics{}, err
			}
			if errors.Is(err, scholar.ErrBlocked) {
				fmt.Fprintf(w, "warning: %s blocked the request, trying next source\n", b.Name())
			} else {
				fmt.Fprintf(w, "warning: %s failed: %v\n", b.Name(), err)
			}
			failures = append(failures, fmt.Sprintf("%s: %v", b.Name(), err))
			continue
		}

		m.Updated = time.Now().UTC().Truncate(time.Second)
		m.Source = b.Name()
		if m.Profile == "" {
			m.Profile = scholar.ProfileURL(cfg.ProfileID)
		}
		return m, nil
	}

	return types.Metrics{}, fmt.Errorf("all metrics sources failed: %s", strings.Join(failures, "; "))
}

// Backends builds the backend chain from configuration, primary source
// first.
func Backends(cfg types.FetchConfig) []Backend {
	var backends []Backend
	if cfg.EnableScholar {
		backends = append(backends, NewScholarBackend(cfg))
	}
	if cfg.EnableSemanticScholar {
		backends = append(backends, &SemanticScholarBackend{APIKey: cfg.SemanticScholarAPIKey})
	}
	return backends
}
