// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Metrics holds a researcher's citation summary as rendered on a
// Google Scholar profile page.
type Metrics struct {
	// Citations is the total citation count across all publications.
	Citations int `json:"citations" yaml:"citations"`

	// HIndex is the h-index metric.
	HIndex int `json:"hindex" yaml:"hindex"`

	// I10 is the i10-index: publications with at least 10 citations each.
	I10 int `json:"i10" yaml:"i10"`

	// Updated is the time the metrics were fetched, always UTC.
	Updated time.Time `json:"updated" yaml:"updated"`

	// Profile is the public URL of the profile the metrics describe.
	Profile string `json:"profile" yaml:"profile"`

	// Source identifies which backend produced the metrics
	// (e.g. "google_scholar", "semantic_scholar").
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}
