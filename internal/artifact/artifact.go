// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package artifact reads, validates, and writes the published metrics file
// (assets/scholar.json). The file is consumed by the website at page load,
// so it is always replaced whole: writes go to a temp file in the target
// directory and are renamed into place.
package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SamirRachidZaim/scholar-metrics/pkg/types"
)

// DefaultPath is the artifact location relative to the site root.
const DefaultPath = "assets/scholar.json"

// Document is the wire form of the artifact. Fields are pointers so
// validation can distinguish a missing field from a zero value.
type Document struct {
	Citations *int    `json:"citations"`
	HIndex    *int    `json:"hindex"`
	I10       *int    `json:"i10"`
	Updated   *string `json:"updated"`
	Profile   *string `json:"profile"`
	Source    string  `json:"source,omitempty"`
}

// FromMetrics converts in-memory metrics to the wire form.
func FromMetrics(m types.Metrics) Document {
	updated := m.Updated.UTC().Format(time.RFC3339)
	profile := m.Profile
	return Document{
		Citations: &m.Citations,
		HIndex:    &m.HIndex,
		I10:       &m.I10,
		Updated:   &updated,
		Profile:   &profile,
		Source:    m.Source,
	}
}

// Metrics converts a validated document back to the in-memory form.
// Call Validate first; Metrics returns an error on fields it cannot parse.
func (d Document) Metrics() (types.Metrics, error) {
	if err := Validate(d); err != nil {
		return types.Metrics{}, err
	}
	updated, err := time.Parse(time.RFC3339, *d.Updated)
	if err != nil {
		return types.Metrics{}, fmt.Errorf("parsing updated: %w", err)
	}
	return types.Metrics{
		Citations: *d.Citations,
		HIndex:    *d.HIndex,
		I10:       *d.I10,
		Updated:   updated.UTC(),
		Profile:   *d.Profile,
		Source:    d.Source,
	}, nil
}

// Load reads and strictly decodes the artifact file. Unknown fields and
// mistyped values are errors; validation is the caller's next step.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Decode(data)
}

// Decode strictly decodes artifact JSON.
func Decode(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var d Document
	if err := dec.Decode(&d); err != nil {
		return Document{}, fmt.Errorf("decoding artifact: %w", err)
	}
	return d, nil
}

// Write validates m and replaces the artifact at path atomically. The
// output is 2-space indented JSON with a trailing newline, matching what
// a hand edit produces.
func Write(path string, m types.Metrics) error {
	d := FromMetrics(m)
	if err := Validate(d); err != nil {
		return fmt.Errorf("refusing to write invalid artifact: %w", err)
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding artifact: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	// Temp file in the same directory so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
