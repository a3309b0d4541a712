// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"
)

// ExportFile is the serialized form of a history export.
type ExportFile struct {
	Snapshots []Snapshot    `json:"snapshots" yaml:"snapshots"`
	Summary   ExportSummary `json:"summary" yaml:"summary"`
}

// ExportSummary holds export statistics and a timestamp.
type ExportSummary struct {
	Total       int       `json:"total" yaml:"total"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

// Export writes every snapshot (newest first) to w in the given format,
// "json" or "yaml".
func (s *Store) Export(ctx context.Context, w io.Writer, format string) error {
	count, err := s.Count(ctx)
	if err != nil {
		return err
	}

	snapshots, err := s.List(ctx, count)
	if err != nil {
		return err
	}

	ef := ExportFile{
		Snapshots: snapshots,
		Summary: ExportSummary{
			Total:       len(snapshots),
			GeneratedAt: time.Now().UTC(),
		},
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ef)
	case "yaml":
		data, err := yaml.Marshal(&ef)
		if err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown export format %q (want json or yaml)", format)
	}
}
