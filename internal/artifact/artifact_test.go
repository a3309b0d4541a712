// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package artifact

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamirRachidZaim/scholar-metrics/pkg/types"
)

func sampleMetrics() types.Metrics {
	return types.Metrics{
		Citations: 204,
		HIndex:    9,
		I10:       9,
		Updated:   time.Date(2026, 1, 21, 0, 0, 0, 0, time.UTC),
		Profile:   "https://scholar.google.com/citations?user=_cxg7m4AAAAJ&hl=en",
		Source:    "google_scholar",
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets", "scholar.json")

	require.NoError(t, Write(path, sampleMetrics()))

	d, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Validate(d))

	m, err := d.Metrics()
	require.NoError(t, err)
	assert.Equal(t, sampleMetrics(), m)
}

func TestWrite_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scholar.json")
	require.NoError(t, Write(path, sampleMetrics()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// 2-space indent and a trailing newline, like a hand edit.
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"citations\": 204,"))
	assert.True(t, strings.HasSuffix(string(data), "}\n"))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "2026-01-21T00:00:00Z", raw["updated"])
}

func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scholar.json")
	require.NoError(t, Write(path, sampleMetrics()))

	next := sampleMetrics()
	next.Citations = 207
	require.NoError(t, Write(path, next))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 207, *d.Citations)
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(filepath.Join(dir, "scholar.json"), sampleMetrics()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "scholar.json", entries[0].Name())
}

func TestWrite_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scholar.json")

	m := sampleMetrics()
	m.Citations = -1
	err := Write(path, m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to write invalid artifact")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "invalid artifact must not be written")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestFromMetrics_NormalizesToUTC(t *testing.T) {
	m := sampleMetrics()
	m.Updated = time.Date(2026, 1, 21, 2, 0, 0, 0, time.FixedZone("CET", 2*3600))

	d := FromMetrics(m)
	require.NotNil(t, d.Updated)
	assert.Equal(t, "2026-01-21T00:00:00Z", *d.Updated)
	assert.NoError(t, Validate(d))
}

func TestDiff(t *testing.T) {
	old := sampleMetrics()
	next := old
	next.Citations = 207
	next.I10 = 10

	changes := Diff(old, next)
	require.Len(t, changes, 2)
	assert.Equal(t, FieldChange{Field: "citations", Old: 204, New: 207}, changes[0])
	assert.Equal(t, FieldChange{Field: "i10", Old: 9, New: 10}, changes[1])

	assert.Equal(t, "citations 204 -> 207 (+3), i10 9 -> 10 (+1)", FormatDiff(changes))
}

func TestDiff_NoChanges(t *testing.T) {
	m := sampleMetrics()
	assert.Empty(t, Diff(m, m))
	assert.Equal(t, "no changes", FormatDiff(nil))
}

func TestDiff_Decrease(t *testing.T) {
	old := sampleMetrics()
	next := old
	next.Citations = 200

	assert.Equal(t, "citations 204 -> 200 (-4)", FormatDiff(Diff(old, next)))
}
