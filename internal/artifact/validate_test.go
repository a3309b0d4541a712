// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidExample(t *testing.T) {
	d, err := Decode([]byte(`{"citations": 204, "hindex": 9, "i10": 9,
		"updated": "2026-01-21T00:00:00Z",
		"profile": "https://scholar.google.com/citations?user=_cxg7m4AAAAJ&hl=en"}`))
	require.NoError(t, err)

	assert.NoError(t, Validate(d))
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{
			"negative citations",
			`{"citations": -1, "hindex": 9, "i10": 9, "updated": "2026-01-21T00:00:00Z", "profile": "https://example.com"}`,
			"citations is negative",
		},
		{
			"negative hindex",
			`{"citations": 204, "hindex": -9, "i10": 9, "updated": "2026-01-21T00:00:00Z", "profile": "https://example.com"}`,
			"hindex is negative",
		},
		{
			"bad timestamp",
			`{"citations": 204, "hindex": 9, "i10": 9, "updated": "not-a-date", "profile": "https://example.com"}`,
			"not a valid ISO 8601 timestamp",
		},
		{
			"non-UTC timestamp",
			`{"citations": 204, "hindex": 9, "i10": 9, "updated": "2026-01-21T00:00:00+02:00", "profile": "https://example.com"}`,
			"is not UTC",
		},
		{
			"missing i10",
			`{"citations": 204, "hindex": 9, "updated": "2026-01-21T00:00:00Z", "profile": "https://example.com"}`,
			"i10 is missing",
		},
		{
			"missing updated",
			`{"citations": 204, "hindex": 9, "i10": 9, "profile": "https://example.com"}`,
			"updated is missing",
		},
		{
			"relative profile URL",
			`{"citations": 204, "hindex": 9, "i10": 9, "updated": "2026-01-21T00:00:00Z", "profile": "citations?user=x"}`,
			"not an absolute http(s) URL",
		},
		{
			"empty profile",
			`{"citations": 204, "hindex": 9, "i10": 9, "updated": "2026-01-21T00:00:00Z", "profile": ""}`,
			"profile is missing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Decode([]byte(tt.json))
			require.NoError(t, err)

			err = Validate(d)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	d, err := Decode([]byte(`{"citations": -1, "hindex": 9, "i10": -2, "updated": "nope", "profile": "x"}`))
	require.NoError(t, err)

	verr := Validate(d)
	require.Error(t, verr)

	var ve *ValidationError
	require.ErrorAs(t, verr, &ve)
	assert.Len(t, ve.Problems, 4)
}

func TestDecode_Strict(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"unknown field", `{"citations": 1, "hindex": 1, "i10": 1, "updated": "2026-01-21T00:00:00Z", "profile": "https://example.com", "extra": true}`},
		{"string count", `{"citations": "204", "hindex": 9, "i10": 9, "updated": "2026-01-21T00:00:00Z", "profile": "https://example.com"}`},
		{"not JSON", `citations: 204`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.json))
			assert.Error(t, err)
		})
	}
}

func TestDecode_FractionalCountRejected(t *testing.T) {
	_, err := Decode([]byte(`{"citations": 20.4, "hindex": 9, "i10": 9, "updated": "2026-01-21T00:00:00Z", "profile": "https://example.com"}`))
	assert.Error(t, err)
}
