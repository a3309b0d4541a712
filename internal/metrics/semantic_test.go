// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamirRachidZaim/scholar-metrics/pkg/types"
)

func semanticTestCfg() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig:              types.HTTPConfig{UserAgent: "scholar-metrics-test/1.0"},
		SemanticScholarAuthorID: "1741101",
	}
}

// newSemanticServer serves the author and papers endpoints and swaps the
// API base for the test's duration.
func newSemanticServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	old := semanticAPIBase
	semanticAPIBase = ts.URL
	t.Cleanup(func() { semanticAPIBase = old })

	return ts
}

func TestSemanticFetch(t *testing.T) {
	ts := newSemanticServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/papers") {
			// 3 papers at or above 10 citations, 2 below.
			fmt.Fprint(w, `{"offset":0,"data":[
				{"citationCount":120},
				{"citationCount":10},
				{"citationCount":9},
				{"citationCount":45},
				{"citationCount":0}]}`)
			return
		}
		fmt.Fprint(w, `{"authorId":"1741101","name":"S. Zaim","citationCount":204,"hIndex":9}`)
	}))

	b := &SemanticScholarBackend{Client: ts.Client()}
	got, err := b.Fetch(context.Background(), semanticTestCfg())
	require.NoError(t, err)

	assert.Equal(t, 204, got.Citations)
	assert.Equal(t, 9, got.HIndex)
	assert.Equal(t, 3, got.I10)
}

func TestSemanticFetch_Pagination(t *testing.T) {
	ts := newSemanticServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !strings.HasSuffix(r.URL.Path, "/papers") {
			fmt.Fprint(w, `{"authorId":"1741101","citationCount":500,"hIndex":12}`)
			return
		}
		if r.URL.Query().Get("offset") == "0" {
			fmt.Fprint(w, `{"offset":0,"next":2,"data":[{"citationCount":50},{"citationCount":3}]}`)
			return
		}
		fmt.Fprint(w, `{"offset":2,"data":[{"citationCount":11}]}`)
	}))

	b := &SemanticScholarBackend{Client: ts.Client()}
	got, err := b.Fetch(context.Background(), semanticTestCfg())
	require.NoError(t, err)

	assert.Equal(t, 2, got.I10)
}

func TestSemanticFetch_RequestShape(t *testing.T) {
	var authorReq, papersReq *http.Request
	ts := newSemanticServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/papers") {
			papersReq = r
			fmt.Fprint(w, `{"offset":0,"data":[]}`)
			return
		}
		authorReq = r
		fmt.Fprint(w, `{"authorId":"1741101","citationCount":204,"hIndex":9}`)
	}))

	b := &SemanticScholarBackend{Client: ts.Client(), APIKey: "test-key-123"}
	_, err := b.Fetch(context.Background(), semanticTestCfg())
	require.NoError(t, err)

	require.NotNil(t, authorReq)
	assert.Equal(t, "/1741101", authorReq.URL.Path)
	assert.Equal(t, semanticAuthorFields, authorReq.URL.Query().Get("fields"))
	assert.Equal(t, "test-key-123", authorReq.Header.Get("x-api-key"))
	assert.Equal(t, "scholar-metrics-test/1.0", authorReq.Header.Get("User-Agent"))

	require.NotNil(t, papersReq)
	assert.Equal(t, "/1741101/papers", papersReq.URL.Path)
	assert.Equal(t, "citationCount", papersReq.URL.Query().Get("fields"))
}

func TestSemanticFetch_MissingAuthorID(t *testing.T) {
	b := &SemanticScholarBackend{}
	cfg := semanticTestCfg()
	cfg.SemanticScholarAuthorID = ""

	_, err := b.Fetch(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "semantic_scholar_author_id")
}

func TestSemanticFetch_APIError(t *testing.T) {
	ts := newSemanticServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	b := &SemanticScholarBackend{Client: ts.Client()}
	_, err := b.Fetch(context.Background(), semanticTestCfg())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}
