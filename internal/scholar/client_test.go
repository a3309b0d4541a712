// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSummary(t *testing.T) {
	var capturedReq *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(profileHTML(summaryTable)))
	}))
	defer ts.Close()

	c := NewClient(
		WithBaseURL(ts.URL),
		WithHTTPClient(ts.Client()),
		WithUserAgent("scholar-metrics-test/1.0"),
		WithCookie("GSP=ID=abc"),
		WithRequestsPerMinute(6000),
	)

	got, err := c.FetchSummary(context.Background(), "_cxg7m4AAAAJ")
	require.NoError(t, err)
	assert.Equal(t, Summary{Citations: 1204, HIndex: 9, I10: 9}, got)

	q := capturedReq.URL.Query()
	assert.Equal(t, "_cxg7m4AAAAJ", q.Get("user"))
	assert.Equal(t, "en", q.Get("hl"))
	assert.Equal(t, "scholar-metrics-test/1.0", capturedReq.Header.Get("User-Agent"))
	assert.Equal(t, "GSP=ID=abc", capturedReq.Header.Get("Cookie"))
}

func TestFetchSummary_Blocked(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	c := NewClient(WithBaseURL(ts.URL), WithHTTPClient(ts.Client()), WithRequestsPerMinute(6000))

	_, err := c.FetchSummary(context.Background(), "_cxg7m4AAAAJ")
	assert.ErrorIs(t, err, ErrBlocked)
}

func TestFetchSummary_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	c := NewClient(WithBaseURL(ts.URL), WithHTTPClient(ts.Client()), WithRequestsPerMinute(6000))

	_, err := c.FetchSummary(context.Background(), "_cxg7m4AAAAJ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetchSummary_EmptyProfileID(t *testing.T) {
	c := NewClient()
	_, err := c.FetchSummary(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty profile ID")
}

func TestFetchSummary_InterstitialPage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body>unusual traffic</body></html>`))
	}))
	defer ts.Close()

	c := NewClient(WithBaseURL(ts.URL), WithHTTPClient(ts.Client()), WithRequestsPerMinute(6000))

	_, err := c.FetchSummary(context.Background(), "_cxg7m4AAAAJ")
	assert.ErrorIs(t, err, ErrNoSummaryTable)
}

func TestProfileURL(t *testing.T) {
	got := ProfileURL("_cxg7m4AAAAJ")
	assert.Equal(t, "https://scholar.google.com/citations?user=_cxg7m4AAAAJ&hl=en", got)
}
