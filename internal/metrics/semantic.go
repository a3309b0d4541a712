// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SamirRachidZaim/scholar-metrics/internal/httputil"
	"github.com/SamirRachidZaim/scholar-metrics/pkg/types"
)

// semanticAPIBase is the Semantic Scholar author endpoint. Declared as a
// var so tests can substitute an httptest server.
var semanticAPIBase = "https://api.semanticscholar.org/graph/v1/author"

const (
	semanticAuthorFields = "name,citationCount,hIndex"
	semanticPaperFields  = "citationCount"

	// semanticPageSize is the papers page size; the API caps it at 1000.
	semanticPageSize = 1000

	// semanticMaxPages bounds pagination for pathological author records.
	semanticMaxPages = 20
)

// SemanticScholarBackend queries the Semantic Scholar author API. It is
// the fallback source for when the profile page scrape is blocked.
//
// The API reports citationCount and hIndex directly. It does not report
// an i10-index, so the backend derives one from the author's paper list:
// the number of papers with at least 10 citations.
type SemanticScholarBackend struct {
	Client *http.Client
	APIKey string
}

// Name returns the backend identifier.
func (b *SemanticScholarBackend) Name() string { return "semantic_scholar" }

// Fetch retrieves author metrics and derives the i10-index.
func (b *SemanticScholarBackend) Fetch(ctx context.Context, cfg types.FetchConfig) (types.Metrics, error) {
	if cfg.SemanticScholarAuthorID == "" {
		return types.Metrics{}, fmt.Errorf("semantic_scholar_author_id is not configured")
	}

	client := b.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	author, err := b.fetchAuthor(ctx, client, cfg)
	if err != nil {
		return types.Metrics{}, err
	}

	i10, err := b.countI10(ctx, client, cfg)
	if err != nil {
		return types.Metrics{}, err
	}

	return types.Metrics{
		Citations: author.CitationCount,
		HIndex:    author.HIndex,
		I10:       i10,
	}, nil
}

func (b *SemanticScholarBackend) fetchAuthor(ctx context.Context, client *http.Client, cfg types.FetchConfig) (semanticAuthor, error) {
	reqURL := fmt.Sprintf("%s/%s?fields=%s",
		semanticAPIBase, url.PathEscape(cfg.SemanticScholarAuthorID), semanticAuthorFields)

	var author semanticAuthor
	if err := b.getJSON(ctx, client, cfg, reqURL, &author); err != nil {
		return semanticAuthor{}, fmt.Errorf("author lookup: %w", err)
	}
	return author, nil
}

// countI10 pages through the author's papers and counts those with at
// least 10 citations.
func (b *SemanticScholarBackend) countI10(ctx context.Context, client *http.Client, cfg types.FetchConfig) (int, error) {
	count := 0
	offset := 0

	for page := 0; page < semanticMaxPages; page++ {
		params := url.Values{
			"fields": {semanticPaperFields},
			"limit":  {fmt.Sprintf("%d", semanticPageSize)},
			"offset": {fmt.Sprintf("%d", offset)},
		}
		reqURL := fmt.Sprintf("%s/%s/papers?%s",
			semanticAPIBase, url.PathEscape(cfg.SemanticScholarAuthorID), params.Encode())

		var resp semanticPapersResponse
		if err := b.getJSON(ctx, client, cfg, reqURL, &resp); err != nil {
			return 0, fmt.Errorf("papers page at offset %d: %w", offset, err)
		}

		for _, p := range resp.Data {
			if p.CitationCount >= 10 {
				count++
			}
		}

		if resp.Next == nil || len(resp.Data) == 0 {
			return count, nil
		}
		offset = *resp.Next
	}

	return count, nil
}

func (b *SemanticScholarBackend) getJSON(ctx context.Context, client *http.Client, cfg types.FetchConfig, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	if b.APIKey != "" {
		req.Header.Set("x-api-key", b.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return fmt.Errorf("Semantic Scholar API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Semantic Scholar API returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing Semantic Scholar response: %w", err)
	}
	return nil
}

// Semantic Scholar API JSON structures.
type semanticAuthor struct {
	AuthorID      string `json:"authorId"`
	Name          string `json:"name"`
	CitationCount int    `json:"citationCount"`
	HIndex        int    `json:"hIndex"`
}

type semanticPapersResponse struct {
	Offset int             `json:"offset"`
	Next   *int            `json:"next,omitempty"`
	Data   []semanticPaper `json:"data"`
}

type semanticPaper struct {
	CitationCount int `json:"citationCount"`
}
