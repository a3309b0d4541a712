// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// summaryTableID is the id of the citation summary table on a profile page.
const summaryTableID = "gsc_rsb_st"

// ErrNoSummaryTable indicates the page did not contain the citation summary
// table. This usually means an interstitial or consent page was served
// instead of the profile.
var ErrNoSummaryTable = errors.New("scholar: citation summary table not found")

// Summary holds the three aggregate metrics from a profile page, taken from
// the "All" column of the summary table.
type Summary struct {
	Citations int
	HIndex    int
	I10       int
}

// ParseSummary extracts the citation summary from profile page HTML. The
// table rows are, in order: Citations, h-index, i10-index; the second cell
// of each row holds the all-time value, formatted with thousands commas.
func ParseSummary(r io.Reader) (Summary, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Summary{}, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table#" + summaryTableID)
	if table.Length() == 0 {
		return Summary{}, ErrNoSummaryTable
	}

	var values []int
	var parseErr error
	table.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		// Header rows use th cells and are skipped.
		if cells.Length() < 2 {
			return true
		}
		n, err := parseCount(cells.Eq(1).Text())
		if err != nil {
			label := strings.TrimSpace(cells.Eq(0).Text())
			parseErr = fmt.Errorf("row %q: %w", label, err)
			return false
		}
		values = append(values, n)
		return true
	})
	if parseErr != nil {
		return Summary{}, parseErr
	}

	if len(values) < 3 {
		return Summary{}, fmt.Errorf("summary table has %d value rows, want 3", len(values))
	}

	return Summary{
		Citations: values[0],
		HIndex:    values[1],
		I10:       values[2],
	}, nil
}

// parseCount converts a rendered count like "1,204" to an integer.
func parseCount(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("empty count cell")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("count %q is not an integer", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("count %d is negative", n)
	}
	return n, nil
}
