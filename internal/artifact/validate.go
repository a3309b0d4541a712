// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package artifact

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ValidationError lists every rule an artifact document breaks.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid artifact: %s", strings.Join(e.Problems, "; "))
}

// Validate checks a document against the artifact rules: all three counts
// present and non-negative, updated a valid RFC 3339 timestamp in UTC,
// profile an absolute http(s) URL. All problems are reported at once.
func Validate(d Document) error {
	var problems []string

	for _, f := range []struct {
		name  string
		value *int
	}{
		{"citations", d.Citations},
		{"hindex", d.HIndex},
		{"i10", d.I10},
	} {
		switch {
		case f.value == nil:
			problems = append(problems, fmt.Sprintf("%s is missing", f.name))
		case *f.value < 0:
			problems = append(problems, fmt.Sprintf("%s is negative (%d)", f.name, *f.value))
		}
	}

	switch {
	case d.Updated == nil:
		problems = append(problems, "updated is missing")
	default:
		if p := validateUpdated(*d.Updated); p != "" {
			problems = append(problems, p)
		}
	}

	switch {
	case d.Profile == nil, d.Profile != nil && *d.Profile == "":
		problems = append(problems, "profile is missing")
	default:
		if p := validateProfile(*d.Profile); p != "" {
			problems = append(problems, p)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// validateUpdated checks the timestamp parses as RFC 3339 and carries a
// zero UTC offset.
func validateUpdated(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Sprintf("updated %q is not a valid ISO 8601 timestamp", s)
	}
	if _, offset := t.Zone(); offset != 0 {
		return fmt.Sprintf("updated %q is not UTC", s)
	}
	return ""
}

func validateProfile(s string) string {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Sprintf("profile %q is not an absolute http(s) URL", s)
	}
	return ""
}

// ValidateFile loads and validates an artifact file in one step.
func ValidateFile(path string) error {
	d, err := Load(path)
	if err != nil {
		return err
	}
	return Validate(d)
}
