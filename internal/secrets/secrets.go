// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key
// name and the file contents (trimmed) are the value.
//
// Supported key files: semantic-scholar-api-key, scholar-cookie.
// Environment variables override file values: the key "scholar-cookie"
// maps to SCHOLAR_METRICS_SCHOLAR_COOKIE.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// envPrefix namespaces the environment overrides.
const envPrefix = "SCHOLAR_METRICS_"

// Load reads all files in dir and returns a map of filename to trimmed
// contents, with environment overrides applied. A missing directory is not
// an error; Load returns whatever the environment provides. Unreadable
// files produce a warning on stderr but do not abort.
func Load(dir string, keys ...string) (map[string]string, error) {
	secrets := make(map[string]string)

	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	// Environment wins over files so a CI run can inject credentials
	// without touching the secrets directory.
	for _, key := range keys {
		if v := os.Getenv(EnvVar(key)); v != "" {
			secrets[key] = v
		}
	}

	return secrets, nil
}

// EnvVar returns the environment variable name for a secret key, e.g.
// "scholar-cookie" becomes "SCHOLAR_METRICS_SCHOLAR_COOKIE".
func EnvVar(key string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}
