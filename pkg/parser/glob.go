package parser

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ListLogFiles returns all .log files directly under dir, sorted by name.
func ListLogFiles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.log"))
	if err != nil {
		return nil, fmt.Errorf("listing logs in %s: %w", dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// ExpandGlobs expands glob patterns into a deduplicated list of file paths.
// A pattern that matches nothing is kept as a literal path so the caller can
// surface a useful file-not-found diagnostic later.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			if !seen[pattern] {
				seen[pattern] = true
				result = append(result, pattern)
			}
			continue
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				result = append(result, match)
			}
		}
	}

	sort.Strings(result)

	return result, nil
}
