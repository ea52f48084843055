package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArtifactSuffix is the fixed suffix of the per-scan JSON artifact.
const ArtifactSuffix = "short-playtime-timeouts.json"

// WriteArtifact persists the report as an indented UTF-8 JSON file named
// <unix-timestamp>-short-playtime-timeouts.json under dir, creating the
// directory if needed. The file is written once, after all day processing has
// finished. Returns the written path.
func WriteArtifact(report *Report, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%d-%s", time.Now().Unix(), ArtifactSuffix))

	data, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	return path, nil
}
