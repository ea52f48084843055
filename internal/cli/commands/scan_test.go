package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/srcds-tools/timeoutfinder/pkg/output"
)

func TestScanCommand_EndToEnd(t *testing.T) {
	logDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	logContent := `L 10/23/2019 - 13:00:00: "Alice<2><STEAM_0:1:1><>" entered the game
L 10/23/2019 - 13:10:00: "Bob<3><STEAM_0:1:2><>" entered the game
L 10/23/2019 - 13:14:00: "Bob<3><STEAM_0:1:2><>" disconnected (reason "Bob timed out")
L 10/23/2019 - 13:20:00: "Carol<4><STEAM_0:1:3><>" entered the game
L 10/23/2019 - 13:25:00: "Ghost<5><STEAM_0:1:9><>" disconnected (reason "Ghost timed out")
`
	logPath := filepath.Join(logDir, "gmodserver-console-2019-10-23-17:20:20.log")
	if err := os.WriteFile(logPath, []byte(logContent), 0644); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := "log_dir: " + logDir + "\noutput_dir: " + outDir + "\n"
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := NewScanCommand()
	cmd.SetArgs([]string{configPath, "--quiet"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d artifacts, want 1", len(entries))
	}
	if !strings.HasSuffix(entries[0].Name(), output.ArtifactSuffix) {
		t.Errorf("artifact name = %q", entries[0].Name())
	}

	data, err := os.ReadFile(filepath.Join(outDir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}

	var report output.Report
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}

	if len(report.Days) != 1 {
		t.Fatalf("days = %d, want 1", len(report.Days))
	}
	day := report.Days[0]
	if day.Day != "2019-10-23" {
		t.Errorf("day = %q", day.Day)
	}
	if day.TotalEnters != 3 || day.TotalTimeouts != 1 {
		t.Errorf("counts = %d enters / %d timeouts, want 3/1", day.TotalEnters, day.TotalTimeouts)
	}
	if day.PercentTimeouts == nil || *day.PercentTimeouts != 33.33 {
		t.Error("percent_timeouts != 33.33")
	}
	if day.TotalTimeoutEvents != 2 {
		t.Errorf("total_timeout_events = %d, want 2", day.TotalTimeoutEvents)
	}
}

func TestScanCommand_NoDatedLogs(t *testing.T) {
	logDir := t.TempDir()
	// Only the current, undated log exists.
	if err := os.WriteFile(filepath.Join(logDir, "gmodserver-console.log"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("log_dir: "+logDir+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := NewScanCommand()
	cmd.SetArgs([]string{configPath, "--no-artifact"})
	if err := cmd.Execute(); err == nil {
		t.Error("scan succeeded with no dated log files")
	}
}
