package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "run.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	LogEvent("loaded %d rows from %s", 42, "results.csv")

	if err := Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	raw, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("could not read log file: %v", err)
	}
	if !strings.Contains(string(raw), "loaded 42 rows from results.csv") {
		t.Errorf("log file missing event, got: %q", string(raw))
	}
}

func TestCloseWithoutInitIsNoop(t *testing.T) {
	if err := Close(); err != nil {
		t.Fatalf("Close() without an open log file should be a no-op, got: %v", err)
	}
}
