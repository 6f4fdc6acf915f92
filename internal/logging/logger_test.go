package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("mapping loaded", "entries", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("invalid JSON log line: %v", err)
	}
	if record["level"] != "info" || record["msg"] != "mapping loaded" {
		t.Errorf("unexpected record: %v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Errorf("expected ts key, got %v", record)
	}
	if record["entries"] != float64(3) {
		t.Errorf("expected entries=3, got %v", record["entries"])
	}
}

func TestNewConsoleLoggerOmitsTime(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("voice id rewritten", "from", "L099", "to", "L020")

	out := buf.String()
	if strings.Contains(out, "time=") {
		t.Errorf("expected no timestamp, got %q", out)
	}
	if !strings.Contains(out, "from=L099") || !strings.Contains(out, "level=DEBUG") {
		t.Errorf("unexpected console output %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.expected {
			t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
