package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "info", Format: "json"}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("path", "a.xml").Msg("opened")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one log line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected JSON log line: %v", err)
	}
	if entry["message"] != "opened" || entry["path"] != "a.xml" || entry["level"] != "info" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNewDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Format: "json"}, &buf)
	if logger.GetLevel() != zerolog.WarnLevel {
		t.Fatalf("level = %v, want warn", logger.GetLevel())
	}
}

func TestNewFallsBackOnBadOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "loud", Format: "json"}, &buf)
	if logger.GetLevel() != DefaultLevel {
		t.Fatalf("level = %v, want default", logger.GetLevel())
	}
	if !strings.Contains(buf.String(), "could not parse logger level") {
		t.Fatalf("expected fallback warning, got %q", buf.String())
	}

	buf.Reset()
	New(Options{Format: "xml"}, &buf)
	if !strings.Contains(buf.String(), "could not parse logger format") {
		t.Fatalf("expected format fallback warning, got %q", buf.String())
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addr.log")
	logger := New(Options{Level: "error", Format: "json", File: path}, &bytes.Buffer{})
	logger.Error().Msg("save failed")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "save failed") {
		t.Fatalf("expected log file to contain message, got %q", data)
	}
}
