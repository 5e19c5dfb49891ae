package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFileOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stroke.log")

	if err := InitQuiet("debug", path); err != nil {
		t.Fatalf("InitQuiet() error: %v", err)
	}

	Info("mesh rebuilt", zap.Int("verts", 106))
	Debug("frame break", zap.Int("knot", 4))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "mesh rebuilt") {
		t.Errorf("log file missing info entry: %q", out)
	}
	if !strings.Contains(out, "frame break") {
		t.Errorf("log file missing debug entry: %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stroke.log")

	if err := InitQuiet("warn", path); err != nil {
		t.Fatalf("InitQuiet() error: %v", err)
	}

	Info("below threshold")
	Warn("at threshold")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	out := string(data)

	if strings.Contains(out, "below threshold") {
		t.Error("info entry logged despite warn level")
	}
	if !strings.Contains(out, "at threshold") {
		t.Error("warn entry missing")
	}
}
