package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_JSONWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, FormatJSON, &buf)

	logger.Info("team saved", "team_id", "1", "error", errors.New("boom"))
	logger.Debug("hidden", "k", "v")

	out := buf.String()
	if !strings.Contains(out, `"msg":"team saved"`) {
		t.Fatalf("missing message: %s", out)
	}
	if !strings.Contains(out, `"team_id":"1"`) {
		t.Fatalf("missing field: %s", out)
	}
	if !strings.Contains(out, `"error":"boom"`) {
		t.Fatalf("missing error field: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry must be filtered at info level: %s", out)
	}
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelDebug, FormatConsole, &buf).With("db", "game.db")

	logger.Warn("logo missing")

	out := buf.String()
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "logo missing") || !strings.Contains(out, "game.db") {
		t.Fatalf("unexpected console output: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("With on nil logger must return a usable logger")
	}
}

func TestRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.log")
	w := RotatingFile(path, 0)

	logger := New(LevelInfo, FormatJSON, w)
	logger.Info("database loaded", "teams", 3)
	if err := w.Close(); err != nil {
		t.Fatalf("close log file: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(raw), `"msg":"database loaded"`) {
		t.Fatalf("unexpected log file content: %s", raw)
	}
}
