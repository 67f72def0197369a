//go:build !tinygo

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
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
		"loud":  zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubespin.log")
	cfg := DefaultFileConfig(path)
	cfg.Compress = false

	l := NewWithFileConfig("warn", cfg, false)
	l.Info("dropped")
	l.Warn("render fault", zap.Int("tick", 7))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	s := string(data)
	if strings.Contains(s, "dropped") {
		t.Errorf("info line written at warn level: %q", s)
	}
	if !strings.Contains(s, "render fault") || !strings.Contains(s, `"tick": 7`) {
		t.Errorf("missing warn line: %q", s)
	}
}

func TestNoOutputIsNop(t *testing.T) {
	l := NewWithFileConfig("debug", FileConfig{}, false)
	if l.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected a no-op logger")
	}
}
