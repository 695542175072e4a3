package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func initFile(t *testing.T, level string, cfg FileConfig) {
	t.Helper()
	if err := InitWithFileConfig(level, cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	t.Cleanup(func() {
		Sync()
		Log = zap.NewNop()
		Sugar = Log.Sugar()
	})
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(data)
}

func TestLogRotation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "clay.log")

	// 1MB is the smallest size lumberjack rotates at.
	initFile(t, "debug", FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
	})

	payload := strings.Repeat("v", 200)
	for i := 0; i < 6000; i++ {
		Sugar.Infof("vertex dump %d: %s", i, payload)
	}
	Sync()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}

	var rotated []string
	for _, e := range entries {
		name := e.Name()
		if name != "clay.log" && strings.HasPrefix(name, "clay-") {
			rotated = append(rotated, name)
		}
	}
	if len(rotated) == 0 {
		t.Fatalf("expected a rotated log next to clay.log, found %d entries", len(entries))
	}
	if len(rotated) > 2 {
		t.Errorf("expected at most 2 backups, got %v", rotated)
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), "levels.log")
			initFile(t, tt.level, FileConfig{Path: logFile, MaxSizeMB: 10})

			Debug("gesture discarded")
			Info("shape changed")
			Warn("audio unavailable")
			Error("export failed")

			content := readLog(t, logFile)
			for _, want := range tt.expected {
				if !strings.Contains(content, want) {
					t.Errorf("expected %s in log output", want)
				}
			}
			for _, unwanted := range tt.excluded {
				if strings.Contains(content, unwanted) {
					t.Errorf("unexpected %s in log output at level %s", unwanted, tt.level)
				}
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARN":    zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNamedCarriesComponentAndCaller(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "named.log")
	initFile(t, "info", FileConfig{Path: logFile, MaxSizeMB: 10})

	Named("sculpt").Info("undo", zap.Int("history", 3))

	content := readLog(t, logFile)
	if !strings.Contains(content, "sculpt") {
		t.Errorf("expected component name in output, got %q", content)
	}
	if !strings.Contains(content, "logger_test.go") {
		t.Errorf("expected caller to point at the test, got %q", content)
	}
	if !strings.Contains(content, `"history": 3`) {
		t.Errorf("expected structured field in output, got %q", content)
	}
}

func TestNopBeforeInit(t *testing.T) {
	// Library packages log before main configures anything.
	if Log == nil || Sugar == nil {
		t.Fatal("global logger should never be nil")
	}
	Debug("noop debug")
	Named("sculpt").Info("noop info")
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/clay.log")

	if cfg.Path != "/tmp/clay.log" {
		t.Errorf("expected path /tmp/clay.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 10 || cfg.MaxBackups != 3 || cfg.MaxAgeDays != 7 {
		t.Errorf("unexpected retention %d MB / %d backups / %d days",
			cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}
