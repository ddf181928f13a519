package debuglog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warn", LevelWarn},
		{"WARNING", LevelWarn},
		{"error", LevelError},
		{"off", LevelOff},
		{"bogus", LevelInfo},
		{"  info  ", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSetupAndWrite(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	if err := Setup(LevelInfo, logPath); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	defer func() {
		Close()
		Setup(LevelOff)
	}()

	Debugf("should be filtered")
	Infof("hello %s", "world")

	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Errorf("log file missing info message: %s", content)
	}
	if strings.Contains(content, "should be filtered") {
		t.Errorf("debug message should have been filtered: %s", content)
	}
}

func TestSetupOff(t *testing.T) {
	if err := Setup(LevelOff); err != nil {
		t.Fatalf("Setup(LevelOff) error = %v", err)
	}
	// Logging while off must be a no-op, not a panic
	Infof("nobody home")
}
