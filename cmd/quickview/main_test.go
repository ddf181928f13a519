package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	w.Close()
	os.Stdout = old
	return <-outC
}

func TestVersionCommand(t *testing.T) {
	out := captureStdout(t, func() {
		versionCmd.Run(nil, nil)
	})

	if !strings.Contains(out, "quickview dev") {
		t.Errorf("Expected version output to contain 'quickview dev', got: %s", out)
	}
	if !strings.Contains(out, "subreddit viewer") {
		t.Errorf("Expected version output to contain 'subreddit viewer', got: %s", out)
	}
	if !strings.Contains(out, "github.com/djenkins1/quickview") {
		t.Errorf("Expected version output to contain module path, got: %s", out)
	}
}

func TestGenerateConfigCommand(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, ".config", "quickview", "config.toml")

	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", oldHome)

	out := captureStdout(t, func() {
		if err := generateConfigCmd.RunE(nil, nil); err != nil {
			t.Errorf("generate-config failed: %v", err)
		}
	})

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		t.Errorf("Config file was not created at %s", configFile)
	}
	if !strings.Contains(out, "Generated default configuration at:") {
		t.Errorf("Expected output to contain 'Generated default configuration at:', got: %s", out)
	}
}

func TestInitialQuery(t *testing.T) {
	if got := initialQuery(nil); got != "" {
		t.Errorf("Expected empty query for no args, got %q", got)
	}
	if got := initialQuery([]string{"golang"}); got != "golang" {
		t.Errorf("Expected 'golang', got %q", got)
	}
}

func TestExpandTildePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "expand tilde path",
			input:    "~/test.db",
			expected: filepath.Join(os.Getenv("HOME"), "test.db"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/tmp/test.db",
			expected: "/tmp/test.db",
		},
		{
			name:     "relative path unchanged",
			input:    "test.db",
			expected: "test.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.input
			if len(path) >= 2 && path[:2] == "~/" {
				home, _ := os.UserHomeDir()
				path = filepath.Join(home, path[2:])
			}
			expected := tt.expected
			if tt.name == "expand tilde path" {
				home, _ := os.UserHomeDir()
				expected = filepath.Join(home, "test.db")
			}
			if path != expected {
				t.Errorf("Expected %s, got %s", expected, path)
			}
		})
	}
}
