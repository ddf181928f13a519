package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Database.Timeout != 1*time.Second {
		t.Errorf("Database.Timeout = %v, want 1s", cfg.Database.Timeout)
	}

	if cfg.Reddit.BaseURL != "https://www.reddit.com" {
		t.Errorf("Reddit.BaseURL = %s, want https://www.reddit.com", cfg.Reddit.BaseURL)
	}
	if cfg.Reddit.PageLimit != 100 {
		t.Errorf("Reddit.PageLimit = %d, want 100", cfg.Reddit.PageLimit)
	}
	if cfg.Reddit.FetchDelay != 1*time.Second {
		t.Errorf("Reddit.FetchDelay = %v, want 1s", cfg.Reddit.FetchDelay)
	}
	if cfg.Reddit.UserAgent == "" {
		t.Error("Reddit.UserAgent should not be empty")
	}

	if cfg.Grid.Columns != 4 {
		t.Errorf("Grid.Columns = %d, want 4", cfg.Grid.Columns)
	}

	if cfg.Keys.Bindings.Quit != "q" {
		t.Errorf("Keys.Bindings.Quit = %s, want 'q'", cfg.Keys.Bindings.Quit)
	}
}

func TestLoad_DefaultConfig(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.Reddit.PageLimit != 100 {
		t.Errorf("Reddit.PageLimit = %d, want 100", cfg.Reddit.PageLimit)
	}
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.toml")

	content := `
[reddit]
page_limit = 25
fetch_delay = "2s"

[grid]
columns = 3
`
	if err := os.WriteFile(configFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Reddit.PageLimit != 25 {
		t.Errorf("Reddit.PageLimit = %d, want 25", cfg.Reddit.PageLimit)
	}
	if cfg.Reddit.FetchDelay != 2*time.Second {
		t.Errorf("Reddit.FetchDelay = %v, want 2s", cfg.Reddit.FetchDelay)
	}
	if cfg.Grid.Columns != 3 {
		t.Errorf("Grid.Columns = %d, want 3", cfg.Grid.Columns)
	}

	// Values not in the file keep their defaults
	if cfg.Reddit.BaseURL != "https://www.reddit.com" {
		t.Errorf("Reddit.BaseURL = %s, want default", cfg.Reddit.BaseURL)
	}
}

func TestGenerateDefaultConfig_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.toml")

	if err := GenerateDefaultConfig(configFile); err != nil {
		t.Fatalf("GenerateDefaultConfig() error = %v", err)
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		t.Fatalf("reading generated config: %v", err)
	}

	// The written file must be valid TOML with the expected sections
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("generated config is not valid TOML: %v", err)
	}

	for _, section := range []string{"database", "reddit", "grid", "ui", "keys"} {
		if _, ok := raw[section]; !ok {
			t.Errorf("generated config missing [%s] section", section)
		}
	}

	// And loading it back must reproduce the defaults
	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Reddit.PageLimit != 100 {
		t.Errorf("round-tripped Reddit.PageLimit = %d, want 100", cfg.Reddit.PageLimit)
	}
	if cfg.Grid.Columns != 4 {
		t.Errorf("round-tripped Grid.Columns = %d, want 4", cfg.Grid.Columns)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	expanded := expandPath("~/test.db")
	if expanded != filepath.Join(home, "test.db") {
		t.Errorf("expandPath(~/test.db) = %s", expanded)
	}

	if expandPath("") != "" {
		t.Error("expandPath should pass through empty paths")
	}

	abs := expandPath("relative.db")
	if !filepath.IsAbs(abs) {
		t.Errorf("expandPath should absolutize relative paths, got %s", abs)
	}
}
