package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Reddit   RedditConfig   `mapstructure:"reddit"`
	Grid     GridConfig     `mapstructure:"grid"`
	UI       UIConfig       `mapstructure:"ui"`
	Keys     KeyConfig      `mapstructure:"keys"`
}

type DatabaseConfig struct {
	Path    string        `mapstructure:"path"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RedditConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	UserAgent   string        `mapstructure:"user_agent"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	PageLimit   int           `mapstructure:"page_limit"`
	FetchDelay  time.Duration `mapstructure:"fetch_delay"`
}

type GridConfig struct {
	Columns   int `mapstructure:"columns"`
	CardWidth int `mapstructure:"card_width"`
}

type UIConfig struct {
	Colors UIColors `mapstructure:"colors"`
}

type UIColors struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Accent    string `mapstructure:"accent"`
	Text      string `mapstructure:"text"`
	Muted     string `mapstructure:"muted"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

type KeyConfig struct {
	Bindings KeyBindings `mapstructure:"bindings"`
}

type KeyBindings struct {
	Quit        string `mapstructure:"quit"`
	AddFavorite string `mapstructure:"add_favorite"`
	OpenLink    string `mapstructure:"open_link"`
	Back        string `mapstructure:"back"`
	Help        string `mapstructure:"help"`
}

func defaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dbPath := filepath.Join(homeDir, ".quickview.db")

	return &Config{
		Database: DatabaseConfig{
			Path:    dbPath,
			Timeout: 1 * time.Second,
		},
		Reddit: RedditConfig{
			BaseURL:     "https://www.reddit.com",
			UserAgent:   "quickview/1.0 (https://github.com/djenkins1/quickview)",
			HTTPTimeout: 30 * time.Second,
			PageLimit:   100,
			FetchDelay:  1 * time.Second,
		},
		Grid: GridConfig{
			Columns:   4,
			CardWidth: 24,
		},
		UI: UIConfig{
			Colors: UIColors{
				Primary:   "#FF5700",
				Secondary: "#0DD3BB",
				Accent:    "#FFB000",
				Text:      "#EAEAEA",
				Muted:     "#94A3B8",
				Error:     "#EF4444",
				Success:   "#10B981",
			},
		},
		Keys: KeyConfig{
			Bindings: KeyBindings{
				Quit:        "q",
				AddFavorite: "ctrl+f",
				OpenLink:    "o",
				Back:        "esc",
				Help:        "?",
			},
		},
	}
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	v.SetDefault("database", cfg.Database)
	v.SetDefault("reddit", cfg.Reddit)
	v.SetDefault("grid", cfg.Grid)
	v.SetDefault("ui", cfg.UI)
	v.SetDefault("keys", cfg.Keys)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", "quickview")

		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("QUICKVIEW")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	expandPaths(&config)

	return &config, nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

func expandPaths(cfg *Config) {
	cfg.Database.Path = expandPath(cfg.Database.Path)
}

func Save(config *Config, path string) error {
	v := viper.New()

	// Convert durations to strings for TOML readability
	dbCfg := map[string]interface{}{
		"path":    config.Database.Path,
		"timeout": config.Database.Timeout.String(),
	}

	redditCfg := map[string]interface{}{
		"base_url":     config.Reddit.BaseURL,
		"user_agent":   config.Reddit.UserAgent,
		"http_timeout": config.Reddit.HTTPTimeout.String(),
		"page_limit":   config.Reddit.PageLimit,
		"fetch_delay":  config.Reddit.FetchDelay.String(),
	}

	v.Set("database", dbCfg)
	v.Set("reddit", redditCfg)
	v.Set("grid", config.Grid)
	v.Set("ui", config.UI)
	v.Set("keys", config.Keys)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
