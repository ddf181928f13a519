package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:    ":memory:",
			Timeout: 1 * time.Second,
		},
		Reddit: RedditConfig{
			BaseURL:     "https://www.reddit.com",
			UserAgent:   "quickview-test/1.0",
			HTTPTimeout: 5 * time.Second,
			PageLimit:   100,
			FetchDelay:  10 * time.Millisecond,
		},
		Grid: defaultConfig().Grid,
		UI:   defaultConfig().UI,
		Keys: defaultConfig().Keys,
	}
}
