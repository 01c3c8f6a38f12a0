package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("NEWSREADER_BASE_URL", "https://news.example")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Resolver.WindowSize != 100 {
		t.Errorf("WindowSize = %v, want %v", cfg.Resolver.WindowSize, 100)
	}
	if cfg.Session.Debounce != 500*time.Millisecond {
		t.Errorf("Debounce = %v, want %v", cfg.Session.Debounce, 500*time.Millisecond)
	}
	if cfg.Session.AuthorsPageSize != 12 {
		t.Errorf("AuthorsPageSize = %v, want %v", cfg.Session.AuthorsPageSize, 12)
	}
	if cfg.Store.Type != "memory" {
		t.Errorf("Store.Type = %v, want %v", cfg.Store.Type, "memory")
	}
	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %v, want %v", cfg.Server.Port, "8000")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("NEWSREADER_BASE_URL", "https://news.example")
	t.Setenv("RESOLVER_WINDOW", "250")
	t.Setenv("SEARCH_DEBOUNCE", "1s")
	t.Setenv("STORE_TYPE", "redis")
	t.Setenv("REDIS_ADDRESS", "cache:6379")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Resolver.WindowSize != 250 {
		t.Errorf("WindowSize = %v, want %v", cfg.Resolver.WindowSize, 250)
	}
	if cfg.Session.Debounce != time.Second {
		t.Errorf("Debounce = %v, want %v", cfg.Session.Debounce, time.Second)
	}
	if cfg.Store.Redis.Address != "cache:6379" {
		t.Errorf("Redis.Address = %v, want %v", cfg.Store.Redis.Address, "cache:6379")
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("AllowedOrigins = %v, want 2 entries", cfg.Server.AllowedOrigins)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "api:\n  base_url: https://file.example\n  api_key: k\nstore:\n  type: sqlite\n  sqlite:\n    path: prefs.db\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != "https://file.example" {
		t.Errorf("BaseURL = %v, want %v", cfg.API.BaseURL, "https://file.example")
	}
	if cfg.Store.SQLite.Path != "prefs.db" {
		t.Errorf("SQLite.Path = %v, want %v", cfg.Store.SQLite.Path, "prefs.db")
	}
	if cfg.Session.CommentsPageSize != 20 {
		t.Errorf("CommentsPageSize = %v, want %v", cfg.Session.CommentsPageSize, 20)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			API:      APIConfig{BaseURL: "https://news.example", Timeout: time.Second},
			Resolver: ResolverConfig{WindowSize: 100},
			Session:  SessionConfig{AuthorsPageSize: 12, ArticlesPageSize: 10, CommentsPageSize: 20},
			Home:     HomeConfig{Concurrency: 5},
			Store:    StoreConfig{Type: "memory"},
			Server:   ServerConfig{Port: "8000", RateLimit: 10, RateBurst: 20},
			Log:      LogConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing base url", func(c *Config) { c.API.BaseURL = "" }, true},
		{"relative base url", func(c *Config) { c.API.BaseURL = "news.example" }, true},
		{"zero window", func(c *Config) { c.Resolver.WindowSize = 0 }, true},
		{"zero home concurrency", func(c *Config) { c.Home.Concurrency = 0 }, true},
		{"unknown store", func(c *Config) { c.Store.Type = "s3" }, true},
		{"redis without address", func(c *Config) { c.Store.Type = "redis" }, true},
		{"sqlite without path", func(c *Config) { c.Store.Type = "sqlite" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"zero rate", func(c *Config) { c.Server.RateLimit = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
