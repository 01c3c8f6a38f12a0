// ABOUTME: Configuration management with environment variable and YAML file support
// ABOUTME: Defines configuration for the content API, sessions, preference store and HTTP surface

package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all application configuration
type Config struct {
	// API contains the remote content API settings
	API APIConfig `yaml:"api"`

	// Resolver contains deep-link resolution settings
	Resolver ResolverConfig `yaml:"resolver"`

	// Session contains search and pagination settings
	Session SessionConfig `yaml:"session"`

	// Home contains home screen loading settings
	Home HomeConfig `yaml:"home"`

	// Store contains the preference store backend configuration
	Store StoreConfig `yaml:"store"`

	// Server contains HTTP server configuration
	Server ServerConfig `yaml:"server"`

	// Log contains logging configuration
	Log LogConfig `yaml:"log"`
}

// APIConfig holds the remote content API settings
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"NEWSREADER_BASE_URL"`
	APIKey  string        `yaml:"api_key"  env:"NEWSREADER_API_KEY"`
	Timeout time.Duration `yaml:"timeout"  env:"HTTP_TIMEOUT" env-default:"15s"`
}

// ResolverConfig holds deep-link resolution settings
type ResolverConfig struct {
	// WindowSize is how many recent items a slug is searched in
	WindowSize int `yaml:"window_size" env:"RESOLVER_WINDOW" env-default:"100"`
}

// SessionConfig holds search and pagination settings
type SessionConfig struct {
	Debounce         time.Duration `yaml:"debounce"           env:"SEARCH_DEBOUNCE"    env-default:"500ms"`
	AuthorsPageSize  int           `yaml:"authors_page_size"  env:"AUTHORS_PAGE_SIZE"  env-default:"12"`
	ArticlesPageSize int           `yaml:"articles_page_size" env:"ARTICLES_PAGE_SIZE" env-default:"10"`
	CommentsPageSize int           `yaml:"comments_page_size" env:"COMMENTS_PAGE_SIZE" env-default:"20"`
}

// HomeConfig holds home screen loading settings
type HomeConfig struct {
	// Concurrency bounds parallel section fetches
	Concurrency int `yaml:"concurrency" env:"HOME_CONCURRENCY" env-default:"5"`
}

// StoreConfig holds preference store backend configuration
type StoreConfig struct {
	// Type specifies the backend (memory/redis/sqlite)
	Type string `yaml:"type" env:"STORE_TYPE" env-default:"memory"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig `yaml:"redis"`

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig `yaml:"sqlite"`

	// Memory contains in-memory store configuration
	Memory MemoryConfig `yaml:"memory"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `yaml:"address" env:"REDIS_ADDRESS" env-default:"localhost:6379"`

	// Password is the Redis authentication password
	Password string `yaml:"password" env:"REDIS_PASSWORD"`

	// DB is the Redis database number
	DB int `yaml:"db" env:"REDIS_DB" env-default:"0"`

	// KeyPrefix namespaces preference keys
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"newsreader:"`
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"newsreader.db"`
}

// MemoryConfig holds in-memory store configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"MEMORY_CLEANUP_INTERVAL" env-default:"10m"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `yaml:"port" env:"PORT" env-default:"8000"`

	// RateLimit is the sustained requests per second allowed per client
	RateLimit float64 `yaml:"rate_limit" env:"RATE_LIMIT" env-default:"10"`

	// RateBurst is the burst size allowed per client
	RateBurst int `yaml:"rate_burst" env:"RATE_BURST" env-default:"20"`

	// AllowedOrigins lists CORS origins
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`

	// Format is text or json
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from the YAML file at path, with environment
// variables overriding file values. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	return Load("")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api base URL cannot be empty")
	}
	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("api base URL must be an absolute URL")
	}

	if c.API.Timeout <= 0 {
		return errors.New("http timeout must be positive")
	}

	if c.Resolver.WindowSize < 1 {
		return errors.New("resolver window must be at least 1")
	}

	if c.Session.AuthorsPageSize < 1 || c.Session.ArticlesPageSize < 1 || c.Session.CommentsPageSize < 1 {
		return errors.New("page sizes must be at least 1")
	}

	if c.Home.Concurrency < 1 {
		return errors.New("home concurrency must be at least 1")
	}

	switch c.Store.Type {
	case "memory", "sqlite":
	case "redis":
		if c.Store.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis store")
		}
	default:
		return errors.New("store type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Store.Type == "sqlite" && c.Store.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite store")
	}

	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit <= 0 || c.Server.RateBurst < 1 {
		return errors.New("rate limit and burst must be positive")
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
