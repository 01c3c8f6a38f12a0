// ABOUTME: Configuration options for the newsreader client
// ABOUTME: Functional options over the core's collaborators and tuning knobs

package newsreader

import (
	"errors"
	"time"

	"newsreader-core/core/interfaces"
	"newsreader-core/core/session"
	"newsreader-core/infrastructure/cache/memory"
	"newsreader-core/infrastructure/http/standard"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// Config holds the configuration for the client
type Config struct {
	BaseURL string
	APIKey  string

	HTTPClient  interfaces.HTTPClient
	Logger      interfaces.Logger
	Preferences interfaces.Cache
	Metrics     interfaces.Metrics
	Clock       interfaces.Clock

	ResolverWindow  int
	HomeConcurrency int
	Sessions        session.ManagerConfig
}

// WithBaseURL sets the content API root, e.g. https://api.example.com
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		if baseURL == "" {
			return errors.New("base url cannot be empty")
		}
		c.BaseURL = baseURL
		return nil
	}
}

// WithAPIKey sets the key sent with every request
func WithAPIKey(key string) Option {
	return func(c *Config) error {
		c.APIKey = key
		return nil
	}
}

// WithHTTPClient sets a custom transport
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithPreferences sets the backend that persists city, district and league
func WithPreferences(store interfaces.Cache) Option {
	return func(c *Config) error {
		c.Preferences = store
		return nil
	}
}

// WithMetrics sets the fetch metrics sink
func WithMetrics(m interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = m
		return nil
	}
}

// WithClock sets the clock driving search debounce
func WithClock(clock interfaces.Clock) Option {
	return func(c *Config) error {
		c.Clock = clock
		return nil
	}
}

// WithResolverWindow sets how many latest items a slug resolution scans
func WithResolverWindow(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return errors.New("resolver window must be positive")
		}
		c.ResolverWindow = n
		return nil
	}
}

// WithHomeConcurrency bounds parallel home section fetches
func WithHomeConcurrency(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return errors.New("home concurrency must be positive")
		}
		c.HomeConcurrency = n
		return nil
	}
}

// WithSessions sets the debounce and page sizes of search sessions
func WithSessions(cfg session.ManagerConfig) Option {
	return func(c *Config) error {
		c.Sessions = cfg
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		HTTPClient:      standard.NewStandardHTTPClient(15 * time.Second),
		Preferences:     memory.NewMemoryCache(10 * time.Minute),
		ResolverWindow:  100,
		HomeConcurrency: 5,
		Sessions: session.ManagerConfig{
			Debounce:         session.DefaultDebounce,
			AuthorsPageSize:  12,
			ArticlesPageSize: 10,
			CommentsPageSize: 20,
		},
	}
}
