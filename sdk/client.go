// ABOUTME: Main client for the newsreader library
// ABOUTME: Wires gateway, resolver, home loader and preferences behind one facade

package newsreader

import (
	"context"
	"errors"

	"newsreader-core/core/domain"
	"newsreader-core/core/gateway"
	"newsreader-core/core/home"
	"newsreader-core/core/interfaces"
	"newsreader-core/core/preferences"
	"newsreader-core/core/resolver"
	"newsreader-core/core/session"
)

// Client is the main entry point for the library
type Client struct {
	Gateway     *gateway.Gateway
	Resolver    *resolver.Resolver
	Home        *home.Loader
	Preferences *preferences.Store

	deps   interfaces.Dependencies
	config Config
}

// NewClient creates a client with the given options. WithBaseURL is required.
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()
	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	if config.BaseURL == "" {
		return nil, errors.New("base url is required")
	}
	if config.HTTPClient == nil {
		return nil, errors.New("http client is required")
	}

	deps := interfaces.Dependencies{
		HTTPClient:  config.HTTPClient,
		Logger:      config.Logger,
		Preferences: config.Preferences,
		Metrics:     config.Metrics,
		Clock:       config.Clock,
	}.WithDefaults()

	gw := gateway.New(deps, config.BaseURL, config.APIKey)

	return &Client{
		Gateway:     gw,
		Resolver:    resolver.New(gw, deps, resolver.WithWindowSize(config.ResolverWindow)),
		Home:        home.NewLoader(gw, deps, config.HomeConcurrency),
		Preferences: preferences.New(config.Preferences, deps),
		deps:        deps,
		config:      config,
	}, nil
}

// Resolve maps a shared URL to its destination
func (c *Client) Resolve(ctx context.Context, rawURL string) (domain.Destination, error) {
	return c.Resolver.Resolve(ctx, rawURL)
}

// HandleNotification resolves a push payload and forwards it to nav
func (c *Client) HandleNotification(ctx context.Context, payload map[string]interface{}, nav interfaces.Navigator) error {
	return c.Resolver.HandleNotification(ctx, payload, nav)
}

// LoadHome loads every home section
func (c *Client) LoadHome(ctx context.Context) (home.Feed, error) {
	return c.Home.Load(ctx)
}

// NewSessions builds a fresh set of search and listing sessions. The caller
// closes it when the screen goes away.
func (c *Client) NewSessions() *session.Manager {
	return session.NewManager(c.Gateway, c.deps, c.config.Sessions)
}

// LocalWeather returns the forecast for the stored city
func (c *Client) LocalWeather(ctx context.Context) ([]domain.Weather, error) {
	return c.Gateway.Weather(ctx, c.Preferences.Location(ctx).City)
}

// LocalPrayerTimes returns prayer times for the stored location
func (c *Client) LocalPrayerTimes(ctx context.Context) (domain.PrayerTimes, error) {
	loc := c.Preferences.Location(ctx)
	return c.Gateway.PrayerTimes(ctx, loc.City, loc.District)
}

// LocalPharmacies returns on-duty pharmacies for the stored location
func (c *Client) LocalPharmacies(ctx context.Context) ([]domain.Pharmacy, error) {
	loc := c.Preferences.Location(ctx)
	return c.Gateway.Pharmacy(ctx, loc.City, loc.District)
}

// FavoriteStandings returns the table of the stored league
func (c *Client) FavoriteStandings(ctx context.Context) (domain.Standings, error) {
	return c.Gateway.Standings(ctx, c.Preferences.League(ctx))
}
