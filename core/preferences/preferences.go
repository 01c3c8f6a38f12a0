// ABOUTME: Typed access to persisted user preferences over the Cache key/value contract
// ABOUTME: Stores the selected city, district and league used by service widgets

package preferences

import (
	"context"
	"errors"
	"strings"

	"newsreader-core/core/gateway"
	"newsreader-core/core/interfaces"
)

const (
	keyCity     = "pref:city"
	keyDistrict = "pref:district"
	keyLeague   = "pref:league"
)

// Defaults applied when nothing is stored.
const (
	DefaultCity   = gateway.DefaultCity
	DefaultLeague = gateway.DefaultLeague
)

var errNoBackend = errors.New("preferences backend not configured")

// Location is the city and optional district used by location scoped services.
type Location struct {
	City     string `json:"city"`
	District string `json:"district,omitempty"`
}

// Store reads and writes preferences.
type Store struct {
	cache  interfaces.Cache
	logger interfaces.Logger
}

// New creates a store backed by cache.
func New(cache interfaces.Cache, deps interfaces.Dependencies) *Store {
	deps = deps.WithDefaults()
	return &Store{cache: cache, logger: deps.Logger}
}

// Location returns the stored location, falling back to DefaultCity.
// Backend errors are logged and treated as "not set".
func (s *Store) Location(ctx context.Context) Location {
	return Location{
		City:     s.get(ctx, keyCity, DefaultCity),
		District: s.get(ctx, keyDistrict, ""),
	}
}

// SetLocation stores city and district. Changing the city without naming a
// district clears the stored district.
func (s *Store) SetLocation(ctx context.Context, loc Location) error {
	if s.cache == nil {
		return errNoBackend
	}
	city := normalizeSlug(loc.City)
	if city == "" {
		city = DefaultCity
	}
	if err := s.cache.Set(ctx, keyCity, []byte(city), 0); err != nil {
		return err
	}
	district := normalizeSlug(loc.District)
	if district == "" {
		return s.cache.Delete(ctx, keyDistrict)
	}
	return s.cache.Set(ctx, keyDistrict, []byte(district), 0)
}

// League returns the stored league, falling back to DefaultLeague.
func (s *Store) League(ctx context.Context) string {
	return s.get(ctx, keyLeague, DefaultLeague)
}

// SetLeague stores the league slug. An empty slug restores the default.
func (s *Store) SetLeague(ctx context.Context, league string) error {
	if s.cache == nil {
		return errNoBackend
	}
	league = normalizeSlug(league)
	if league == "" {
		return s.cache.Delete(ctx, keyLeague)
	}
	return s.cache.Set(ctx, keyLeague, []byte(league), 0)
}

func (s *Store) get(ctx context.Context, key, def string) string {
	if s.cache == nil {
		return def
	}
	v, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrCacheMiss) {
			s.logger.Warn("Failed to read preference", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return def
	}
	if len(v) == 0 {
		return def
	}
	return string(v)
}

// normalizeSlug lowercases and trims a user supplied location or league name.
func normalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
