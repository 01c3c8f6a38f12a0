package gateway

import (
	"context"

	"newsreader-core/core/domain"
)

const (
	// DefaultCity is used by location scoped services when no city is given.
	DefaultCity = "istanbul"

	// DefaultLeague is used by standings when no league is given.
	DefaultLeague = "super-lig"
)

func service(name string) Endpoint {
	return Endpoint{Collection: "services", Path: []string{name}}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Weather returns the forecast for city.
func (g *Gateway) Weather(ctx context.Context, city string) ([]domain.Weather, error) {
	ep := service("weather")
	ep.City = orDefault(city, DefaultCity)
	return value[[]domain.Weather](ctx, g, ep)
}

// PrayerTimes returns today's prayer times for city and optional district.
func (g *Gateway) PrayerTimes(ctx context.Context, city, district string) (domain.PrayerTimes, error) {
	ep := service("prayer-times")
	ep.City = orDefault(city, DefaultCity)
	ep.District = district
	return value[domain.PrayerTimes](ctx, g, ep)
}

// Currency returns exchange rates, optionally restricted to one type.
func (g *Gateway) Currency(ctx context.Context, currencyType string) ([]domain.Currency, error) {
	ep := service("currency")
	if currencyType != "" {
		ep.Params = map[string]string{"type": currencyType}
	}
	return value[[]domain.Currency](ctx, g, ep)
}

// Pharmacy returns on-duty pharmacies for city and optional district.
func (g *Gateway) Pharmacy(ctx context.Context, city, district string) ([]domain.Pharmacy, error) {
	ep := service("pharmacy")
	ep.City = orDefault(city, DefaultCity)
	ep.District = district
	return value[[]domain.Pharmacy](ctx, g, ep)
}

// Standings returns the table of league.
func (g *Gateway) Standings(ctx context.Context, league string) (domain.Standings, error) {
	ep := service("standings")
	ep.Params = map[string]string{"league": orDefault(league, DefaultLeague)}
	return value[domain.Standings](ctx, g, ep)
}

// Leagues returns every available league table keyed by league slug.
func (g *Gateway) Leagues(ctx context.Context) (map[string]domain.Standings, error) {
	return value[map[string]domain.Standings](ctx, g, service("standings"))
}

// Settings returns the remote app settings.
func (g *Gateway) Settings(ctx context.Context) (domain.Settings, error) {
	return value[domain.Settings](ctx, g, Endpoint{Collection: "settings"})
}
