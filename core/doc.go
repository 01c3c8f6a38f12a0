// Package core contains the client-side logic of the newsreader: turning the
// content API's loosely shaped JSON into canonical records, fetching it with
// uniform error classification, resolving deep links and running search and
// pagination sessions.
//
// The core has no framework dependencies. Every external collaborator is an
// interface in core/interfaces, injected through interfaces.Dependencies.
//
//   - domain: canonical records (content references and details, authors, comments, services)
//   - errors: fetch, decode, resolution and validation error types
//   - interfaces: transport, logger, preference store, clock, metrics, navigator
//   - normalize: payload normalizer
//   - gateway: content fetch gateway, one typed operation per endpoint
//   - resolver: deep-link and notification resolution
//   - session: debounced search sessions and paginators
//   - home: parallel home screen loading
//   - preferences: stored city, district and league
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: standard.NewStandardHTTPClient(15 * time.Second),
//	    Logger:     logger,
//	}
//	gw := gateway.New(deps, "https://api.example.com", apiKey)
//	res := resolver.New(gw, deps)
//
//	dest, err := res.Resolve(ctx, "https://example.com/videos/some-slug")
//	if coreerrors.IsNotFound(err) {
//	    // stay on the current screen
//	}
package core
