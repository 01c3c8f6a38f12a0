// Package api exposes the newsreader core over HTTP for callers that cannot
// link the Go packages directly. It uses the Huma framework on a chi router,
// which provides OpenAPI documentation and input validation.
//
// # Layout
//
//   - server.go: router, middleware and OpenAPI configuration
//   - handlers/: resolution, content and health endpoints
//   - dto/responses/: response bodies
//   - middleware/: request ids and logging, per-client rate limiting
//
// # Endpoints
//
//	GET  /resolve?url=...            deep link to {kind, id}
//	POST /notifications/resolve      push payload to {kind, id}
//	GET  /search/posts?q=...         post search
//	GET  /authors?page=&search=      author listing
//	GET  /home                       home screen sections
//	GET  /health                     liveness
//	GET  /metrics                    Prometheus metrics, when configured
//
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
//
// # Usage
//
//	humaAPI, router := api.NewAPI(api.Config{
//	    Logger:    logger,
//	    RateLimit: 10,
//	    RateBurst: 20,
//	    Metrics:   metrics.Handler(),
//	})
//	api.Register(humaAPI,
//	    handlers.NewResolveHandler(res),
//	    handlers.NewContentHandler(gw, loader),
//	)
//	http.ListenAndServe(":8000", router)
//
// # Errors
//
// Errors use the RFC 7807 problem format. Core errors map to status codes:
// unresolved links are 404, invalid input is 400, an unavailable content
// service is 503 and a rejected or malformed upstream response is 502.
package api
