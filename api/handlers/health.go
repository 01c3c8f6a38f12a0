package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"newsreader-core/api/dto/responses"
)

// HealthOutput is the liveness response
type HealthOutput struct {
	Body responses.HealthResponse
}

// RegisterHealth registers GET /health
func RegisterHealth(api huma.API, version string) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Liveness check",
		Tags:        []string{"System"},
	}, func(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
		return &HealthOutput{Body: responses.HealthResponse{Status: "ok", Version: version}}, nil
	})
}
