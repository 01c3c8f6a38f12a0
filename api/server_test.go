package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsreader-core/api/handlers"
	"newsreader-core/core/domain"
)

type staticResolver struct{}

func (staticResolver) Resolve(ctx context.Context, rawURL string) (domain.Destination, error) {
	return domain.Destination{Kind: domain.KindGallery, ID: 5}, nil
}

func TestNewAPI_Info(t *testing.T) {
	api, router := NewAPI(Config{})

	require.NotNil(t, router)
	assert.Equal(t, "Newsreader API", api.OpenAPI().Info.Title)
	assert.Equal(t, Version, api.OpenAPI().Info.Version)
}

func TestNewAPI_RoutesAndMetrics(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("# metrics"))
	})
	api, router := NewAPI(Config{Metrics: metrics})
	Register(api, handlers.NewResolveHandler(staticResolver{}))

	tests := []struct {
		path     string
		wantCode int
		contains string
	}{
		{"/health", http.StatusOK, `"status":"ok"`},
		{"/metrics", http.StatusOK, "# metrics"},
		{"/resolve?url=example.com/galleries/x", http.StatusOK, `"kind":"gallery"`},
		{"/openapi.json", http.StatusOK, "/notifications/resolve"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.True(t, strings.Contains(rec.Body.String(), tt.contains), rec.Body.String())
		})
	}
}

func TestNewAPI_CORS(t *testing.T) {
	api, router := NewAPI(Config{AllowedOrigins: []string{"https://app.example.com"}})
	Register(api)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewAPI_RateLimited(t *testing.T) {
	api, router := NewAPI(Config{RateLimit: 0.001, RateBurst: 1})
	Register(api)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "10.1.1.1:9000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
