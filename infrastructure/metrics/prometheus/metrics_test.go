package prometheus

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"newsreader-core/core/interfaces"
)

var _ interfaces.Metrics = (*Metrics)(nil)

func TestMetrics_ObserveFetch(t *testing.T) {
	m := New("newsreader")

	m.ObserveFetch("posts", "ok", 20*time.Millisecond)
	m.ObserveFetch("posts", "ok", 30*time.Millisecond)
	m.ObserveFetch("posts", "server", time.Second)
	m.ObserveFetch("videos", "decode", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("posts", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("posts", "server")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("videos", "decode")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.latency))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("newsreader")
	m.ObserveFetch("authors", "ok", time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `newsreader_content_requests_total{collection="authors",outcome="ok"} 1`), body)
	assert.True(t, strings.Contains(body, "newsreader_content_request_duration_seconds"), body)
}
