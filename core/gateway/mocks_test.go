package gateway

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"newsreader-core/core/interfaces"
)

// mockHTTPClient records requests and answers with a canned response.
type mockHTTPClient struct {
	mu       sync.Mutex
	urls     []string
	bodies   []string
	getFunc  func(ctx context.Context, url string) (interfaces.Response, error)
	postFunc func(ctx context.Context, url string, body io.Reader) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	m.urls = append(m.urls, url)
	m.mu.Unlock()
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	b, _ := io.ReadAll(body)
	m.mu.Lock()
	m.urls = append(m.urls, url)
	m.bodies = append(m.bodies, string(b))
	m.mu.Unlock()
	if m.postFunc != nil {
		return m.postFunc(ctx, url, strings.NewReader(string(b)))
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

func jsonResponse(status int, body string) *mockResponse {
	return &mockResponse{
		statusCode: status,
		body:       body,
		headers:    map[string]string{"Content-Type": "application/json; charset=utf-8"},
	}
}

// respondWith returns a client that always answers with resp.
func respondWith(resp *mockResponse) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return resp, nil
		},
		postFunc: func(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
			return resp, nil
		},
	}
}

type observation struct {
	collection string
	outcome    string
}

type mockMetrics struct {
	mu  sync.Mutex
	obs []observation
}

func (m *mockMetrics) ObserveFetch(collection, outcome string, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.obs = append(m.obs, observation{collection, outcome})
}

type logEntry struct {
	level string
	msg   string
}

type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *mockLogger) log(level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level, msg})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.log("debug", msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.log("info", msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.log("warn", msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.log("error", msg) }
