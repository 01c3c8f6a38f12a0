// ABOUTME: Content Fetch Gateway performs one logical API request and classifies the outcome
// ABOUTME: Failures become FetchError kinds; payloads are unwrapped and handed to the normalizer

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	coreerrors "newsreader-core/core/errors"
	"newsreader-core/core/interfaces"
	"newsreader-core/core/normalize"
)

const (
	apiPrefix = "api/v2"

	// maxBodySize caps how much of a response is read.
	maxBodySize = 8 << 20

	// maxMessageLen caps error messages taken from raw bodies.
	maxMessageLen = 200
)

// Endpoint describes one API request.
type Endpoint struct {
	// Collection is the first path segment, e.g. "posts" or "services".
	Collection string
	// Path holds the remaining segments. They are escaped when joined.
	Path []string

	Page     int
	PerPage  int
	Limit    int
	Search   string
	City     string
	District string

	// Params holds any other query parameters.
	Params map[string]string
}

// Name returns the unescaped path, used as the label in logs and metrics.
func (e Endpoint) Name() string {
	return strings.Join(append([]string{e.Collection}, e.Path...), "/")
}

func (e Endpoint) query(apiKey string) url.Values {
	q := url.Values{}
	if apiKey != "" {
		q.Set("apiKey", apiKey)
	}
	if e.Page > 0 {
		q.Set("page", strconv.Itoa(e.Page))
	}
	if e.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(e.PerPage))
	}
	if e.Limit > 0 {
		q.Set("limit", strconv.Itoa(e.Limit))
	}
	if e.Search != "" {
		q.Set("search", e.Search)
	}
	if e.City != "" {
		q.Set("city", e.City)
	}
	if e.District != "" {
		q.Set("district", e.District)
	}
	for k, v := range e.Params {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}

// Gateway talks to the content API through the injected transport.
// It never retries; retry policy belongs to the transport.
type Gateway struct {
	deps    interfaces.Dependencies
	baseURL string
	apiKey  string
}

// New creates a gateway for the API rooted at baseURL.
func New(deps interfaces.Dependencies, baseURL, apiKey string) *Gateway {
	return &Gateway{
		deps:    deps.WithDefaults(),
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// URL builds the request URL for ep.
func (g *Gateway) URL(ep Endpoint) string {
	segments := make([]string, 0, len(ep.Path)+1)
	segments = append(segments, url.PathEscape(ep.Collection))
	for _, p := range ep.Path {
		segments = append(segments, url.PathEscape(p))
	}
	u := g.baseURL + "/" + apiPrefix + "/" + strings.Join(segments, "/")
	if q := ep.query(g.apiKey).Encode(); q != "" {
		u += "?" + q
	}
	return u
}

// Fetch performs a GET for ep and returns the envelope's data member.
func (g *Gateway) Fetch(ctx context.Context, ep Endpoint) (json.RawMessage, error) {
	var out json.RawMessage
	err := g.do(ctx, ep, nil, func(body []byte) error {
		data, err := normalize.Unwrap(body)
		out = data
		return err
	})
	return out, err
}

// do runs one request and hands the classified response body to decode.
// The outcome, including decode failures, is logged and recorded once.
func (g *Gateway) do(ctx context.Context, ep Endpoint, body []byte, decode func([]byte) error) error {
	if g.deps.HTTPClient == nil {
		return &coreerrors.FetchError{Kind: coreerrors.KindTransport, Endpoint: ep.Name(), Cause: errors.New("HTTP client not configured")}
	}

	start := time.Now()
	raw, err := g.roundTrip(ctx, ep, body)
	if err == nil {
		err = decode(raw)
	}
	elapsed := time.Since(start)
	g.deps.Metrics.ObserveFetch(ep.Collection, coreerrors.Outcome(err), elapsed)

	fields := map[string]interface{}{
		"endpoint": ep.Name(),
		"elapsed":  elapsed.String(),
	}
	if err != nil {
		fields["error"] = err.Error()
		fields["outcome"] = coreerrors.Outcome(err)
		g.deps.Logger.Warn("Content fetch failed", fields)
		return err
	}
	g.deps.Logger.Debug("Content fetched", fields)
	return nil
}

func (g *Gateway) roundTrip(ctx context.Context, ep Endpoint, body []byte) ([]byte, error) {
	target := g.URL(ep)

	var (
		resp interfaces.Response
		err  error
	)
	if body != nil {
		resp, err = g.deps.HTTPClient.Post(ctx, target, bytes.NewReader(body))
	} else {
		resp, err = g.deps.HTTPClient.Get(ctx, target)
	}
	if err != nil {
		return nil, &coreerrors.FetchError{Kind: coreerrors.KindTransport, Endpoint: ep.Name(), Cause: err}
	}
	defer resp.Body().Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body(), maxBodySize))
	if err != nil {
		return nil, &coreerrors.FetchError{Kind: coreerrors.KindTransport, Endpoint: ep.Name(), StatusCode: resp.StatusCode(), Cause: err}
	}

	if err := classify(ep, resp.StatusCode(), resp.Header("Content-Type"), raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// classify returns nil for a usable response and a *FetchError otherwise.
// A 2xx body declared as HTML or plain text is an error page in disguise.
func classify(ep Endpoint, status int, contentType string, body []byte) error {
	if status >= 200 && status < 300 && !isTextual(contentType) && !looksLikeHTML(body) {
		return nil
	}

	kind := coreerrors.KindUnexpectedFormat
	switch {
	case status >= 500:
		kind = coreerrors.KindServer
	case status >= 400:
		kind = coreerrors.KindClient
	}

	return &coreerrors.FetchError{
		Kind:       kind,
		StatusCode: status,
		Endpoint:   ep.Name(),
		Message:    extractMessage(contentType, body),
	}
}

func isTextual(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/html") || strings.Contains(ct, "text/plain")
}

// looksLikeHTML sniffs bodies served without a usable content type.
func looksLikeHTML(body []byte) bool {
	head := bytes.ToLower(bytes.TrimSpace(body[:min(len(body), 512)]))
	return bytes.HasPrefix(head, []byte("<html")) || bytes.HasPrefix(head, []byte("<!doctype html"))
}

// extractMessage returns the best human readable message in an error body:
// a JSON message member, else an HTML title, else the start of the body.
func extractMessage(contentType string, body []byte) string {
	if msg := normalize.Message(body); msg != "" {
		return msg
	}

	if strings.Contains(strings.ToLower(contentType), "html") || bytes.Contains(bytes.ToLower(body[:min(len(body), 512)]), []byte("<html")) {
		if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body)); err == nil {
			if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
				return title
			}
		}
	}

	text := []rune(strings.TrimSpace(string(body)))
	if len(text) > maxMessageLen {
		text = text[:maxMessageLen]
	}
	return string(text)
}
