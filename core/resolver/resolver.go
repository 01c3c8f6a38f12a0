// ABOUTME: Deep-Link Resolver turns share links and notification payloads into destinations
// ABOUTME: Numeric ids resolve offline; slugs are matched against a bounded window of recent items

package resolver

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"newsreader-core/core/domain"
	coreerrors "newsreader-core/core/errors"
	"newsreader-core/core/interfaces"
)

// DefaultWindowSize is how many recent items a slug is searched in.
const DefaultWindowSize = 100

// Source lists the most recent items of a kind. *gateway.Gateway satisfies it.
type Source interface {
	Latest(ctx context.Context, kind domain.ContentKind, limit int) ([]domain.ContentReference, error)
}

// Resolver resolves one inbound link at a time.
type Resolver struct {
	source Source
	logger interfaces.Logger
	window int
	// slot serializes resolutions so rapid taps cannot navigate twice.
	slot chan struct{}
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithWindowSize sets how many recent items are searched for a slug.
func WithWindowSize(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.window = n
		}
	}
}

// New creates a resolver over source.
func New(source Source, deps interfaces.Dependencies, opts ...Option) *Resolver {
	deps = deps.WithDefaults()
	r := &Resolver{
		source: source,
		logger: deps.Logger,
		window: DefaultWindowSize,
		slot:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Target is a parsed deep link before resolution.
type Target struct {
	Kind domain.ContentKind
	// Slug is the last path segment: a numeric id or a slug.
	Slug string
}

// Parse classifies rawURL by its first path segment and takes the last
// segment as the slug. Bare host/path links without a scheme are accepted.
func Parse(rawURL string) (Target, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return Target{}, &coreerrors.ValidationError{Field: "url", Message: "URL cannot be empty"}
	}

	u, err := url.Parse(rawURL)
	if err == nil && u.Scheme == "" && u.Host == "" && looksLikeHost(rawURL) {
		u, err = url.Parse("https://" + rawURL)
	}
	if err != nil {
		return Target{}, &coreerrors.ValidationError{Field: "url", Message: "invalid URL format"}
	}

	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return Target{}, &coreerrors.ResolutionError{URL: rawURL}
	}

	return Target{
		Kind: kindOf(segments[0]),
		Slug: segments[len(segments)-1],
	}, nil
}

// looksLikeHost reports whether the first segment of a scheme-less link is a
// domain name, as in "news.example/videos/slug".
func looksLikeHost(rawURL string) bool {
	first := strings.SplitN(rawURL, "/", 2)[0]
	return strings.Contains(first, ".")
}

func kindOf(segment string) domain.ContentKind {
	switch strings.ToLower(segment) {
	case "videos", "video":
		return domain.KindVideo
	case "galleries", "gallery":
		return domain.KindGallery
	default:
		return domain.KindPost
	}
}

// Resolve returns the destination rawURL points at. A numeric slug is used as
// the id without any fetch; otherwise the most recent window of items is
// searched for an exact slug match. Any miss, including a failed fetch, is a
// *errors.ResolutionError. Misses are logged and never retried.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (domain.Destination, error) {
	target, err := Parse(rawURL)
	if err != nil {
		return domain.Destination{}, err
	}

	if id, err := strconv.Atoi(target.Slug); err == nil {
		return domain.Destination{Kind: target.Kind, ID: id}, nil
	}

	select {
	case r.slot <- struct{}{}:
		defer func() { <-r.slot }()
	case <-ctx.Done():
		return domain.Destination{}, &coreerrors.ResolutionError{URL: rawURL, Slug: target.Slug, Cause: ctx.Err()}
	}

	resolutionID := uuid.NewString()
	fields := map[string]interface{}{
		"resolution_id": resolutionID,
		"url":           rawURL,
		"kind":          string(target.Kind),
		"slug":          target.Slug,
		"window":        r.window,
	}
	r.logger.Debug("Resolving deep link", fields)

	items, err := r.source.Latest(ctx, target.Kind, r.window)
	if err != nil {
		fields["error"] = err.Error()
		r.logger.Warn("Deep link window fetch failed", fields)
		return domain.Destination{}, &coreerrors.ResolutionError{URL: rawURL, Slug: target.Slug, Cause: err}
	}

	for _, item := range items {
		if item.Slug != nil && *item.Slug == target.Slug {
			return domain.Destination{Kind: target.Kind, ID: item.ID}, nil
		}
	}

	fields["searched"] = len(items)
	r.logger.Warn("Deep link did not resolve", fields)
	return domain.Destination{}, &coreerrors.ResolutionError{URL: rawURL, Slug: target.Slug}
}

// HandleURL resolves rawURL and navigates there. Nothing is navigated on failure.
func (r *Resolver) HandleURL(ctx context.Context, rawURL string, nav interfaces.Navigator) error {
	dest, err := r.Resolve(ctx, rawURL)
	if err != nil {
		return err
	}
	nav.Navigate(dest)
	return nil
}

// HandleNotification extracts the link of a push payload, resolves it and
// navigates there.
func (r *Resolver) HandleNotification(ctx context.Context, payload map[string]interface{}, nav interfaces.Navigator) error {
	link := NotificationURL(payload)
	if link == "" {
		r.logger.Info("Notification carries no link", map[string]interface{}{"keys": len(payload)})
		return &coreerrors.ValidationError{Field: "url", Message: "notification payload has no URL"}
	}
	return r.HandleURL(ctx, link, nav)
}
