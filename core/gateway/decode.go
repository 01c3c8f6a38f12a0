package gateway

import (
	"context"
	"encoding/json"

	coreerrors "newsreader-core/core/errors"
	"newsreader-core/core/normalize"
)

// list fetches ep and decodes its data as a list, discarding invalid items.
func list[T any](ctx context.Context, g *Gateway, ep Endpoint, decode func(normalize.Fields) (T, error)) ([]T, error) {
	var items []T
	err := g.do(ctx, ep, nil, func(body []byte) error {
		data, err := normalize.Unwrap(body)
		if err != nil {
			return err
		}
		var dropped int
		items, dropped, err = normalize.List(data, "data", decode)
		if dropped > 0 {
			g.deps.Logger.Warn("Discarded malformed items", map[string]interface{}{
				"endpoint": ep.Name(),
				"dropped":  dropped,
				"kept":     len(items),
			})
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// one fetches ep and decodes its data as a single record.
func one[T any](ctx context.Context, g *Gateway, ep Endpoint, decode func(normalize.Fields) (T, error)) (T, error) {
	var item T
	err := g.do(ctx, ep, nil, func(body []byte) error {
		data, err := normalize.Unwrap(body)
		if err != nil {
			return err
		}
		item, err = normalize.One(data, "data", decode)
		return err
	})
	return item, err
}

// value fetches ep and decodes its data directly into T. It is used for
// service widgets, which carry no normalization rules.
func value[T any](ctx context.Context, g *Gateway, ep Endpoint) (T, error) {
	var out T
	err := g.do(ctx, ep, nil, func(body []byte) error {
		data, err := normalize.Unwrap(body)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(data, &out); err != nil {
			return coreerrors.Malformed("data", err)
		}
		return nil
	})
	return out, err
}

// submit POSTs payload to ep. The envelope's data may be null, in which case
// the returned record is nil.
func submit[T any](ctx context.Context, g *Gateway, ep Endpoint, payload interface{}, decode func(normalize.Fields) (T, error)) (*T, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, coreerrors.WrapError(err, "encode request body")
	}

	var out *T
	err = g.do(ctx, ep, raw, func(body []byte) error {
		var env normalize.Envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return coreerrors.Malformed("envelope", err)
		}
		if !env.HasData() {
			return nil
		}
		item, err := normalize.One(env.Data, "data", decode)
		if err != nil {
			return err
		}
		out = &item
		return nil
	})
	return out, err
}
