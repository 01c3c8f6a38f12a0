package normalize

import (
	"encoding/json"

	coreerrors "newsreader-core/core/errors"
)

// List decodes a JSON array with decode. Elements that are not objects or
// that fail decoding are discarded; dropped counts them. The array itself
// must be present and well formed.
func List[T any](raw json.RawMessage, field string, decode func(Fields) (T, error)) (items []T, dropped int, err error) {
	if !present(raw) {
		return nil, 0, coreerrors.Missing(field)
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, 0, coreerrors.Malformed(field, err)
	}

	items = make([]T, 0, len(elems))
	for _, e := range elems {
		var f Fields
		if err := json.Unmarshal(e, &f); err != nil || f == nil {
			dropped++
			continue
		}
		item, err := decode(f)
		if err != nil {
			dropped++
			continue
		}
		items = append(items, item)
	}
	return items, dropped, nil
}

// One decodes a single JSON object with decode.
func One[T any](raw json.RawMessage, field string, decode func(Fields) (T, error)) (T, error) {
	f, err := Object(raw, field)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode(f)
}
