// ABOUTME: Payload Normalizer maps loosely-typed API JSON onto the canonical domain model
// ABOUTME: Required fields fail with DecodeError; optional fields degrade to zero values

// Package normalize converts raw API payloads into core/domain values.
// All functions are pure: they read the input bytes and allocate fresh values.
//
// Required fields (ids, names, slugs of detail views, content bodies, list
// images) that are absent or have the wrong shape produce a *errors.DecodeError.
// Optional fields that cannot be read degrade silently to their zero value.
package normalize

import (
	"bytes"
	"encoding/json"

	coreerrors "newsreader-core/core/errors"
)

// Fields is a JSON object whose values are decoded lazily.
type Fields map[string]json.RawMessage

// Object parses raw as a JSON object. field names the value in errors.
func Object(raw json.RawMessage, field string) (Fields, error) {
	if !present(raw) {
		return nil, coreerrors.Missing(field)
	}
	var f Fields
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, coreerrors.Malformed(field, err)
	}
	return f, nil
}

// present reports whether raw holds a non-null value.
func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// Has reports whether key holds a non-null value.
func (f Fields) Has(key string) bool {
	return present(f[key])
}

// Int decodes a required integer.
func (f Fields) Int(key string) (int, error) {
	raw := f[key]
	if !present(raw) {
		return 0, coreerrors.Missing(key)
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, coreerrors.Malformed(key, err)
	}
	return v, nil
}

// OptionalInt decodes an integer, returning nil when absent or not an integer.
func (f Fields) OptionalInt(key string) *int {
	raw := f[key]
	if !present(raw) {
		return nil
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

// IntOr decodes an optional integer with a default.
func (f Fields) IntOr(key string, def int) int {
	if v := f.OptionalInt(key); v != nil {
		return *v
	}
	return def
}

// String decodes a required string.
func (f Fields) String(key string) (string, error) {
	raw := f[key]
	if !present(raw) {
		return "", coreerrors.Missing(key)
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", coreerrors.Malformed(key, err)
	}
	return v, nil
}

// OptionalString decodes a string, returning "" when absent or not a string.
func (f Fields) OptionalString(key string) string {
	if p := f.StringPtr(key); p != nil {
		return *p
	}
	return ""
}

// StringPtr decodes a string, returning nil when absent or not a string.
func (f Fields) StringPtr(key string) *string {
	raw := f[key]
	if !present(raw) {
		return nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

// StringMap decodes a string-to-string map. Anything else yields an empty map.
func (f Fields) StringMap(key string) map[string]string {
	out := map[string]string{}
	raw := f[key]
	if !present(raw) {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]string{}
	}
	return out
}

// Strings decodes a list of strings. Anything else yields an empty list.
func (f Fields) Strings(key string) []string {
	out := []string{}
	raw := f[key]
	if !present(raw) {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}

// Flag decodes a 0/1 integer or boolean switch.
func (f Fields) Flag(key string) bool {
	raw := f[key]
	if !present(raw) {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	return f.IntOr(key, 0) != 0
}
