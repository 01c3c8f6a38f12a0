package normalize

import (
	"encoding/json"

	coreerrors "newsreader-core/core/errors"
)

// Envelope is the outer shape of every API response.
type Envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   bool            `json:"error"`
	Message string          `json:"message"`
}

// HasData reports whether the envelope carries a non-null data member.
func (e Envelope) HasData() bool {
	return present(e.Data)
}

// Unwrap parses body as an envelope and returns its data member.
// The error flag is informational; status codes carry the outcome.
func Unwrap(body []byte) (json.RawMessage, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, coreerrors.Malformed("envelope", err)
	}
	if !env.HasData() {
		return nil, coreerrors.Missing("data")
	}
	return env.Data, nil
}

// Message extracts the message member of a JSON body, or "".
func Message(body []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Message
}
