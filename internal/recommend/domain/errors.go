package domain

import "errors"

// ErrQueryRequired is returned when the request carries no usable query.
// The message doubles as the HTTP error body, so it stays user-facing.
var ErrQueryRequired = errors.New("query (string) is required")

// ErrAPIKeyMissing is returned when no OpenAI credential was configured.
// Operator action is required; retrying the request cannot help.
var ErrAPIKeyMissing = errors.New("OPENAI_API_KEY is not set. Please add it to environment variables.")

// UpstreamError wraps any failure of the provider call: network errors,
// non-2xx responses, or output that does not parse against the schema.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "fetch recommendations: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Detail is the diagnostic string surfaced to the client alongside the
// generic upstream failure message.
func (e *UpstreamError) Detail() string {
	if e.Err == nil {
		return "unknown error"
	}
	return e.Err.Error()
}
