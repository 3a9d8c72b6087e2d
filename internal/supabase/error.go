package supabase

import (
	"encoding/json"
	"fmt"
)

// APIError is a decoded upstream failure. GoTrue and PostgREST use different
// body shapes, so every known message key is captured and the first
// non-empty one wins.
type APIError struct {
	Status int `json:"-"`

	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorText        string `json:"error"`
	ErrorDescription string `json:"error_description"`

	// Code is a number on GoTrue bodies and a SQLSTATE string on PostgREST
	// bodies, hence the raw form.
	Code json.RawMessage `json:"code"`
}

func (e *APIError) Error() string {
	for _, m := range []string{e.Msg, e.ErrorDescription, e.Message, e.ErrorText} {
		if m != "" {
			return m
		}
	}
	return fmt.Sprintf("supabase: request failed with status %d", e.Status)
}

// HTTPStatus exposes the upstream status so callers can classify failures
// without depending on this package's concrete type.
func (e *APIError) HTTPStatus() int { return e.Status }
