package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
)

// User-facing messages for failures that carry no backend explanation.
const (
	MessageGeneric    = "An error occurred"
	MessageNoResponse = "Server is not responding. Check your internet connection."
	MessageDispatch   = "Error sending request"
)

// Kind classifies where a request failed.
type Kind int

const (
	// KindBackend means the server answered with a non-success status.
	KindBackend Kind = iota + 1
	// KindNoResponse means the request left but nothing came back.
	KindNoResponse
	// KindDispatch means the request could not be built or sent.
	KindDispatch
)

func (k Kind) String() string {
	switch k {
	case KindBackend:
		return "backend"
	case KindNoResponse:
		return "no_response"
	case KindDispatch:
		return "dispatch"
	default:
		return "unknown"
	}
}

// Error is the only error type the Gateway returns. Message is ready to be
// shown to a user as-is.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool { return StatusOf(err) == http.StatusUnauthorized }

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool { return StatusOf(err) == http.StatusNotFound }

func backendError(status int, body []byte) *Error {
	return &Error{Kind: KindBackend, Status: status, Message: extractMessage(body)}
}

// extractMessage pulls the display message out of a failure body:
//
//	{"detail": {"detail": "...", "error": "..."}}  -> detail.detail, then detail.error
//	{"detail": "..."}                              -> detail
//	anything else                                  -> MessageGeneric
func extractMessage(body []byte) string {
	var env struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return MessageGeneric
	}
	raw := bytes.TrimSpace(env.Detail)
	if len(raw) == 0 {
		return MessageGeneric
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return MessageGeneric
		}
		for _, key := range []string{"detail", "error"} {
			var s string
			if err := json.Unmarshal(obj[key], &s); err == nil && s != "" {
				return s
			}
		}
	}
	return MessageGeneric
}
