package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// FallbackMessage is shown when neither the server error field nor the
// message field carries anything usable (network failures included).
const FallbackMessage = "Ha ocurrido un error inesperado"

// Error is a server-reported failure. ErrText mirrors the backend's "error"
// field, Message its "message" field.
type Error struct {
	Status  int
	ErrText string
	Message string
	Body    []byte
}

func newError(status int, body []byte) *Error {
	e := &Error{Status: status, Body: body}
	var payload struct {
		Err     string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		e.ErrText = payload.Err
		e.Message = payload.Message
	}
	return e
}

func (e *Error) Error() string {
	if e.ErrText != "" {
		return fmt.Sprintf("server status %d: %s", e.Status, e.ErrText)
	}
	if e.Message != "" {
		return fmt.Sprintf("server status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server status %d", e.Status)
}

// ErrorMessage extracts the human-readable message in priority order: the
// server "error" field, then "message", then the localized fallback.
// Transport errors get the fallback.
func ErrorMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.ErrText != "" {
			return apiErr.ErrText
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return FallbackMessage
}
