package api

import "strings"

// invalidSessionMessages are the backend's literal phrases that mean the
// session itself is dead, as opposed to a page-scoped authorization failure.
// The backend exposes no structured error codes, so classification is
// message-text based; keep the coupling inside this one predicate.
var invalidSessionMessages = []string{
	"token es inválido o ha expirado",
	"usuario no encontrado",
	"usuario deshabilitado",
}

// IsInvalidSessionMessage reports whether a 401/403 error text requires a
// forced logout. Matching is case-insensitive substring containment.
func IsInvalidSessionMessage(msg string) bool {
	msg = strings.ToLower(msg)
	for _, phrase := range invalidSessionMessages {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}
