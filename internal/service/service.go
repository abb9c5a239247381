// Package service holds the per-entity resource actions: one async operation
// per verb, each performing a single HTTP call and mapping the outcome into
// store transitions. Actions never let a raw failure escape unclassified: the
// extracted message lands in the store and, for mutations, in a transient
// notification.
package service

import (
	"net/url"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// setIf adds a query parameter only when the value is non-empty; list
// endpoints treat missing and empty the same way.
func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

// ImageFile is a binary image attached to a dish payload.
type ImageFile struct {
	Name    string
	Content []byte
}
