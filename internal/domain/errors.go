package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownProperty marks a request for a property outside the allowed set.
// This is a caller/configuration error, not a data error: handlers translate
// it to a 400.
var ErrUnknownProperty = errors.New("unknown property")

// ErrSourceUnavailable marks a data-source failure (e.g. the database could
// not execute the query). Distinct from an empty result so callers can retry.
var ErrSourceUnavailable = errors.New("data source unavailable")

// UnknownPropertyError wraps ErrUnknownProperty with the offending name.
func UnknownPropertyError(property string) error {
	return fmt.Errorf("%w: %q", ErrUnknownProperty, property)
}
