package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork is a transport or connectivity failure talking to the rate service.
	ErrNetwork = errors.New("network error")
	// ErrParse is a malformed or unexpected response body.
	ErrParse = errors.New("parse error")
	// ErrMissingRate is a well-formed response that lacks the requested currency.
	ErrMissingRate = errors.New("missing rate")
	// ErrInvalidInput is a negative amount, empty target set or malformed code.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSuperseded is returned to a request whose result was discarded because a newer one started.
	ErrSuperseded = errors.New("superseded by a newer request")
	// ErrNotFound is returned by key/value stores for a key that was never written or has expired.
	ErrNotFound = errors.New("not found")
)

// InvalidInputf builds an error wrapping ErrInvalidInput.
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
