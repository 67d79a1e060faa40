package ruledoc

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrNoResolver is returned when normalization has no resolver to call.
	ErrNoResolver = errors.New("ruledoc: no ruleset resolver configured")
	// ErrResolve wraps failures reported by the resolver.
	ErrResolve = errors.New("ruledoc: resolve rules")
)

// ValidationErrors maps parameter names to their validation errors.
// It is an alias for [validation.Errors] from ozzo-validation.
type ValidationErrors = validation.Errors
