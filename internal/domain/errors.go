package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Jar errors
	ErrMsgCookieJarEmpty = "cookie jar is empty"

	// Meal errors
	ErrMsgNilMeal = "meal is nil"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrCookieJarEmpty is returned when a monster is asked to eat with nothing left in the jar
	ErrCookieJarEmpty = errors.New(ErrMsgCookieJarEmpty)

	ErrNilMeal = errors.New(ErrMsgNilMeal)
)
