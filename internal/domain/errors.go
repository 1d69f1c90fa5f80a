package domain

import "errors"

var (
	// ErrValidation marks malformed submissions (empty items, bad totals).
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks lookups for unknown order or user ids.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition marks illegal status changes, including no-ops.
	ErrInvalidTransition = errors.New("invalid status transition")
)
