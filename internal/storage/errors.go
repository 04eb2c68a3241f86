package storage

import "errors"

// Error taxonomy surfaced to handlers. StateConflict is the expected,
// benign outcome of losing a race (someone else accepted first, or the
// caller already responded) and must never be reported like a store
// failure, which warrants a retry.
var (
	ErrNotFound      = errors.New("donation not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrForbidden     = errors.New("not allowed")
	ErrStateConflict = errors.New("no longer available")
)
