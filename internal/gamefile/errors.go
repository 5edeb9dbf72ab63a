package gamefile

import "errors"

// Sentinel errors used across the parsers, generators, and services. Callers
// classify failures with errors.Is rather than matching message text.
var (
	// ErrFormat marks malformed text structure: a missing delimiter or an
	// unparseable required field. Always fatal to the single parse.
	ErrFormat = errors.New("format error")

	// ErrValidation marks a semantic constraint violation: out-of-range
	// stat, empty required input, name collision.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a referenced file or entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDecode marks bytes that are not valid Windows-1252.
	ErrDecode = errors.New("decode error")
)
