package core

import "errors"

var (
	// ErrInvalidProfileURL means the input does not parse to a usable profile
	// identifier. Surfaced before any fetch is attempted.
	ErrInvalidProfileURL = errors.New("invalid Reddit profile URL")

	// ErrNotFound means the provider has no activity record for the username.
	// Callers fall back to a minimal synthetic record rather than failing.
	ErrNotFound = errors.New("no activity record for user")

	// ErrMalformedRecord means a record is missing required fields. Fatal;
	// extraction is not attempted.
	ErrMalformedRecord = errors.New("malformed activity record")
)
