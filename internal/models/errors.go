package models

import "errors"

var (
	// ErrStoreUnavailable wraps any failure to reach or query the database.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrNotFound is returned when the target row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument marks input outside the accepted domain.
	ErrInvalidArgument = errors.New("invalid argument")
)
