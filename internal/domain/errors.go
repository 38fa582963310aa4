package domain

import "errors"

var (
	// ErrNotFound is returned for an unknown beach ID.
	ErrNotFound = errors.New("beach not found")
	// ErrDuplicateID is returned when registering an ID that already exists.
	ErrDuplicateID = errors.New("beach already exists")
	// ErrProtected is returned when deleting a protected beach.
	ErrProtected = errors.New("beach is protected")
	// ErrInvalidBeach is returned when a beach fails validation.
	ErrInvalidBeach = errors.New("invalid beach")
	// ErrUpstream is returned when a weather provider call fails.
	ErrUpstream = errors.New("upstream weather provider failed")
	// ErrStorage is returned when the registry cannot be read or written.
	ErrStorage = errors.New("registry storage failed")
)
