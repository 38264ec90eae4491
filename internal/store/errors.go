package store

import "errors"

// Sentinel errors mapped to HTTP statuses by the handler layer.
var (
	// ErrNotFound is returned when the target document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrReferenceNotFound is returned when a referenced document cannot
	// be resolved before a write.
	ErrReferenceNotFound = errors.New("referenced document not found")

	// ErrInvalidID is returned when an identifier is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid id")
)
