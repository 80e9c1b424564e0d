package services

import "errors"

var (
	// ErrValidation marks input rejected before any store interaction.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence marks a read or write the backing store refused or
	// failed to complete. No retry is attempted; the caller must not
	// assume anything was recorded.
	ErrPersistence = errors.New("persistence failed")
)
