package services

import "errors"

var (
	// ErrValidation is returned when a request fails input validation
	ErrValidation = errors.New("validation failed")

	// ErrStorageUnavailable is returned when the store cannot serve a request
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// IsValidation reports whether err was caused by invalid input
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsStorageUnavailable reports whether err was caused by a store failure
func IsStorageUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}
