package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"todo-api/internal/middleware"
	"todo-api/internal/services"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []middleware.ValidationError `json:"details,omitempty"`
}

// isValidationError checks if an error is a validation error
func isValidationError(err error) bool {
	return services.IsValidation(err)
}

// validationDetails extracts per-field errors from err, if it carries any
func validationDetails(err error) []middleware.ValidationError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return middleware.FormatValidationErrors(validationErrors)
	}
	return nil
}
