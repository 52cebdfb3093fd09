package services

import (
	"errors"

	apperrors "github.com/VV-Learning/question-bank-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")

	// Question specific errors
	ErrQuestionNotFound = errors.New("question not found")

	// Topic specific errors
	ErrTopicNotFound = errors.New("topic not found")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *ValidationError
	return errors.As(err, &single)
}

// IsNotFound reports whether err maps to an absent entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrQuestionNotFound) || errors.Is(err, ErrTopicNotFound)
}
