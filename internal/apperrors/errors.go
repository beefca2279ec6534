package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrMissingField indicates that a required input was absent.
var ErrMissingField = fmt.Errorf("%w: missing field", ErrValidation)

// ErrInvalidAmount indicates a negative amount or one declared with more than two decimal places.
var ErrInvalidAmount = fmt.Errorf("%w: invalid amount", ErrValidation)

// ErrInvalidField indicates a present but malformed field, e.g. an over-long description.
var ErrInvalidField = fmt.Errorf("%w: invalid field", ErrValidation)

// ErrRateNotFound indicates that no exchange rate satisfies the window for one or more transactions.
var ErrRateNotFound = errors.New("exchange rate not found")

// ErrRatesUnavailable indicates that the upstream rate source returned nothing or failed.
var ErrRatesUnavailable = errors.New("exchange rates unavailable")

// AppError carries a user-facing message and an HTTP-ish code alongside the underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewMissingFieldError reports an absent required input.
func NewMissingFieldError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrMissingField)
}

// NewInvalidAmountError reports an amount that is negative or over-precise.
func NewInvalidAmountError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidAmount)
}

// NewInvalidFieldError reports a malformed field.
func NewInvalidFieldError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidField)
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewRateNotFoundError reports that no rate qualified.
func NewRateNotFoundError(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, message, ErrRateNotFound)
}

// NewRatesUnavailableError reports an upstream rate source failure. cause may be nil.
func NewRatesUnavailableError(message string, cause error) *AppError {
	if cause == nil {
		return NewAppError(http.StatusBadGateway, message, ErrRatesUnavailable)
	}
	return NewAppError(http.StatusBadGateway, message, fmt.Errorf("%w: %w", ErrRatesUnavailable, cause))
}

// Message returns the user-facing message carried by err, or fallback when err is not an AppError.
func Message(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

// StatusCode maps err onto an HTTP status code.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrRateNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrRatesUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
