package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError != nil {
		return fmt.Sprintf("%s: %v", e.TechnicalMessage, e.OriginalError)
	}
	return e.TechnicalMessage
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Common error codes
const (
	ErrCodeInvalidParameter   = "INVALID_PARAMETER"
	ErrCodeInvalidCurrency    = "INVALID_CURRENCY"
	ErrCodeInvalidRate        = "INVALID_RATE"
	ErrCodeInvalidAmount      = "INVALID_AMOUNT"
	ErrCodeRateNotFound       = "RATE_NOT_FOUND"
	ErrCodePropertyNotFound   = "PROPERTY_NOT_FOUND"
	ErrCodeMessageNotFound    = "MESSAGE_NOT_FOUND"
	ErrCodeNotAuthorized      = "NOT_AUTHORIZED"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewInvalidParameter reports a malformed request parameter.
func NewInvalidParameter(field, value string) *AppError {
	return NewAppError(
		fmt.Sprintf("invalid value %q for parameter %q", value, field),
		MsgInvalidParameter,
		ErrCodeInvalidParameter,
		http.StatusBadRequest,
		nil,
	)
}

// NewInvalidCurrency reports a currency code outside the supported set.
func NewInvalidCurrency(code string) *AppError {
	return NewAppError(
		fmt.Sprintf("unsupported currency code %q", code),
		MsgInvalidCurrency,
		ErrCodeInvalidCurrency,
		http.StatusBadRequest,
		nil,
	)
}

// NewInvalidRate reports a non-positive or non-finite exchange rate.
func NewInvalidRate(rate float64) *AppError {
	return NewAppError(
		fmt.Sprintf("exchange rate must be a finite positive number, got %v", rate),
		MsgInvalidRate,
		ErrCodeInvalidRate,
		http.StatusBadRequest,
		nil,
	)
}

// NewInvalidAmount reports a negative conversion amount.
func NewInvalidAmount(amount float64) *AppError {
	return NewAppError(
		fmt.Sprintf("amount must be non-negative, got %v", amount),
		MsgInvalidAmount,
		ErrCodeInvalidAmount,
		http.StatusBadRequest,
		nil,
	)
}

// NewRateNotFound reports a missing direct and inverse rate for a pair.
func NewRateNotFound(base, target string) *AppError {
	return NewAppError(
		fmt.Sprintf("exchange rate not found for %s to %s", base, target),
		MsgRateNotFound,
		ErrCodeRateNotFound,
		http.StatusNotFound,
		nil,
	)
}

// NewPropertyNotFound reports a missing property record.
func NewPropertyNotFound(id string) *AppError {
	return NewAppError(
		fmt.Sprintf("property %s not found", id),
		MsgPropertyNotFound,
		ErrCodePropertyNotFound,
		http.StatusNotFound,
		nil,
	)
}

// NewNotAuthorized reports an ownership or role violation.
func NewNotAuthorized(action string) *AppError {
	return NewAppError(
		fmt.Sprintf("not authorized to %s", action),
		MsgNotAuthorized,
		ErrCodeNotAuthorized,
		http.StatusForbidden,
		nil,
	)
}

// HasCode reports whether err is (or wraps) an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
