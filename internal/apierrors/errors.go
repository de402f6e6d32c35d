package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned to API clients
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeInvalidJSON         = "INVALID_JSON"
	CodePayloadTooLarge     = "PAYLOAD_TOO_LARGE"
	CodeDuplicateEmail      = "DUPLICATE_EMAIL"
	CodeDuplicateEntry      = "DUPLICATE_ENTRY"
	CodeDatabaseError       = "DATABASE_ERROR"
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeAlreadyVerified     = "ALREADY_VERIFIED"
	CodeInvalidStatus       = "INVALID_STATUS"
	CodePartnerNotFound     = "PARTNER_NOT_FOUND"
	CodeAlreadyRegistered   = "ALREADY_REGISTERED"
	CodeRegistrationMissing = "REGISTRATION_NOT_FOUND"
	CodeAlreadySubscribed   = "ALREADY_SUBSCRIBED"
	CodeMissingEvent        = "MISSING_EVENT"
	CodeInvalidDate         = "INVALID_DATE"
	CodeNotFound            = "NOT_FOUND"
	CodeRateLimitExceeded   = "RATE_LIMIT_EXCEEDED"
	CodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	CodeInternal            = "INTERNAL_SERVER_ERROR"
)

// FieldError describes a single violated field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is an error that knows how it should be rendered to clients
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Field      string
	Details    []FieldError
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// WithField tags the error with the offending request field
func (e *APIError) WithField(field string) *APIError {
	e.Field = field
	return e
}

// BadRequest creates a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// NotFound creates a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// Conflict creates a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// PayloadTooLarge creates a 413 error
func PayloadTooLarge(message string) *APIError {
	return &APIError{StatusCode: http.StatusRequestEntityTooLarge, Code: CodePayloadTooLarge, Message: message}
}

// TooManyRequests creates a 429 error
func TooManyRequests(message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: CodeRateLimitExceeded, Message: message}
}

// ServiceUnavailable creates a 503 error and keeps the cause for logging
func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// InternalError creates a 500 error. The message shown to clients depends on the
// environment, see RespondWithError.
func InternalError(err error) *APIError {
	message := "An unexpected error occurred"
	if err != nil {
		message = err.Error()
	}
	return &APIError{StatusCode: http.StatusInternalServerError, Code: CodeInternal, Message: message, Err: err}
}

// ValidationFailed creates a 400 error carrying per-field details
func ValidationFailed(details []FieldError) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       CodeValidation,
		Message:    "Invalid input data",
		Details:    details,
	}
}
