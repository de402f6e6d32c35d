package apierrors

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"adventure-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	productionKey = "apierrors.production"
	loggerKey     = "apierrors.logger"
)

// ErrorBody is the error part of the envelope
type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Field   string       `json:"field,omitempty"`
	Path    string       `json:"path,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// ErrorResponse is the JSON structure returned to API clients for errors
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// Middleware installs the error mode and logger for the request and renders any
// error a handler attached with c.Error but did not respond to.
//
// In production the message of internal errors is replaced with a generic one.
func Middleware(logger *observability.Logger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(productionKey, production)
		c.Set(loggerKey, logger)
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		RespondWithError(c, c.Errors.Last().Err)
	}
}

// NoRoute answers unknown routes with a NOT_FOUND envelope that echoes the path
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error: ErrorBody{
			Code:    CodeNotFound,
			Message: "The requested endpoint does not exist",
			Path:    c.Request.URL.RequestURI(),
		},
	})
}

// RespondWithError handles error logging and sends a JSON envelope to the client.
// This is the primary function handlers should use for error responses.
//
// Example usage:
//
//	if err != nil {
//	    apierrors.RespondWithError(c, err)
//	    return
//	}
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := MapError(err)
	message := apiErr.Message
	if apiErr.StatusCode >= http.StatusInternalServerError && c.GetBool(productionKey) {
		message = "An unexpected error occurred"
	}

	if logger := loggerFrom(c); logger != nil {
		ctx := observability.WithFields(c.Request.Context(),
			observability.Field{Key: "status_code", Value: apiErr.StatusCode},
			observability.Field{Key: "error_code", Value: apiErr.Code},
			observability.Field{Key: "error_message", Value: apiErr.Message},
		)
		if apiErr.StatusCode >= http.StatusInternalServerError {
			logger.Error(ctx, "API error response", err)
		} else {
			logger.Info(ctx, "API error response")
		}
	}

	c.AbortWithStatusJSON(apiErr.StatusCode, ErrorResponse{
		Error: ErrorBody{
			Code:    apiErr.Code,
			Message: message,
			Field:   apiErr.Field,
			Details: apiErr.Details,
		},
	})
}

// RespondWithValidationError handles Gin binding/validation errors and returns
// structured validation error responses.
//
// This should be used when c.ShouldBindJSON or similar binding functions fail.
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	RespondWithError(c, BindingError(err))
}

// BindingError classifies an error returned by gin's binding into an APIError
func BindingError(err error) *APIError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return ValidationFailed(buildFieldErrors(validationErrs))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return ValidationFailed([]FieldError{{
			Field:   typeErr.Field,
			Message: typeErr.Field + " must be of type " + jsonTypeName(typeErr.Type.Kind().String()),
		}})
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return PayloadTooLarge("Request body is too large")
	}

	if errors.Is(err, io.EOF) {
		return BadRequest(CodeInvalidJSON, "Request body is required")
	}

	return BadRequest(CodeInvalidJSON, "Invalid request format. Please check your JSON syntax.")
}

func loggerFrom(c *gin.Context) *observability.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if logger, ok := v.(*observability.Logger); ok {
			return logger
		}
	}
	return nil
}

func jsonTypeName(kind string) string {
	switch kind {
	case "slice", "array":
		return "array"
	case "map", "struct":
		return "object"
	case "int", "int32", "int64", "float32", "float64":
		return "number"
	default:
		return kind
	}
}
