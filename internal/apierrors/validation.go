package apierrors

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// buildFieldErrors turns validator errors into one entry per violated field
func buildFieldErrors(validationErrs validator.ValidationErrors) []FieldError {
	details := make([]FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, FieldError{
			Field:   fieldErr.Field(),
			Message: getValidationMessage(fieldErr),
		})
	}
	return details
}

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	tag := fieldErr.Tag()
	isList := fieldErr.Kind().String() == "slice"

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email address"
	case "min":
		if isList {
			return fmt.Sprintf("Select at least %s option(s) for %s", fieldErr.Param(), field)
		}
		return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
	case "max":
		if isList {
			return fmt.Sprintf("Select at most %s options for %s", fieldErr.Param(), field)
		}
		return fmt.Sprintf("%s must not exceed %s characters", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
	case "url":
		return "Invalid website URL"
	case "personname":
		return "Name can only contain letters and spaces"
	case "phone":
		return "Invalid phone number"
	case "adventure":
		return fmt.Sprintf("%s must be one of: water air land", field)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, tag)
	}
}
