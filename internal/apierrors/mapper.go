package apierrors

import (
	"errors"

	apilogsProcessor "adventure-server/internal/apilogs/processor"
	eventsProcessor "adventure-server/internal/events/processor"
	newsletterProcessor "adventure-server/internal/newsletter/processor"
	partnersProcessor "adventure-server/internal/partners/processor"
	"adventure-server/internal/store"
	usersProcessor "adventure-server/internal/users/processor"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns an InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Users
	case errors.Is(err, usersProcessor.ErrDuplicateEmail):
		return Conflict(CodeDuplicateEmail, "A user with this email already exists").WithField("email")

	case errors.Is(err, usersProcessor.ErrInvalidToken):
		return NotFound(CodeInvalidToken, "Invalid or expired verification token")

	case errors.Is(err, usersProcessor.ErrAlreadyVerified):
		return BadRequest(CodeAlreadyVerified, "Email has already been verified")

	// Partners
	case errors.Is(err, partnersProcessor.ErrDuplicateEmail):
		return Conflict(CodeDuplicateEmail, "A partner with this email already exists").WithField("email")

	case errors.Is(err, partnersProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Status must be pending, approved, or rejected")

	case errors.Is(err, partnersProcessor.ErrPartnerNotFound):
		return NotFound(CodePartnerNotFound, "Partner not found")

	// Event registrations
	case errors.Is(err, eventsProcessor.ErrAlreadyRegistered):
		return Conflict(CodeAlreadyRegistered, "You have already registered for this event").WithField("email")

	case errors.Is(err, eventsProcessor.ErrRegistrationNotFound):
		return NotFound(CodeRegistrationMissing, "Registration not found")

	// Newsletter
	case errors.Is(err, newsletterProcessor.ErrAlreadySubscribed):
		return Conflict(CodeAlreadySubscribed, "This email is already subscribed").WithField("email")

	// API logs
	case errors.Is(err, apilogsProcessor.ErrMissingEvent):
		return BadRequest(CodeMissingEvent, "Event name is required")

	case errors.Is(err, apilogsProcessor.ErrInvalidDate):
		return BadRequest(CodeInvalidDate, "Dates must be RFC3339 or YYYY-MM-DD")

	// Store errors that escaped a processor
	case errors.Is(err, store.ErrDuplicate):
		return Conflict(CodeDuplicateEntry, "Duplicate value entered for a unique field")

	case errors.Is(err, store.ErrConstraint):
		return BadRequest(CodeDatabaseError, "Database operation failed")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return InternalError(err)
	}
}
