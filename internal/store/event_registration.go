package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adventure-server/internal/observability"

	"github.com/google/uuid"
)

const eventRegistrationColumns = `id, event_slug, full_name, email, phone, attendee_type,
	dietary_restrictions, confirmed, created_at, updated_at`

const sqlCreateEventRegistration = `
INSERT INTO event_registrations (event_slug, full_name, email, phone, attendee_type, dietary_restrictions, confirmed)
VALUES ($1, $2, $3, $4, $5, $6, TRUE)
RETURNING ` + eventRegistrationColumns

// CreateEventRegistration inserts a confirmed registration. A second registration
// for the same event and email yields ErrDuplicate.
func (s *Store) CreateEventRegistration(ctx context.Context, params CreateEventRegistrationParams) (EventRegistration, error) {
	var registration EventRegistration
	err := s.db.GetContext(ctx, &registration, sqlCreateEventRegistration,
		params.EventSlug,
		params.FullName,
		params.Email,
		params.Phone,
		params.AttendeeType,
		params.DietaryRestrictions,
	)
	if err != nil {
		err = classifyError(err)
		if errors.Is(err, ErrDuplicate) {
			return EventRegistration{}, err
		}
		s.logger.Error(ctx, "failed to create event registration", err)
		return EventRegistration{}, fmt.Errorf("failed to create event registration: %w", err)
	}
	return registration, nil
}

const sqlGetEventRegistrationByEmail = `
SELECT ` + eventRegistrationColumns + `
FROM event_registrations
WHERE event_slug = $1 AND email = $2`

// GetEventRegistrationByEmail retrieves the registration of email for one event
func (s *Store) GetEventRegistrationByEmail(ctx context.Context, eventSlug, email string) (EventRegistration, error) {
	var registration EventRegistration
	err := s.db.GetContext(ctx, &registration, sqlGetEventRegistrationByEmail, eventSlug, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EventRegistration{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get event registration by email", err)
		return EventRegistration{}, fmt.Errorf("failed to get event registration by email: %w", err)
	}
	return registration, nil
}

// ListEventRegistrations returns registrations newest first with optional filters
func (s *Store) ListEventRegistrations(ctx context.Context, params ListEventRegistrationsParams) (ListEventRegistrationsResult, error) {
	query := `SELECT ` + eventRegistrationColumns + ` FROM event_registrations WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM event_registrations WHERE 1=1`

	args := []interface{}{}
	argCount := 0

	if params.EventSlug != nil {
		argCount++
		filter := fmt.Sprintf(" AND event_slug = $%d", argCount)
		query += filter
		countQuery += filter
		args = append(args, *params.EventSlug)
	}

	if params.AttendeeType != nil {
		argCount++
		filter := fmt.Sprintf(" AND attendee_type = $%d", argCount)
		query += filter
		countQuery += filter
		args = append(args, *params.AttendeeType)
	}

	var totalCount int
	if err := s.db.GetContext(ctx, &totalCount, countQuery, args...); err != nil {
		s.logger.Error(ctx, "failed to count event registrations", err)
		return ListEventRegistrationsResult{}, fmt.Errorf("failed to count event registrations: %w", err)
	}

	offset := pageOffset(params.Page, params.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", argCount+1, argCount+2)
	args = append(args, params.Limit, offset)

	registrations := []EventRegistration{}
	if err := s.db.SelectContext(ctx, &registrations, query, args...); err != nil {
		s.logger.Error(ctx, "failed to list event registrations", err)
		return ListEventRegistrationsResult{}, fmt.Errorf("failed to list event registrations: %w", err)
	}

	return ListEventRegistrationsResult{
		Registrations: registrations,
		TotalCount:    totalCount,
		Page:          params.Page,
		Limit:         params.Limit,
		TotalPages:    totalPages(totalCount, params.Limit),
	}, nil
}

const sqlDeleteEventRegistration = `DELETE FROM event_registrations WHERE id = $1 RETURNING ` + eventRegistrationColumns

// DeleteEventRegistration removes a registration and returns the deleted row
func (s *Store) DeleteEventRegistration(ctx context.Context, registrationID uuid.UUID) (EventRegistration, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "registration_id", Value: registrationID})

	var registration EventRegistration
	err := s.db.GetContext(ctx, &registration, sqlDeleteEventRegistration, registrationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EventRegistration{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to delete event registration", err)
		return EventRegistration{}, fmt.Errorf("failed to delete event registration: %w", err)
	}
	return registration, nil
}

const sqlCountEventRegistrations = `SELECT COUNT(*) FROM event_registrations`

// CountEventRegistrations returns the number of registrations
func (s *Store) CountEventRegistrations(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountEventRegistrations); err != nil {
		s.logger.Error(ctx, "failed to count event registrations", err)
		return 0, fmt.Errorf("failed to count event registrations: %w", err)
	}
	return count, nil
}

const sqlCountConfirmedEventRegistrations = `SELECT COUNT(*) FROM event_registrations WHERE confirmed = TRUE`

// CountConfirmedEventRegistrations returns the number of confirmed registrations
func (s *Store) CountConfirmedEventRegistrations(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountConfirmedEventRegistrations); err != nil {
		s.logger.Error(ctx, "failed to count confirmed event registrations", err)
		return 0, fmt.Errorf("failed to count confirmed event registrations: %w", err)
	}
	return count, nil
}

const sqlCountEventRegistrationsByAttendeeType = `
SELECT attendee_type AS key, COUNT(*) AS count
FROM event_registrations
GROUP BY attendee_type
ORDER BY count DESC, key`

// CountEventRegistrationsByAttendeeType groups registrations by attendee type
func (s *Store) CountEventRegistrationsByAttendeeType(ctx context.Context) ([]CountByKey, error) {
	counts := []CountByKey{}
	if err := s.db.SelectContext(ctx, &counts, sqlCountEventRegistrationsByAttendeeType); err != nil {
		s.logger.Error(ctx, "failed to count event registrations by attendee type", err)
		return nil, fmt.Errorf("failed to count event registrations by attendee type: %w", err)
	}
	return counts, nil
}

const sqlCountEventRegistrationsWithDietary = `
SELECT COUNT(*) FROM event_registrations
WHERE dietary_restrictions IS NOT NULL AND dietary_restrictions <> ''`

// CountEventRegistrationsWithDietary counts registrations that declared dietary restrictions
func (s *Store) CountEventRegistrationsWithDietary(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountEventRegistrationsWithDietary); err != nil {
		s.logger.Error(ctx, "failed to count dietary restrictions", err)
		return 0, fmt.Errorf("failed to count dietary restrictions: %w", err)
	}
	return count, nil
}

const sqlGetRecentEventRegistrations = `
SELECT ` + eventRegistrationColumns + `
FROM event_registrations
ORDER BY created_at DESC
LIMIT $1`

// GetRecentEventRegistrations returns the newest registrations first
func (s *Store) GetRecentEventRegistrations(ctx context.Context, limit int) ([]EventRegistration, error) {
	registrations := []EventRegistration{}
	if err := s.db.SelectContext(ctx, &registrations, sqlGetRecentEventRegistrations, limit); err != nil {
		s.logger.Error(ctx, "failed to get recent event registrations", err)
		return nil, fmt.Errorf("failed to get recent event registrations: %w", err)
	}
	return registrations, nil
}
