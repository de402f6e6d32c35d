package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adventure-server/internal/dto"
	"adventure-server/internal/email"
	"adventure-server/internal/observability"
	"adventure-server/internal/store"
	"adventure-server/internal/validation"

	"github.com/google/uuid"
)

const (
	recentRegistrationsLimit = 10
	eventDateLayout          = "January 2, 2006"
)

// RegistrationStore defines the database operations required by EventProcessor
type RegistrationStore interface {
	CreateEventRegistration(ctx context.Context, params store.CreateEventRegistrationParams) (store.EventRegistration, error)
	GetEventRegistrationByEmail(ctx context.Context, eventSlug, email string) (store.EventRegistration, error)
	ListEventRegistrations(ctx context.Context, params store.ListEventRegistrationsParams) (store.ListEventRegistrationsResult, error)
	DeleteEventRegistration(ctx context.Context, registrationID uuid.UUID) (store.EventRegistration, error)
	CountEventRegistrations(ctx context.Context) (int, error)
	CountConfirmedEventRegistrations(ctx context.Context) (int, error)
	CountEventRegistrationsByAttendeeType(ctx context.Context) ([]store.CountByKey, error)
	CountEventRegistrationsWithDietary(ctx context.Context) (int, error)
	GetRecentEventRegistrations(ctx context.Context, limit int) ([]store.EventRegistration, error)
}

// EmailSender sends transactional emails on a best-effort basis
type EmailSender interface {
	Send(ctx context.Context, to string, msg email.Message) email.Result
}

var (
	ErrAlreadyRegistered    = errors.New("already registered for this event")
	ErrRegistrationNotFound = errors.New("registration not found")
)

// Event describes the launch event registrations belong to
type Event struct {
	Slug     string
	Date     string
	Time     string
	Location string
}

// ISODate returns the event date as YYYY-MM-DD, or the configured text when
// it is not in "January 2, 2006" form
func (e Event) ISODate() string {
	t, err := time.Parse(eventDateLayout, e.Date)
	if err != nil {
		return e.Date
	}
	return t.Format(time.DateOnly)
}

type EventProcessor struct {
	store       RegistrationStore
	emailSender EmailSender
	logger      *observability.Logger
	event       Event
}

func New(store RegistrationStore, emailSender EmailSender, logger *observability.Logger, event Event) EventProcessor {
	return EventProcessor{
		store:       store,
		emailSender: emailSender,
		logger:      logger,
		event:       event,
	}
}

// RegisterRequest carries a validated launch event signup
type RegisterRequest struct {
	FullName            string
	Email               string
	Phone               string
	AttendeeType        string
	DietaryRestrictions *string
}

type RegisterResponse struct {
	RegistrationID uuid.UUID `json:"registrationId"`
	FullName       string    `json:"fullName"`
	AttendeeType   string    `json:"attendeeType"`
	EventDate      string    `json:"eventDate"`
	Confirmed      bool      `json:"confirmed"`
}

// Register signs an attendee up for the launch event. An email may register
// once per event.
func (p *EventProcessor) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	emailAddr := validation.NormalizeEmail(req.Email)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email", Value: emailAddr},
		observability.Field{Key: "event_slug", Value: p.event.Slug},
	)

	_, err := p.store.GetEventRegistrationByEmail(ctx, p.event.Slug, emailAddr)
	if err == nil {
		return RegisterResponse{}, ErrAlreadyRegistered
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check event registration", err)
		return RegisterResponse{}, fmt.Errorf("failed to check event registration: %w", err)
	}

	registration, err := p.store.CreateEventRegistration(ctx, store.CreateEventRegistrationParams{
		EventSlug:           p.event.Slug,
		FullName:            validation.Sanitize(req.FullName),
		Email:               emailAddr,
		Phone:               req.Phone,
		AttendeeType:        req.AttendeeType,
		DietaryRestrictions: validation.SanitizePtr(req.DietaryRestrictions),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return RegisterResponse{}, ErrAlreadyRegistered
		}
		p.logger.Error(ctx, "failed to create event registration", err)
		return RegisterResponse{}, fmt.Errorf("failed to create event registration: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "registration_id", Value: registration.ID.String()})
	p.logger.Info(ctx, "event registration created")

	result := p.emailSender.Send(ctx, registration.Email, email.EventConfirmation{
		FullName:     registration.FullName,
		AttendeeType: registration.AttendeeType,
		EventDate:    p.event.Date,
		EventTime:    p.event.Time,
		Location:     p.event.Location,
	})
	if result.Err != nil {
		p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: result.Err.Error()}), "failed to send event confirmation email")
	}

	return RegisterResponse{
		RegistrationID: registration.ID,
		FullName:       registration.FullName,
		AttendeeType:   registration.AttendeeType,
		EventDate:      p.event.ISODate(),
		Confirmed:      registration.Confirmed,
	}, nil
}

// ListRegistrationsRequest filters and pages the registrations of the event
type ListRegistrationsRequest struct {
	AttendeeType *string
	Page         int
	Limit        int
}

type ListRegistrationsResponse struct {
	Registrations []store.EventRegistration `json:"registrations"`
	Pagination    dto.Pagination            `json:"pagination"`
}

// ListRegistrations returns one page of the launch event's registrations, newest first
func (p *EventProcessor) ListRegistrations(ctx context.Context, req ListRegistrationsRequest) (ListRegistrationsResponse, error) {
	slug := p.event.Slug
	result, err := p.store.ListEventRegistrations(ctx, store.ListEventRegistrationsParams{
		EventSlug:    &slug,
		AttendeeType: req.AttendeeType,
		Page:         req.Page,
		Limit:        req.Limit,
	})
	if err != nil {
		return ListRegistrationsResponse{}, fmt.Errorf("failed to list event registrations: %w", err)
	}

	registrations := result.Registrations
	if registrations == nil {
		registrations = []store.EventRegistration{}
	}

	return ListRegistrationsResponse{
		Registrations: registrations,
		Pagination: dto.Pagination{
			Total: result.TotalCount,
			Page:  result.Page,
			Limit: result.Limit,
			Pages: result.TotalPages,
		},
	}, nil
}

type RecentRegistration struct {
	FullName     string    `json:"fullName"`
	AttendeeType string    `json:"attendeeType"`
	CreatedAt    time.Time `json:"createdAt"`
}

type StatsResponse struct {
	TotalRegistrations       int                  `json:"totalRegistrations"`
	ConfirmedRegistrations   int                  `json:"confirmedRegistrations"`
	RegistrationsByType      []store.CountByKey   `json:"registrationsByType"`
	DietaryRestrictionsCount int                  `json:"dietaryRestrictionsCount"`
	RecentRegistrations      []RecentRegistration `json:"recentRegistrations"`
}

// GetStats aggregates event registrations for the dashboard
func (p *EventProcessor) GetStats(ctx context.Context) (StatsResponse, error) {
	total, err := p.store.CountEventRegistrations(ctx)
	if err != nil {
		return StatsResponse{}, fmt.Errorf("failed to count event registrations: %w", err)
	}

	confirmed, err := p.store.CountConfirmedEventRegistrations(ctx)
	if err != nil {
		return StatsResponse{}, fmt.Errorf("failed to count confirmed registrations: %w", err)
	}

	byType, err := p.store.CountEventRegistrationsByAttendeeType(ctx)
	if err != nil {
		return StatsResponse{}, fmt.Errorf("failed to count registrations by attendee type: %w", err)
	}

	withDietary, err := p.store.CountEventRegistrationsWithDietary(ctx)
	if err != nil {
		return StatsResponse{}, fmt.Errorf("failed to count dietary restrictions: %w", err)
	}

	recent, err := p.store.GetRecentEventRegistrations(ctx, recentRegistrationsLimit)
	if err != nil {
		return StatsResponse{}, fmt.Errorf("failed to get recent registrations: %w", err)
	}

	recentRegistrations := make([]RecentRegistration, 0, len(recent))
	for _, r := range recent {
		recentRegistrations = append(recentRegistrations, RecentRegistration{
			FullName:     r.FullName,
			AttendeeType: r.AttendeeType,
			CreatedAt:    r.CreatedAt,
		})
	}

	if byType == nil {
		byType = []store.CountByKey{}
	}

	return StatsResponse{
		TotalRegistrations:       total,
		ConfirmedRegistrations:   confirmed,
		RegistrationsByType:      byType,
		DietaryRestrictionsCount: withDietary,
		RecentRegistrations:      recentRegistrations,
	}, nil
}

type CancelResponse struct {
	RegistrationID uuid.UUID `json:"registrationId"`
}

// Cancel deletes a registration and tells the attendee it is gone
func (p *EventProcessor) Cancel(ctx context.Context, registrationID uuid.UUID) (CancelResponse, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "registration_id", Value: registrationID.String()})

	registration, err := p.store.DeleteEventRegistration(ctx, registrationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CancelResponse{}, ErrRegistrationNotFound
		}
		p.logger.Error(ctx, "failed to delete event registration", err)
		return CancelResponse{}, fmt.Errorf("failed to delete event registration: %w", err)
	}

	p.logger.Info(ctx, "event registration cancelled")

	result := p.emailSender.Send(ctx, registration.Email, email.EventCancellation{FullName: registration.FullName})
	if result.Err != nil {
		p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: result.Err.Error()}), "failed to send cancellation email")
	}

	return CancelResponse{RegistrationID: registration.ID}, nil
}
