package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	GetDB() *sqlx.DB
	Ping(ctx context.Context) error

	// User operations
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByVerificationToken(ctx context.Context, token uuid.UUID) (User, error)
	VerifyUserEmail(ctx context.Context, userID uuid.UUID) (User, error)
	CountUsers(ctx context.Context) (int, error)
	CountVerifiedUsers(ctx context.Context) (int, error)
	CountUsersByExperience(ctx context.Context) ([]CountByKey, error)
	GetRecentUsers(ctx context.Context, limit int) ([]User, error)

	// Partner operations
	CreatePartner(ctx context.Context, params CreatePartnerParams) (Partner, error)
	GetPartnerByID(ctx context.Context, partnerID uuid.UUID) (Partner, error)
	GetPartnerByEmail(ctx context.Context, email string) (Partner, error)
	ListPartners(ctx context.Context, params ListPartnersParams) (ListPartnersResult, error)
	CountPartners(ctx context.Context) (int, error)
	UpdatePartnerStatus(ctx context.Context, partnerID uuid.UUID, status string) (Partner, error)
	CountPartnersByStatus(ctx context.Context) ([]CountByKey, error)
	CountPartnersByBusinessType(ctx context.Context) ([]CountByKey, error)
	GetRecentPartners(ctx context.Context, limit int) ([]Partner, error)

	// Event registration operations
	CreateEventRegistration(ctx context.Context, params CreateEventRegistrationParams) (EventRegistration, error)
	GetEventRegistrationByEmail(ctx context.Context, eventSlug, email string) (EventRegistration, error)
	ListEventRegistrations(ctx context.Context, params ListEventRegistrationsParams) (ListEventRegistrationsResult, error)
	DeleteEventRegistration(ctx context.Context, registrationID uuid.UUID) (EventRegistration, error)
	CountEventRegistrations(ctx context.Context) (int, error)
	CountConfirmedEventRegistrations(ctx context.Context) (int, error)
	CountEventRegistrationsByAttendeeType(ctx context.Context) ([]CountByKey, error)
	CountEventRegistrationsWithDietary(ctx context.Context) (int, error)
	GetRecentEventRegistrations(ctx context.Context, limit int) ([]EventRegistration, error)

	// API log operations
	CreateAPILog(ctx context.Context, params CreateAPILogParams) (APILog, error)
	ListAPILogs(ctx context.Context, params ListAPILogsParams) (ListAPILogsResult, error)
	CountAPILogs(ctx context.Context) (int, error)
	GetAPILogStats(ctx context.Context) (APILogStats, error)
	GetTopEndpoints(ctx context.Context, limit int) ([]CountByKey, error)
	GetRecentAPILogs(ctx context.Context, limit int) ([]APILog, error)

	// Newsletter operations
	CreateNewsletterSubscriber(ctx context.Context, email string) (NewsletterSubscriber, error)
	GetNewsletterSubscriberByEmail(ctx context.Context, email string) (NewsletterSubscriber, error)
}

// Ensure Store implements Storer interface
var _ Storer = (*Store)(nil)
