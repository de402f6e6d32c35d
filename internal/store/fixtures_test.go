package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

func uniqueEmail(prefix string) string {
	return prefix + "-" + uuid.New().String() + "@example.com"
}

// --- User Fixtures ---

// DefaultUserParams returns a valid user with a unique email.
func DefaultUserParams() CreateUserParams {
	return CreateUserParams{
		FullName:           "Jane Doe",
		Email:              uniqueEmail("user"),
		AdventureInterests: []string{AdventureWater},
		ExperienceLevel:    ExperienceBeginner,
		Location:           "Berlin",
		HearAboutUs:        "Friend",
		VerificationToken:  uuid.New(),
	}
}

// CreateUser creates a test user with optional customization.
func (f *Fixtures) CreateUser(opts ...func(*CreateUserParams)) User {
	f.t.Helper()
	params := DefaultUserParams()
	for _, fn := range opts {
		fn(&params)
	}

	user, err := f.testDB.Store.CreateUser(f.ctx, params)
	require.NoError(f.t, err, "failed to create test user")
	return user
}

// --- Partner Fixtures ---

// DefaultPartnerParams returns a valid partner with a unique email.
func DefaultPartnerParams() CreatePartnerParams {
	return CreatePartnerParams{
		CompanyName:    "Blue Lagoon Diving",
		ContactPerson:  "Max Mustermann",
		Email:          uniqueEmail("partner"),
		Phone:          "+4915112345678",
		BusinessType:   BusinessTypeTourOperator,
		AdventureTypes: []string{AdventureWater, AdventureLand},
		Location:       "Lisbon",
		Description:    "Guided diving and coastal hiking tours for all levels.",
	}
}

// CreatePartner creates a test partner with optional customization.
func (f *Fixtures) CreatePartner(opts ...func(*CreatePartnerParams)) Partner {
	f.t.Helper()
	params := DefaultPartnerParams()
	for _, fn := range opts {
		fn(&params)
	}

	partner, err := f.testDB.Store.CreatePartner(f.ctx, params)
	require.NoError(f.t, err, "failed to create test partner")
	return partner
}

// --- Event Registration Fixtures ---

// DefaultEventRegistrationParams returns a valid registration with a unique email.
func DefaultEventRegistrationParams() CreateEventRegistrationParams {
	return CreateEventRegistrationParams{
		EventSlug:    "launch-test",
		FullName:     "Sam Rivers",
		Email:        uniqueEmail("attendee"),
		Phone:        "+14155552671",
		AttendeeType: AttendeeTypeUser,
	}
}

// CreateEventRegistration creates a test registration with optional customization.
func (f *Fixtures) CreateEventRegistration(opts ...func(*CreateEventRegistrationParams)) EventRegistration {
	f.t.Helper()
	params := DefaultEventRegistrationParams()
	for _, fn := range opts {
		fn(&params)
	}

	registration, err := f.testDB.Store.CreateEventRegistration(f.ctx, params)
	require.NoError(f.t, err, "failed to create test event registration")
	return registration
}

// --- API Log Fixtures ---

// CreateAPILog appends a request log row with the given endpoint and status.
func (f *Fixtures) CreateAPILog(endpoint, method string, status, responseTime int) APILog {
	f.t.Helper()
	log, err := f.testDB.Store.CreateAPILog(f.ctx, CreateAPILogParams{
		Endpoint:     endpoint,
		Method:       method,
		StatusCode:   status,
		ResponseTime: responseTime,
	})
	require.NoError(f.t, err, "failed to create test api log")
	return log
}
