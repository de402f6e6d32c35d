package store

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StringArray is a custom type for PostgreSQL text[] arrays of simple tokens
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	// PostgreSQL array format: {item1,item2,item3}
	return "{" + strings.Join(a, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	str = strings.Trim(str, "{}")
	if str == "" {
		*a = []string{}
		return nil
	}

	*a = strings.Split(str, ",")
	return nil
}

// CountByKey is one bucket of a grouped count. The JSON shape mirrors the
// aggregation output consumed by the dashboard.
type CountByKey struct {
	Key   string `db:"key" json:"_id"`
	Count int    `db:"count" json:"count"`
}

// User represents a beta signup
type User struct {
	ID                 uuid.UUID   `db:"id" json:"id"`
	FullName           string      `db:"full_name" json:"fullName"`
	Email              string      `db:"email" json:"email"`
	Phone              *string     `db:"phone" json:"phone,omitempty"`
	AdventureInterests StringArray `db:"adventure_interests" json:"adventureInterests"`
	ExperienceLevel    string      `db:"experience_level" json:"experienceLevel"`
	Location           string      `db:"location" json:"location"`
	HearAboutUs        string      `db:"hear_about_us" json:"hearAboutUs"`
	EmailVerified      bool        `db:"email_verified" json:"emailVerified"`
	VerificationToken  *uuid.UUID  `db:"verification_token" json:"-"`
	VerifiedToken      *uuid.UUID  `db:"verified_token" json:"-"`
	VerifiedAt         *time.Time  `db:"verified_at" json:"verifiedAt,omitempty"`
	CreatedAt          time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time   `db:"updated_at" json:"updatedAt"`
}

// CreateUserParams represents parameters for creating a user
type CreateUserParams struct {
	FullName           string
	Email              string
	Phone              *string
	AdventureInterests []string
	ExperienceLevel    string
	Location           string
	HearAboutUs        string
	VerificationToken  uuid.UUID
}

// Partner represents a business partner application
type Partner struct {
	ID             uuid.UUID   `db:"id" json:"id"`
	CompanyName    string      `db:"company_name" json:"companyName"`
	ContactPerson  string      `db:"contact_person" json:"contactPerson"`
	Email          string      `db:"email" json:"email"`
	Phone          string      `db:"phone" json:"phone"`
	BusinessType   string      `db:"business_type" json:"businessType"`
	AdventureTypes StringArray `db:"adventure_types" json:"adventureTypes"`
	Location       string      `db:"location" json:"location"`
	Website        *string     `db:"website" json:"website,omitempty"`
	Description    string      `db:"description" json:"description"`
	Status         string      `db:"status" json:"status"`
	CreatedAt      time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time   `db:"updated_at" json:"updatedAt"`
}

// CreatePartnerParams represents parameters for creating a partner
type CreatePartnerParams struct {
	CompanyName    string
	ContactPerson  string
	Email          string
	Phone          string
	BusinessType   string
	AdventureTypes []string
	Location       string
	Website        *string
	Description    string
}

// ListPartnersParams represents filters and pagination for listing partners
type ListPartnersParams struct {
	Status       *string
	BusinessType *string
	Search       *string
	Page         int
	Limit        int
}

// ListPartnersResult is a page of partners
type ListPartnersResult struct {
	Partners   []Partner
	TotalCount int
	Page       int
	Limit      int
	TotalPages int
}

// EventRegistration represents a launch event signup
type EventRegistration struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	EventSlug           string    `db:"event_slug" json:"eventSlug"`
	FullName            string    `db:"full_name" json:"fullName"`
	Email               string    `db:"email" json:"email"`
	Phone               string    `db:"phone" json:"phone"`
	AttendeeType        string    `db:"attendee_type" json:"attendeeType"`
	DietaryRestrictions *string   `db:"dietary_restrictions" json:"dietaryRestrictions,omitempty"`
	Confirmed           bool      `db:"confirmed" json:"confirmed"`
	CreatedAt           time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time `db:"updated_at" json:"updatedAt"`
}

// CreateEventRegistrationParams represents parameters for creating a registration
type CreateEventRegistrationParams struct {
	EventSlug           string
	FullName            string
	Email               string
	Phone               string
	AttendeeType        string
	DietaryRestrictions *string
}

// ListEventRegistrationsParams represents filters and pagination for registrations
type ListEventRegistrationsParams struct {
	EventSlug    *string
	AttendeeType *string
	Page         int
	Limit        int
}

// ListEventRegistrationsResult is a page of registrations
type ListEventRegistrationsResult struct {
	Registrations []EventRegistration
	TotalCount    int
	Page          int
	Limit         int
	TotalPages    int
}

// APILog is one row of the request log
type APILog struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Endpoint     string    `db:"endpoint" json:"endpoint"`
	Method       string    `db:"method" json:"method"`
	StatusCode   int       `db:"status_code" json:"statusCode"`
	ResponseTime int       `db:"response_time" json:"responseTime"`
	IPAddress    *string   `db:"ip_address" json:"ipAddress,omitempty"`
	UserAgent    *string   `db:"user_agent" json:"userAgent,omitempty"`
	ErrorMessage *string   `db:"error_message" json:"errorMessage,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// CreateAPILogParams represents parameters for appending a request log row
type CreateAPILogParams struct {
	Endpoint     string
	Method       string
	StatusCode   int
	ResponseTime int
	IPAddress    *string
	UserAgent    *string
	ErrorMessage *string
}

// ListAPILogsParams represents filters and pagination for request logs
type ListAPILogsParams struct {
	Endpoint   *string
	Method     *string
	StatusCode *int
	StartDate  *time.Time
	EndDate    *time.Time
	ErrorsOnly bool
	Page       int
	Limit      int
}

// ListAPILogsResult is a page of request logs
type ListAPILogsResult struct {
	Logs       []APILog
	TotalCount int
	Page       int
	Limit      int
	TotalPages int
}

// APILogStats aggregates the whole request log
type APILogStats struct {
	TotalCount      int     `db:"total_count"`
	ErrorCount      int     `db:"error_count"`
	AvgResponseTime float64 `db:"avg_response_time"`
}

// NewsletterSubscriber represents a newsletter signup
type NewsletterSubscriber struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Subscribed   bool      `db:"subscribed" json:"subscribed"`
	SubscribedAt time.Time `db:"subscribed_at" json:"subscribedAt"`
}
