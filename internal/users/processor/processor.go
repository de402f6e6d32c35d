package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"adventure-server/internal/email"
	"adventure-server/internal/observability"
	"adventure-server/internal/store"
	"adventure-server/internal/validation"

	"github.com/google/uuid"
)

const recentUsersLimit = 5

// UserStore defines the database operations required by UserProcessor
type UserStore interface {
	CreateUser(ctx context.Context, params store.CreateUserParams) (store.User, error)
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
	GetUserByVerificationToken(ctx context.Context, token uuid.UUID) (store.User, error)
	VerifyUserEmail(ctx context.Context, userID uuid.UUID) (store.User, error)
	CountUsers(ctx context.Context) (int, error)
	CountVerifiedUsers(ctx context.Context) (int, error)
	CountUsersByExperience(ctx context.Context) ([]store.CountByKey, error)
	GetRecentUsers(ctx context.Context, limit int) ([]store.User, error)
}

// EmailSender sends transactional emails on a best-effort basis
type EmailSender interface {
	Send(ctx context.Context, to string, msg email.Message) email.Result
}

var (
	ErrDuplicateEmail  = errors.New("user with this email already exists")
	ErrInvalidToken    = errors.New("invalid verification token")
	ErrAlreadyVerified = errors.New("email already verified")
)

type UserProcessor struct {
	store       UserStore
	emailSender EmailSender
	logger      *observability.Logger
	frontendURL string
}

func New(store UserStore, emailSender EmailSender, logger *observability.Logger, frontendURL string) UserProcessor {
	return UserProcessor{
		store:       store,
		emailSender: emailSender,
		logger:      logger,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

// RegisterUserRequest carries a validated beta signup
type RegisterUserRequest struct {
	FullName           string
	Email              string
	Phone              *string
	AdventureInterests []string
	ExperienceLevel    string
	Location           string
	HearAboutUs        string
}

type RegisterUserResponse struct {
	UserID          uuid.UUID `json:"userId"`
	Email           string    `json:"email"`
	FullName        string    `json:"fullName"`
	ExperienceLevel string    `json:"experienceLevel"`
}

// RegisterUser creates an unverified user and sends the welcome email with the
// verification link
func (p *UserProcessor) RegisterUser(ctx context.Context, req RegisterUserRequest) (RegisterUserResponse, error) {
	emailAddr := validation.NormalizeEmail(req.Email)
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: emailAddr})

	_, err := p.store.GetUserByEmail(ctx, emailAddr)
	if err == nil {
		return RegisterUserResponse{}, ErrDuplicateEmail
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check user email", err)
		return RegisterUserResponse{}, fmt.Errorf("failed to check user email: %w", err)
	}

	token := uuid.New()
	user, err := p.store.CreateUser(ctx, store.CreateUserParams{
		FullName:           validation.Sanitize(req.FullName),
		Email:              emailAddr,
		Phone:              validation.SanitizePtr(req.Phone),
		AdventureInterests: validation.Dedupe(req.AdventureInterests),
		ExperienceLevel:    req.ExperienceLevel,
		Location:           validation.Sanitize(req.Location),
		HearAboutUs:        validation.Sanitize(req.HearAboutUs),
		VerificationToken:  token,
	})
	if err != nil {
		// the unique index settles races the pre-check cannot see
		if errors.Is(err, store.ErrDuplicate) {
			return RegisterUserResponse{}, ErrDuplicateEmail
		}
		p.logger.Error(ctx, "failed to create user", err)
		return RegisterUserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: user.ID.String()})
	p.logger.Info(ctx, "user registered")

	result := p.emailSender.Send(ctx, user.Email, email.UserWelcome{
		Name:               user.FullName,
		AdventureInterests: user.AdventureInterests,
		VerificationLink:   p.VerificationLink(token),
	})
	if result.Err != nil {
		p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: result.Err.Error()}), "failed to send welcome email")
	}

	return RegisterUserResponse{
		UserID:          user.ID,
		Email:           user.Email,
		FullName:        user.FullName,
		ExperienceLevel: user.ExperienceLevel,
	}, nil
}

// VerificationLink builds the frontend URL that confirms a user's email
func (p *UserProcessor) VerificationLink(token uuid.UUID) string {
	return p.frontendURL + "/verify/" + token.String()
}

type VerifyEmailResponse struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
}

// VerifyEmail consumes a verification token. A token that was already used
// reports ErrAlreadyVerified rather than ErrInvalidToken.
func (p *UserProcessor) VerifyEmail(ctx context.Context, rawToken string) (VerifyEmailResponse, error) {
	token, err := uuid.Parse(rawToken)
	if err != nil {
		return VerifyEmailResponse{}, ErrInvalidToken
	}

	user, err := p.store.GetUserByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return VerifyEmailResponse{}, ErrInvalidToken
		}
		p.logger.Error(ctx, "failed to get user by verification token", err)
		return VerifyEmailResponse{}, fmt.Errorf("failed to get user by verification token: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: user.ID.String()})

	if user.EmailVerified {
		return VerifyEmailResponse{}, ErrAlreadyVerified
	}

	verified, err := p.store.VerifyUserEmail(ctx, user.ID)
	if err != nil {
		// lost a race with a concurrent verification of the same token
		if errors.Is(err, store.ErrNotFound) {
			return VerifyEmailResponse{}, ErrAlreadyVerified
		}
		p.logger.Error(ctx, "failed to verify user email", err)
		return VerifyEmailResponse{}, fmt.Errorf("failed to verify user email: %w", err)
	}

	p.logger.Info(ctx, "user email verified")

	return VerifyEmailResponse{
		UserID: verified.ID,
		Email:  verified.Email,
	}, nil
}

type RecentUser struct {
	FullName        string    `json:"fullName"`
	Location        string    `json:"location"`
	ExperienceLevel string    `json:"experienceLevel"`
	CreatedAt       time.Time `json:"createdAt"`
}

type StatsResponse struct {
	TotalUsers        int                `json:"totalUsers"`
	VerifiedUsers     int                `json:"verifiedUsers"`
	UnverifiedUsers   int                `json:"unverifiedUsers"`
	UsersByExperience []store.CountByKey `json:"usersByExperience"`
	RecentUsers       []RecentUser       `json:"recentUsers"`
}

// GetStats aggregates user counts for the dashboard
func (p *UserProcessor) GetStats(ctx context.Context) (StatsResponse, error) {
	total, err := p.store.CountUsers(ctx)
	if err != nil {
		return StatsResponse{}, fmt.Errorf("failed to count users: %w", err)
	}

	verified, err := p.store.CountVerifiedUsers(ctx)
	if err != nil {
		return StatsResponse{}, fmt.Errorf("failed to count verified users: %w", err)
	}

	byExperience, err := p.store.CountUsersByExperience(ctx)
	if err != nil {
		return StatsResponse{}, fmt.Errorf("failed to count users by experience: %w", err)
	}

	recent, err := p.store.GetRecentUsers(ctx, recentUsersLimit)
	if err != nil {
		return StatsResponse{}, fmt.Errorf("failed to get recent users: %w", err)
	}

	recentUsers := make([]RecentUser, 0, len(recent))
	for _, u := range recent {
		recentUsers = append(recentUsers, RecentUser{
			FullName:        u.FullName,
			Location:        u.Location,
			ExperienceLevel: u.ExperienceLevel,
			CreatedAt:       u.CreatedAt,
		})
	}

	if byExperience == nil {
		byExperience = []store.CountByKey{}
	}

	return StatsResponse{
		TotalUsers:        total,
		VerifiedUsers:     verified,
		UnverifiedUsers:   total - verified,
		UsersByExperience: byExperience,
		RecentUsers:       recentUsers,
	}, nil
}
