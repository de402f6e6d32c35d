package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adventure-server/internal/observability"

	"github.com/google/uuid"
)

const userColumns = `id, full_name, email, phone, adventure_interests, experience_level, location,
	hear_about_us, email_verified, verification_token, verified_token, verified_at, created_at, updated_at`

const sqlCreateUser = `
INSERT INTO users (full_name, email, phone, adventure_interests, experience_level, location, hear_about_us, verification_token)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + userColumns

// CreateUser inserts a new unverified user. A taken email yields ErrDuplicate.
func (s *Store) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlCreateUser,
		params.FullName,
		params.Email,
		params.Phone,
		StringArray(params.AdventureInterests),
		params.ExperienceLevel,
		params.Location,
		params.HearAboutUs,
		params.VerificationToken,
	)
	if err != nil {
		err = classifyError(err)
		if errors.Is(err, ErrDuplicate) {
			return User{}, err
		}
		s.logger.Error(ctx, "failed to create user", err)
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

const sqlGetUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

// GetUserByEmail retrieves a user by normalized email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by email", err)
		return User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

const sqlGetUserByVerificationToken = `
SELECT ` + userColumns + `
FROM users
WHERE verification_token = $1 OR verified_token = $1
LIMIT 1`

// GetUserByVerificationToken finds the user that was issued token. Users that
// already consumed the token are still found through verified_token.
func (s *Store) GetUserByVerificationToken(ctx context.Context, token uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByVerificationToken, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by verification token", err)
		return User{}, fmt.Errorf("failed to get user by verification token: %w", err)
	}
	return user, nil
}

const sqlVerifyUserEmail = `
UPDATE users
SET email_verified = TRUE,
    verified_token = verification_token,
    verification_token = NULL,
    verified_at = NOW(),
    updated_at = NOW()
WHERE id = $1 AND email_verified = FALSE
RETURNING ` + userColumns

// VerifyUserEmail marks an unverified user as verified and clears the token.
// Returns ErrNotFound when the user does not exist or is already verified.
func (s *Store) VerifyUserEmail(ctx context.Context, userID uuid.UUID) (User, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	var user User
	err := s.db.GetContext(ctx, &user, sqlVerifyUserEmail, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to verify user email", err)
		return User{}, fmt.Errorf("failed to verify user email: %w", err)
	}
	return user, nil
}

const sqlCountUsers = `SELECT COUNT(*) FROM users`

// CountUsers returns the number of users
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountUsers); err != nil {
		s.logger.Error(ctx, "failed to count users", err)
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

const sqlCountVerifiedUsers = `SELECT COUNT(*) FROM users WHERE email_verified = TRUE`

// CountVerifiedUsers returns the number of users with a verified email
func (s *Store) CountVerifiedUsers(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountVerifiedUsers); err != nil {
		s.logger.Error(ctx, "failed to count verified users", err)
		return 0, fmt.Errorf("failed to count verified users: %w", err)
	}
	return count, nil
}

const sqlCountUsersByExperience = `
SELECT experience_level AS key, COUNT(*) AS count
FROM users
GROUP BY experience_level
ORDER BY count DESC, key`

// CountUsersByExperience groups users by experience level
func (s *Store) CountUsersByExperience(ctx context.Context) ([]CountByKey, error) {
	counts := []CountByKey{}
	if err := s.db.SelectContext(ctx, &counts, sqlCountUsersByExperience); err != nil {
		s.logger.Error(ctx, "failed to count users by experience", err)
		return nil, fmt.Errorf("failed to count users by experience: %w", err)
	}
	return counts, nil
}

const sqlGetRecentUsers = `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1`

// GetRecentUsers returns the newest users first
func (s *Store) GetRecentUsers(ctx context.Context, limit int) ([]User, error) {
	users := []User{}
	if err := s.db.SelectContext(ctx, &users, sqlGetRecentUsers, limit); err != nil {
		s.logger.Error(ctx, "failed to get recent users", err)
		return nil, fmt.Errorf("failed to get recent users: %w", err)
	}
	return users, nil
}
