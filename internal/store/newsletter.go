package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const newsletterColumns = `id, email, subscribed, subscribed_at`

const sqlCreateNewsletterSubscriber = `
INSERT INTO newsletter_subscribers (email)
VALUES ($1)
RETURNING ` + newsletterColumns

// CreateNewsletterSubscriber subscribes email. A known email yields ErrDuplicate.
func (s *Store) CreateNewsletterSubscriber(ctx context.Context, email string) (NewsletterSubscriber, error) {
	var subscriber NewsletterSubscriber
	err := s.db.GetContext(ctx, &subscriber, sqlCreateNewsletterSubscriber, email)
	if err != nil {
		err = classifyError(err)
		if errors.Is(err, ErrDuplicate) {
			return NewsletterSubscriber{}, err
		}
		s.logger.Error(ctx, "failed to create newsletter subscriber", err)
		return NewsletterSubscriber{}, fmt.Errorf("failed to create newsletter subscriber: %w", err)
	}
	return subscriber, nil
}

const sqlGetNewsletterSubscriberByEmail = `SELECT ` + newsletterColumns + ` FROM newsletter_subscribers WHERE email = $1`

// GetNewsletterSubscriberByEmail retrieves a subscriber by normalized email
func (s *Store) GetNewsletterSubscriberByEmail(ctx context.Context, email string) (NewsletterSubscriber, error) {
	var subscriber NewsletterSubscriber
	err := s.db.GetContext(ctx, &subscriber, sqlGetNewsletterSubscriberByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewsletterSubscriber{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get newsletter subscriber", err)
		return NewsletterSubscriber{}, fmt.Errorf("failed to get newsletter subscriber: %w", err)
	}
	return subscriber, nil
}
