package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"adventure-server/internal/observability"
	"adventure-server/internal/store"
	"adventure-server/internal/validation"

	"github.com/google/uuid"
)

// SubscriberStore defines the database operations required by NewsletterProcessor
type SubscriberStore interface {
	CreateNewsletterSubscriber(ctx context.Context, email string) (store.NewsletterSubscriber, error)
	GetNewsletterSubscriberByEmail(ctx context.Context, email string) (store.NewsletterSubscriber, error)
}

var ErrAlreadySubscribed = errors.New("email already subscribed")

type NewsletterProcessor struct {
	store  SubscriberStore
	logger *observability.Logger
}

func New(store SubscriberStore, logger *observability.Logger) NewsletterProcessor {
	return NewsletterProcessor{
		store:  store,
		logger: logger,
	}
}

type SubscribeResponse struct {
	SubscriberID uuid.UUID `json:"subscriberId"`
	Email        string    `json:"email"`
}

// Subscribe adds an address to the newsletter list
func (p *NewsletterProcessor) Subscribe(ctx context.Context, emailAddr string) (SubscribeResponse, error) {
	emailAddr = validation.NormalizeEmail(emailAddr)
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: emailAddr})

	_, err := p.store.GetNewsletterSubscriberByEmail(ctx, emailAddr)
	if err == nil {
		return SubscribeResponse{}, ErrAlreadySubscribed
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check newsletter subscriber", err)
		return SubscribeResponse{}, fmt.Errorf("failed to check newsletter subscriber: %w", err)
	}

	subscriber, err := p.store.CreateNewsletterSubscriber(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return SubscribeResponse{}, ErrAlreadySubscribed
		}
		p.logger.Error(ctx, "failed to create newsletter subscriber", err)
		return SubscribeResponse{}, fmt.Errorf("failed to create newsletter subscriber: %w", err)
	}

	p.logger.Info(ctx, "newsletter subscriber added")

	return SubscribeResponse{
		SubscriberID: subscriber.ID,
		Email:        subscriber.Email,
	}, nil
}
