package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"adventure-server/internal/clients/mail"
	"adventure-server/internal/observability"
)

var (
	ErrInvalidEmailAddress = errors.New("invalid email address")
	ErrRenderTemplate      = errors.New("error rendering email template")
	ErrSendingEmail        = errors.New("error sending email")
)

const defaultSendTimeout = 10 * time.Second

// Result is the outcome of a best-effort send. A failed send is reported here
// and never as an error return.
type Result struct {
	Sent       bool
	ProviderID string
	Err        error
}

// Service renders messages and hands them to the mail client
type Service struct {
	client  mail.Client
	sender  string
	logger  *observability.Logger
	timeout time.Duration
}

// New creates a new email Service
func New(client mail.Client, sender string, logger *observability.Logger) *Service {
	return &Service{
		client:  client,
		sender:  sender,
		logger:  logger,
		timeout: defaultSendTimeout,
	}
}

// Render returns the HTML body of msg
func Render(msg Message) (string, error) {
	var buf bytes.Buffer
	if err := msg.render(&buf); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRenderTemplate, msg.Kind(), err)
	}
	return buf.String(), nil
}

// Send renders msg and sends it to the recipient. The send outlives request
// cancellation but is bounded by the service timeout.
func (s *Service) Send(ctx context.Context, to string, msg Message) Result {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: msg.Kind()},
	)

	if to == "" {
		return Result{Err: ErrInvalidEmailAddress}
	}

	html, err := Render(msg)
	if err != nil {
		s.logger.Error(ctx, "failed to render email", err)
		return Result{Err: err}
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	id, err := s.client.SendEmail(sendCtx, s.sender, to, msg.Subject(), html)
	if err != nil {
		return Result{Err: fmt.Errorf("%w: %v", ErrSendingEmail, err)}
	}

	s.logger.Debug(observability.WithFields(ctx, observability.Field{Key: "email_id", Value: id}), "email dispatched")
	return Result{Sent: true, ProviderID: id}
}
