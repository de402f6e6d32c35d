package mail

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"adventure-server/internal/observability"

	"github.com/google/uuid"
	"github.com/resendlabs/resend-go"
	"golang.org/x/time/rate"
)

const (
	// httpTimeout caps a single provider call when the caller sets no deadline
	httpTimeout = 15 * time.Second
	// Resend accepts 2 requests per second per API key by default
	sendsPerSecond = 2
)

// Client sends one rendered HTML email and returns the provider message id
type Client interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}

type ResendClient struct {
	client   *resend.Client
	throttle *rate.Limiter
	logger   *observability.Logger
}

func NewResendClient(apiKey string, logger *observability.Logger) (*ResendClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is empty")
	}

	client := resend.NewCustomClient(&http.Client{Timeout: httpTimeout}, apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return &ResendClient{
		client:   client,
		throttle: rate.NewLimiter(rate.Limit(sendsPerSecond), sendsPerSecond),
		logger:   logger,
	}, nil
}

func (c *ResendClient) SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	if err := c.throttle.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	}

	// Emails.Send has no context parameter, so the request is built and
	// performed here to carry the caller's deadline.
	req, err := c.client.NewRequest(http.MethodPost, "emails", params)
	if err != nil {
		return "", fmt.Errorf("failed to build email request: %w", err)
	}

	var res resend.SendEmailResponse
	if _, err := c.client.Perform(req.WithContext(ctx), &res); err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent successfully")
	return res.Id, nil
}

// LogClient stands in for a provider when no API key is configured. It logs
// the message instead of sending it.
type LogClient struct {
	logger *observability.Logger
}

func NewLogClient(logger *observability.Logger) *LogClient {
	return &LogClient{logger: logger}
}

func (c *LogClient) SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error) {
	id := "log-" + uuid.New().String()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_from", Value: from},
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
		observability.Field{Key: "email_bytes", Value: len(htmlContent)},
		observability.Field{Key: "email_id", Value: id},
	)
	c.logger.Info(ctx, "email provider not configured, logging email instead of sending")
	return id, nil
}

var (
	_ Client = (*ResendClient)(nil)
	_ Client = (*LogClient)(nil)
)
