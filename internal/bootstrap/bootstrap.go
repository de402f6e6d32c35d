package bootstrap

import (
	"context"
	"fmt"
	"time"

	"adventure-server/internal/api"
	apilogsHandler "adventure-server/internal/apilogs/handler"
	apilogsProcessor "adventure-server/internal/apilogs/processor"
	"adventure-server/internal/clients/mail"
	"adventure-server/internal/clients/redis"
	"adventure-server/internal/config"
	docsHandler "adventure-server/internal/docs/handler"
	"adventure-server/internal/email"
	eventsHandler "adventure-server/internal/events/handler"
	eventsProcessor "adventure-server/internal/events/processor"
	healthHandler "adventure-server/internal/health/handler"
	newsletterHandler "adventure-server/internal/newsletter/handler"
	newsletterProcessor "adventure-server/internal/newsletter/processor"
	"adventure-server/internal/observability"
	partnersHandler "adventure-server/internal/partners/handler"
	partnersProcessor "adventure-server/internal/partners/processor"
	"adventure-server/internal/ratelimit"
	"adventure-server/internal/store"
	usersHandler "adventure-server/internal/users/handler"
	usersProcessor "adventure-server/internal/users/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  *store.Store
	Redis  *redis.Client
	Logger *observability.Logger

	// Handlers
	Handlers api.Handlers

	// Middleware
	RateLimiter   *ratelimit.Service
	RequestLogger *apilogsHandler.RequestLogger
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	db, err := store.New(cfg.Database.URL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.Store = &db

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := deps.Store.Ping(pingCtx); err != nil {
		_ = deps.Store.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	// Initialize Redis, optional
	deps.Redis, err = redis.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}),
			"Redis unavailable, rate limiting falls back to in-process limiter")
		deps.Redis = nil
	}
	var counter ratelimit.WindowCounter
	if deps.Redis != nil {
		counter = deps.Redis
	}
	deps.RateLimiter = ratelimit.NewService(counter, cfg.RateLimit, logger)

	// Initialize email service
	var mailClient mail.Client
	if cfg.Email.ResendAPIKey == "" {
		logger.Warn(ctx, "RESEND_API_KEY is not set, emails will be logged instead of sent")
		mailClient = mail.NewLogClient(logger)
	} else {
		mailClient, err = mail.NewResendClient(cfg.Email.ResendAPIKey, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create resend client: %w", err)
		}
	}
	emailService := email.New(mailClient, cfg.Email.Sender(), logger)

	// Initialize users processor and handler
	usersProc := usersProcessor.New(deps.Store, emailService, logger, cfg.Server.FrontendURL)
	deps.Handlers.Users = usersHandler.New(&usersProc, logger)

	// Initialize partners processor and handler
	partnersProc := partnersProcessor.New(deps.Store, emailService, logger)
	deps.Handlers.Partners = partnersHandler.New(&partnersProc, logger)

	// Initialize events processor and handler
	eventsProc := eventsProcessor.New(deps.Store, emailService, logger, eventsProcessor.Event{
		Slug:     cfg.LaunchEvent.Slug,
		Date:     cfg.LaunchEvent.Date,
		Time:     cfg.LaunchEvent.Time,
		Location: cfg.LaunchEvent.Location,
	})
	deps.Handlers.Events = eventsHandler.New(&eventsProc, logger)

	// Initialize newsletter processor and handler
	newsletterProc := newsletterProcessor.New(deps.Store, logger)
	deps.Handlers.Newsletter = newsletterHandler.New(&newsletterProc, logger)

	// Initialize request log processor, handler and middleware
	logsProc := apilogsProcessor.New(deps.Store, logger)
	deps.Handlers.Logs = apilogsHandler.New(&logsProc, logger)
	deps.RequestLogger = apilogsHandler.NewRequestLogger(&logsProc, logger)

	deps.Handlers.Health = healthHandler.New(deps.Store, cfg.Server.APIVersion, logger)

	deps.Handlers.Docs, err = docsHandler.New(cfg.Server.APIVersion, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load api docs: %w", err)
	}

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.RequestLogger != nil {
		d.RequestLogger.Wait()
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close Redis", err)
		}
	}
	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close database", err)
		}
	}
}
