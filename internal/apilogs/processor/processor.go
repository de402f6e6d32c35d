package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"adventure-server/internal/dto"
	"adventure-server/internal/observability"
	"adventure-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	recentActivityLimit = 10
	topEndpointsLimit   = 10
	trackMethod         = "TRACK"
)

// LogStore defines the database operations required by LogProcessor
type LogStore interface {
	CreateAPILog(ctx context.Context, params store.CreateAPILogParams) (store.APILog, error)
	ListAPILogs(ctx context.Context, params store.ListAPILogsParams) (store.ListAPILogsResult, error)
	GetAPILogStats(ctx context.Context) (store.APILogStats, error)
	GetTopEndpoints(ctx context.Context, limit int) ([]store.CountByKey, error)
	GetRecentAPILogs(ctx context.Context, limit int) ([]store.APILog, error)
	CountUsers(ctx context.Context) (int, error)
	CountPartners(ctx context.Context) (int, error)
	CountEventRegistrations(ctx context.Context) (int, error)
}

var (
	ErrMissingEvent = errors.New("event name is required")
	ErrInvalidDate  = errors.New("invalid date filter")
)

type LogProcessor struct {
	store  LogStore
	logger *observability.Logger
}

func New(store LogStore, logger *observability.Logger) LogProcessor {
	return LogProcessor{
		store:  store,
		logger: logger,
	}
}

// RecordRequest is one completed HTTP request as seen by the logging middleware
type RecordRequest struct {
	Endpoint     string
	Method       string
	StatusCode   int
	ResponseTime time.Duration
	IPAddress    string
	UserAgent    string
}

// Record appends a request to the log
func (p *LogProcessor) Record(ctx context.Context, req RecordRequest) error {
	userAgent := req.UserAgent
	if userAgent == "" {
		userAgent = "unknown"
	}

	_, err := p.store.CreateAPILog(ctx, store.CreateAPILogParams{
		Endpoint:     req.Endpoint,
		Method:       req.Method,
		StatusCode:   req.StatusCode,
		ResponseTime: int(req.ResponseTime.Milliseconds()),
		IPAddress:    optional(req.IPAddress),
		UserAgent:    &userAgent,
	})
	if err != nil {
		return fmt.Errorf("failed to record request: %w", err)
	}
	return nil
}

type Overview struct {
	TotalUsers              int `json:"totalUsers"`
	TotalPartners           int `json:"totalPartners"`
	TotalEventRegistrations int `json:"totalEventRegistrations"`
	TotalAPICalls           int `json:"totalApiCalls"`
}

type Performance struct {
	AvgResponseTime int     `json:"avgResponseTime"`
	ErrorRate       float64 `json:"errorRate"`
	SuccessRate     float64 `json:"successRate"`
}

type Activity struct {
	Endpoint     string    `json:"endpoint"`
	Method       string    `json:"method"`
	StatusCode   int       `json:"statusCode"`
	ResponseTime int       `json:"responseTime"`
	CreatedAt    time.Time `json:"createdAt"`
}

type StatsResponse struct {
	Overview       Overview           `json:"overview"`
	Performance    Performance        `json:"performance"`
	RecentActivity []Activity         `json:"recentActivity"`
	TopEndpoints   []store.CountByKey `json:"topEndpoints"`
}

// GetStats builds the dashboard overview across all collections
func (p *LogProcessor) GetStats(ctx context.Context) (StatsResponse, error) {
	var (
		overview  Overview
		logStats  store.APILogStats
		recent    []store.APILog
		endpoints []store.CountByKey
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview.TotalUsers, err = p.store.CountUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.TotalPartners, err = p.store.CountPartners(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.TotalEventRegistrations, err = p.store.CountEventRegistrations(gctx)
		return err
	})
	g.Go(func() (err error) {
		logStats, err = p.store.GetAPILogStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		recent, err = p.store.GetRecentAPILogs(gctx, recentActivityLimit)
		return err
	})
	g.Go(func() (err error) {
		endpoints, err = p.store.GetTopEndpoints(gctx, topEndpointsLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		p.logger.Error(ctx, "failed to build log stats", err)
		return StatsResponse{}, fmt.Errorf("failed to build log stats: %w", err)
	}

	overview.TotalAPICalls = logStats.TotalCount

	activity := make([]Activity, 0, len(recent))
	for _, l := range recent {
		activity = append(activity, Activity{
			Endpoint:     l.Endpoint,
			Method:       l.Method,
			StatusCode:   l.StatusCode,
			ResponseTime: l.ResponseTime,
			CreatedAt:    l.CreatedAt,
		})
	}
	if endpoints == nil {
		endpoints = []store.CountByKey{}
	}

	return StatsResponse{
		Overview:       overview,
		Performance:    performance(logStats),
		RecentActivity: activity,
		TopEndpoints:   endpoints,
	}, nil
}

func performance(stats store.APILogStats) Performance {
	if stats.TotalCount == 0 {
		return Performance{ErrorRate: 0, SuccessRate: 100}
	}
	errorRate := float64(stats.ErrorCount) / float64(stats.TotalCount) * 100
	successRate := float64(stats.TotalCount-stats.ErrorCount) / float64(stats.TotalCount) * 100
	return Performance{
		AvgResponseTime: int(math.Round(stats.AvgResponseTime)),
		ErrorRate:       round2(errorRate),
		SuccessRate:     round2(successRate),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type ListErrorsResponse struct {
	Errors     []store.APILog `json:"errors"`
	Pagination dto.Pagination `json:"pagination"`
}

// ListErrors returns failed requests, newest first
func (p *LogProcessor) ListErrors(ctx context.Context, page, limit int) (ListErrorsResponse, error) {
	result, err := p.store.ListAPILogs(ctx, store.ListAPILogsParams{
		ErrorsOnly: true,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return ListErrorsResponse{}, fmt.Errorf("failed to list error logs: %w", err)
	}

	return ListErrorsResponse{
		Errors:     nonNil(result.Logs),
		Pagination: pagination(result),
	}, nil
}

type TrackResponse struct {
	EventID uuid.UUID `json:"eventId"`
	Event   string    `json:"event"`
}

// Track stores a client analytics event as a synthetic log row
func (p *LogProcessor) Track(ctx context.Context, event string, data json.RawMessage, ipAddress, userAgent string) (TrackResponse, error) {
	event = strings.TrimSpace(event)
	if event == "" {
		return TrackResponse{}, ErrMissingEvent
	}

	payload := "null"
	if len(data) > 0 {
		payload = string(data)
	}

	log, err := p.store.CreateAPILog(ctx, store.CreateAPILogParams{
		Endpoint:     "/track/" + event,
		Method:       trackMethod,
		StatusCode:   200,
		ResponseTime: 0,
		IPAddress:    optional(ipAddress),
		UserAgent:    optional(userAgent),
		ErrorMessage: &payload,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to track event", err)
		return TrackResponse{}, fmt.Errorf("failed to track event: %w", err)
	}

	return TrackResponse{EventID: log.ID, Event: event}, nil
}

// ListLogsRequest filters the request log. Dates are raw query values.
type ListLogsRequest struct {
	Endpoint   *string
	Method     *string
	StatusCode *int
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

type ListLogsResponse struct {
	Logs       []store.APILog `json:"logs"`
	Pagination dto.Pagination `json:"pagination"`
}

// ListLogs returns request logs matching the filters, newest first
func (p *LogProcessor) ListLogs(ctx context.Context, req ListLogsRequest) (ListLogsResponse, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return ListLogsResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return ListLogsResponse{}, err
	}

	result, err := p.store.ListAPILogs(ctx, store.ListAPILogsParams{
		Endpoint:   req.Endpoint,
		Method:     req.Method,
		StatusCode: req.StatusCode,
		StartDate:  startDate,
		EndDate:    endDate,
		Page:       req.Page,
		Limit:      req.Limit,
	})
	if err != nil {
		return ListLogsResponse{}, fmt.Errorf("failed to list logs: %w", err)
	}

	return ListLogsResponse{
		Logs:       nonNil(result.Logs),
		Pagination: pagination(result),
	}, nil
}

// parseDate accepts RFC3339 timestamps or plain YYYY-MM-DD dates (UTC midnight)
func parseDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

func pagination(result store.ListAPILogsResult) dto.Pagination {
	return dto.Pagination{
		Total: result.TotalCount,
		Page:  result.Page,
		Limit: result.Limit,
		Pages: result.TotalPages,
	}
}

func nonNil(logs []store.APILog) []store.APILog {
	if logs == nil {
		return []store.APILog{}
	}
	return logs
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
