package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"encoding/json"
	"strconv"

	"adventure-server/internal/apierrors"
	"adventure-server/internal/apilogs/processor"
	"adventure-server/internal/dto"
	"adventure-server/internal/observability"

	"github.com/gin-gonic/gin"
)

const (
	defaultErrorsLimit = 20
	defaultLogsLimit   = 50
)

// LogProcessor is the business logic behind the request log endpoints
type LogProcessor interface {
	Record(ctx context.Context, req processor.RecordRequest) error
	GetStats(ctx context.Context) (processor.StatsResponse, error)
	ListErrors(ctx context.Context, page, limit int) (processor.ListErrorsResponse, error)
	Track(ctx context.Context, event string, data json.RawMessage, ipAddress, userAgent string) (processor.TrackResponse, error)
	ListLogs(ctx context.Context, req processor.ListLogsRequest) (processor.ListLogsResponse, error)
}

type Handler struct {
	processor LogProcessor
	logger    *observability.Logger
}

func New(processor LogProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleStats handles GET /api/v1/logs/stats
func (h *Handler) HandleStats(c *gin.Context) {
	stats, err := h.processor.GetStats(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.OK(c, "", stats)
}

// HandleErrors handles GET /api/v1/logs/errors
func (h *Handler) HandleErrors(c *gin.Context) {
	page, limit := dto.ParsePagination(c, defaultErrorsLimit)

	resp, err := h.processor.ListErrors(c.Request.Context(), page, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.OK(c, "", resp)
}

type TrackRequest struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// HandleTrack handles POST /api/v1/logs/track
func (h *Handler) HandleTrack(c *gin.Context) {
	var req TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	resp, err := h.processor.Track(c.Request.Context(), req.Event, req.Data,
		observability.GetRealClientIP(c), c.Request.UserAgent())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.OK(c, "Event tracked successfully", resp)
}

// HandleList handles GET /api/v1/logs
func (h *Handler) HandleList(c *gin.Context) {
	page, limit := dto.ParsePagination(c, defaultLogsLimit)

	var statusCode *int
	if raw := c.Query("statusCode"); raw != "" {
		code, err := strconv.Atoi(raw)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.ValidationFailed([]apierrors.FieldError{
				{Field: "statusCode", Message: "statusCode must be a number"},
			}))
			return
		}
		statusCode = &code
	}

	resp, err := h.processor.ListLogs(c.Request.Context(), processor.ListLogsRequest{
		Endpoint:   dto.OptionalQuery(c, "endpoint"),
		Method:     dto.OptionalQuery(c, "method"),
		StatusCode: statusCode,
		StartDate:  dto.OptionalQuery(c, "startDate"),
		EndDate:    dto.OptionalQuery(c, "endDate"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.OK(c, "", resp)
}
