package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"

	"adventure-server/internal/apierrors"
	"adventure-server/internal/dto"
	"adventure-server/internal/events/processor"
	"adventure-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultListLimit = 20

// EventProcessor is the business logic behind the launch event endpoints
type EventProcessor interface {
	Register(ctx context.Context, req processor.RegisterRequest) (processor.RegisterResponse, error)
	ListRegistrations(ctx context.Context, req processor.ListRegistrationsRequest) (processor.ListRegistrationsResponse, error)
	GetStats(ctx context.Context) (processor.StatsResponse, error)
	Cancel(ctx context.Context, registrationID uuid.UUID) (processor.CancelResponse, error)
}

type Handler struct {
	processor EventProcessor
	logger    *observability.Logger
}

func New(processor EventProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RegisterRequest is the launch event signup form
type RegisterRequest struct {
	FullName            string  `json:"fullName" binding:"required,min=2,max=100,personname"`
	Email               string  `json:"email" binding:"required,email"`
	Phone               string  `json:"phone" binding:"required,phone"`
	AttendeeType        string  `json:"attendeeType" binding:"required,oneof=user partner investor media"`
	DietaryRestrictions *string `json:"dietaryRestrictions" binding:"omitempty,max=500"`
}

// HandleRegister handles POST /api/v1/events/register
func (h *Handler) HandleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	resp, err := h.processor.Register(c.Request.Context(), processor.RegisterRequest{
		FullName:            req.FullName,
		Email:               req.Email,
		Phone:               req.Phone,
		AttendeeType:        req.AttendeeType,
		DietaryRestrictions: req.DietaryRestrictions,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.Created(c, "Event registration confirmed! Check your email for details.", resp)
}

// HandleListRegistrations handles GET /api/v1/events/registrations
func (h *Handler) HandleListRegistrations(c *gin.Context) {
	page, limit := dto.ParsePagination(c, defaultListLimit)

	resp, err := h.processor.ListRegistrations(c.Request.Context(), processor.ListRegistrationsRequest{
		AttendeeType: dto.OptionalQuery(c, "attendeeType"),
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.OK(c, "", resp)
}

// HandleStats handles GET /api/v1/events/stats
func (h *Handler) HandleStats(c *gin.Context) {
	stats, err := h.processor.GetStats(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.OK(c, "", stats)
}

// HandleCancel handles DELETE /api/v1/events/registrations/:id
func (h *Handler) HandleCancel(c *gin.Context) {
	registrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, processor.ErrRegistrationNotFound)
		return
	}

	resp, err := h.processor.Cancel(c.Request.Context(), registrationID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.OK(c, "Event registration cancelled successfully", resp)
}
