package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"fmt"

	"adventure-server/internal/apierrors"
	"adventure-server/internal/dto"
	"adventure-server/internal/observability"
	"adventure-server/internal/partners/processor"
	"adventure-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultListLimit = 10

// PartnerProcessor is the business logic behind the partner endpoints
type PartnerProcessor interface {
	RegisterPartner(ctx context.Context, req processor.RegisterPartnerRequest) (processor.RegisterPartnerResponse, error)
	ListPartners(ctx context.Context, req processor.ListPartnersRequest) (processor.ListPartnersResponse, error)
	GetPartner(ctx context.Context, partnerID uuid.UUID) (store.Partner, error)
	GetStats(ctx context.Context) (processor.StatsResponse, error)
	UpdateStatus(ctx context.Context, partnerID uuid.UUID, status string) (processor.UpdateStatusResponse, error)
}

type Handler struct {
	processor PartnerProcessor
	logger    *observability.Logger
}

func New(processor PartnerProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RegisterRequest is the partner application form
type RegisterRequest struct {
	CompanyName    string   `json:"companyName" binding:"required,min=2,max=200"`
	ContactPerson  string   `json:"contactPerson" binding:"required,min=2,max=100"`
	Email          string   `json:"email" binding:"required,email"`
	Phone          string   `json:"phone" binding:"required,phone"`
	BusinessType   string   `json:"businessType" binding:"required,oneof=tour_operator equipment_rental accommodation training_center other"`
	AdventureTypes []string `json:"adventureTypes" binding:"required,min=1,max=3,dive,adventure"`
	Location       string   `json:"location" binding:"required,min=2,max=200"`
	Website        *string  `json:"website" binding:"omitempty,url"`
	Description    string   `json:"description" binding:"required,min=20,max=1000"`
}

// UpdateStatusRequest is the body of the status change endpoint. The status is
// checked by the processor so that an unknown value reports INVALID_STATUS.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// HandleRegister handles POST /api/v1/partners/register
func (h *Handler) HandleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	resp, err := h.processor.RegisterPartner(c.Request.Context(), processor.RegisterPartnerRequest{
		CompanyName:    req.CompanyName,
		ContactPerson:  req.ContactPerson,
		Email:          req.Email,
		Phone:          req.Phone,
		BusinessType:   req.BusinessType,
		AdventureTypes: req.AdventureTypes,
		Location:       req.Location,
		Website:        req.Website,
		Description:    req.Description,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.Created(c, "Partner application submitted successfully! We will review and contact you soon.", resp)
}

// HandleList handles GET /api/v1/partners
func (h *Handler) HandleList(c *gin.Context) {
	page, limit := dto.ParsePagination(c, defaultListLimit)

	resp, err := h.processor.ListPartners(c.Request.Context(), processor.ListPartnersRequest{
		Status:       dto.OptionalQuery(c, "status"),
		BusinessType: dto.OptionalQuery(c, "businessType"),
		Search:       dto.OptionalQuery(c, "search"),
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.OK(c, "", resp)
}

// HandleGet handles GET /api/v1/partners/:id
func (h *Handler) HandleGet(c *gin.Context) {
	partnerID, ok := parsePartnerID(c)
	if !ok {
		return
	}

	partner, err := h.processor.GetPartner(c.Request.Context(), partnerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.OK(c, "", partner)
}

// HandleStats handles GET /api/v1/partners/stats
func (h *Handler) HandleStats(c *gin.Context) {
	stats, err := h.processor.GetStats(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.OK(c, "", stats)
}

// HandleUpdateStatus handles PATCH /api/v1/partners/:id/status
func (h *Handler) HandleUpdateStatus(c *gin.Context) {
	partnerID, ok := parsePartnerID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	resp, err := h.processor.UpdateStatus(c.Request.Context(), partnerID, req.Status)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.OK(c, fmt.Sprintf("Partner status updated to %s", resp.Status), resp)
}

// parsePartnerID reports a malformed id as a missing partner
func parsePartnerID(c *gin.Context) (uuid.UUID, bool) {
	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, processor.ErrPartnerNotFound)
		return uuid.Nil, false
	}
	return partnerID, true
}
