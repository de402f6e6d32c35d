package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"

	"adventure-server/internal/apierrors"
	"adventure-server/internal/dto"
	"adventure-server/internal/observability"
	"adventure-server/internal/users/processor"

	"github.com/gin-gonic/gin"
)

// UserProcessor is the business logic behind the user endpoints
type UserProcessor interface {
	RegisterUser(ctx context.Context, req processor.RegisterUserRequest) (processor.RegisterUserResponse, error)
	VerifyEmail(ctx context.Context, token string) (processor.VerifyEmailResponse, error)
	GetStats(ctx context.Context) (processor.StatsResponse, error)
}

type Handler struct {
	processor UserProcessor
	logger    *observability.Logger
}

func New(processor UserProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RegisterRequest is the beta signup form
type RegisterRequest struct {
	FullName           string   `json:"fullName" binding:"required,min=2,max=100,personname"`
	Email              string   `json:"email" binding:"required,email"`
	Phone              *string  `json:"phone" binding:"omitempty,phone"`
	AdventureInterests []string `json:"adventureInterests" binding:"required,min=1,max=3,dive,adventure"`
	ExperienceLevel    string   `json:"experienceLevel" binding:"required,oneof=beginner intermediate advanced"`
	Location           string   `json:"location" binding:"required,min=2,max=200"`
	HearAboutUs        string   `json:"hearAboutUs" binding:"required,min=2,max=100"`
}

// HandleRegister handles POST /api/v1/users/register
func (h *Handler) HandleRegister(c *gin.Context) {
	ctx := c.Request.Context()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	resp, err := h.processor.RegisterUser(ctx, processor.RegisterUserRequest{
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		AdventureInterests: req.AdventureInterests,
		ExperienceLevel:    req.ExperienceLevel,
		Location:           req.Location,
		HearAboutUs:        req.HearAboutUs,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.Created(c, "Registration successful! Check your email for verification.", resp)
}

// HandleVerify handles GET /api/v1/users/verify/:token
func (h *Handler) HandleVerify(c *gin.Context) {
	resp, err := h.processor.VerifyEmail(c.Request.Context(), c.Param("token"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.OK(c, "Email verified successfully! Welcome to Adventure Triangle.", resp)
}

// HandleStats handles GET /api/v1/users/stats
func (h *Handler) HandleStats(c *gin.Context) {
	stats, err := h.processor.GetStats(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.OK(c, "", stats)
}
