package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"

	"adventure-server/internal/apierrors"
	"adventure-server/internal/dto"
	"adventure-server/internal/newsletter/processor"
	"adventure-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// NewsletterProcessor is the business logic behind the newsletter endpoint
type NewsletterProcessor interface {
	Subscribe(ctx context.Context, email string) (processor.SubscribeResponse, error)
}

type Handler struct {
	processor NewsletterProcessor
	logger    *observability.Logger
}

func New(processor NewsletterProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// HandleSubscribe handles POST /api/v1/newsletter/subscribe
func (h *Handler) HandleSubscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	resp, err := h.processor.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dto.Created(c, "Subscribed to the Adventure Triangle newsletter", resp)
}
