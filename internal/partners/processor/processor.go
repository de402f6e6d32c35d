package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adventure-server/internal/dto"
	"adventure-server/internal/email"
	"adventure-server/internal/observability"
	"adventure-server/internal/store"
	"adventure-server/internal/validation"

	"github.com/google/uuid"
)

const recentPartnersLimit = 5

// PartnerStore defines the database operations required by PartnerProcessor
type PartnerStore interface {
	CreatePartner(ctx context.Context, params store.CreatePartnerParams) (store.Partner, error)
	GetPartnerByID(ctx context.Context, partnerID uuid.UUID) (store.Partner, error)
	GetPartnerByEmail(ctx context.Context, email string) (store.Partner, error)
	ListPartners(ctx context.Context, params store.ListPartnersParams) (store.ListPartnersResult, error)
	CountPartners(ctx context.Context) (int, error)
	UpdatePartnerStatus(ctx context.Context, partnerID uuid.UUID, status string) (store.Partner, error)
	CountPartnersByStatus(ctx context.Context) ([]store.CountByKey, error)
	CountPartnersByBusinessType(ctx context.Context) ([]store.CountByKey, error)
	GetRecentPartners(ctx context.Context, limit int) ([]store.Partner, error)
}

// EmailSender sends transactional emails on a best-effort basis
type EmailSender interface {
	Send(ctx context.Context, to string, msg email.Message) email.Result
}

var (
	ErrDuplicateEmail  = errors.New("partner with this email already exists")
	ErrInvalidStatus   = errors.New("invalid partner status")
	ErrPartnerNotFound = errors.New("partner not found")
)

type PartnerProcessor struct {
	store       PartnerStore
	emailSender EmailSender
	logger      *observability.Logger
}

func New(store PartnerStore, emailSender EmailSender, logger *observability.Logger) PartnerProcessor {
	return PartnerProcessor{
		store:       store,
		emailSender: emailSender,
		logger:      logger,
	}
}

// RegisterPartnerRequest carries a validated partner application
type RegisterPartnerRequest struct {
	CompanyName    string
	ContactPerson  string
	Email          string
	Phone          string
	BusinessType   string
	AdventureTypes []string
	Location       string
	Website        *string
	Description    string
}

type RegisterPartnerResponse struct {
	PartnerID   uuid.UUID `json:"partnerId"`
	CompanyName string    `json:"companyName"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// RegisterPartner stores a pending partner application and acknowledges it by email
func (p *PartnerProcessor) RegisterPartner(ctx context.Context, req RegisterPartnerRequest) (RegisterPartnerResponse, error) {
	emailAddr := validation.NormalizeEmail(req.Email)
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: emailAddr})

	_, err := p.store.GetPartnerByEmail(ctx, emailAddr)
	if err == nil {
		return RegisterPartnerResponse{}, ErrDuplicateEmail
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check partner email", err)
		return RegisterPartnerResponse{}, fmt.Errorf("failed to check partner email: %w", err)
	}

	partner, err := p.store.CreatePartner(ctx, store.CreatePartnerParams{
		CompanyName:    validation.Sanitize(req.CompanyName),
		ContactPerson:  validation.Sanitize(req.ContactPerson),
		Email:          emailAddr,
		Phone:          req.Phone,
		BusinessType:   req.BusinessType,
		AdventureTypes: validation.Dedupe(req.AdventureTypes),
		Location:       validation.Sanitize(req.Location),
		Website:        req.Website,
		Description:    validation.Sanitize(req.Description),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return RegisterPartnerResponse{}, ErrDuplicateEmail
		}
		p.logger.Error(ctx, "failed to create partner", err)
		return RegisterPartnerResponse{}, fmt.Errorf("failed to create partner: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "partner_id", Value: partner.ID.String()})
	p.logger.Info(ctx, "partner application received")

	result := p.emailSender.Send(ctx, partner.Email, email.PartnerConfirmation{
		ContactPerson:  partner.ContactPerson,
		CompanyName:    partner.CompanyName,
		BusinessType:   partner.BusinessType,
		AdventureTypes: partner.AdventureTypes,
	})
	if result.Err != nil {
		p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: result.Err.Error()}), "failed to send partner confirmation email")
	}

	return RegisterPartnerResponse{
		PartnerID:   partner.ID,
		CompanyName: partner.CompanyName,
		Status:      partner.Status,
		SubmittedAt: partner.CreatedAt,
	}, nil
}

// ListPartnersRequest filters and pages the partner list
type ListPartnersRequest struct {
	Status       *string
	BusinessType *string
	Search       *string
	Page         int
	Limit        int
}

type ListPartnersResponse struct {
	Partners   []store.Partner `json:"partners"`
	Pagination dto.Pagination  `json:"pagination"`
}

// ListPartners returns one page of partners, newest first
func (p *PartnerProcessor) ListPartners(ctx context.Context, req ListPartnersRequest) (ListPartnersResponse, error) {
	result, err := p.store.ListPartners(ctx, store.ListPartnersParams{
		Status:       req.Status,
		BusinessType: req.BusinessType,
		Search:       req.Search,
		Page:         req.Page,
		Limit:        req.Limit,
	})
	if err != nil {
		return ListPartnersResponse{}, fmt.Errorf("failed to list partners: %w", err)
	}

	partners := result.Partners
	if partners == nil {
		partners = []store.Partner{}
	}

	return ListPartnersResponse{
		Partners: partners,
		Pagination: dto.Pagination{
			Total: result.TotalCount,
			Page:  result.Page,
			Limit: result.Limit,
			Pages: result.TotalPages,
		},
	}, nil
}

// GetPartner returns a single partner application
func (p *PartnerProcessor) GetPartner(ctx context.Context, partnerID uuid.UUID) (store.Partner, error) {
	partner, err := p.store.GetPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Partner{}, ErrPartnerNotFound
		}
		return store.Partner{}, fmt.Errorf("failed to get partner: %w", err)
	}
	return partner, nil
}

type RecentPartner struct {
	CompanyName  string    `json:"companyName"`
	BusinessType string    `json:"businessType"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type StatsResponse struct {
	TotalPartners    int                `json:"totalPartners"`
	PartnersByStatus []store.CountByKey `json:"partnersByStatus"`
	PartnersByType   []store.CountByKey `json:"partnersByType"`
	RecentPartners   []RecentPartner    `json:"recentPartners"`
}

// GetStats aggregates partner applications for the dashboard
func (p *PartnerProcessor) GetStats(ctx context.Context) (StatsResponse, error) {
	total, err := p.store.CountPartners(ctx)
	if err != nil {
		return StatsResponse{}, fmt.Errorf("failed to count partners: %w", err)
	}

	byStatus, err := p.store.CountPartnersByStatus(ctx)
	if err != nil {
		return StatsResponse{}, fmt.Errorf("failed to count partners by status: %w", err)
	}

	byType, err := p.store.CountPartnersByBusinessType(ctx)
	if err != nil {
		return StatsResponse{}, fmt.Errorf("failed to count partners by business type: %w", err)
	}

	recent, err := p.store.GetRecentPartners(ctx, recentPartnersLimit)
	if err != nil {
		return StatsResponse{}, fmt.Errorf("failed to get recent partners: %w", err)
	}

	recentPartners := make([]RecentPartner, 0, len(recent))
	for _, partner := range recent {
		recentPartners = append(recentPartners, RecentPartner{
			CompanyName:  partner.CompanyName,
			BusinessType: partner.BusinessType,
			Status:       partner.Status,
			CreatedAt:    partner.CreatedAt,
		})
	}

	if byStatus == nil {
		byStatus = []store.CountByKey{}
	}
	if byType == nil {
		byType = []store.CountByKey{}
	}

	return StatsResponse{
		TotalPartners:    total,
		PartnersByStatus: byStatus,
		PartnersByType:   byType,
		RecentPartners:   recentPartners,
	}, nil
}

type UpdateStatusResponse struct {
	PartnerID   uuid.UUID `json:"partnerId"`
	CompanyName string    `json:"companyName"`
	Status      string    `json:"status"`
}

// UpdateStatus moves a partner application to status and notifies the partner.
// Statuses outside the enum leave the record untouched.
func (p *PartnerProcessor) UpdateStatus(ctx context.Context, partnerID uuid.UUID, status string) (UpdateStatusResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "partner_id", Value: partnerID.String()},
		observability.Field{Key: "status", Value: status},
	)

	if !store.IsValidPartnerStatus(status) {
		return UpdateStatusResponse{}, ErrInvalidStatus
	}

	partner, err := p.store.UpdatePartnerStatus(ctx, partnerID, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return UpdateStatusResponse{}, ErrPartnerNotFound
		}
		p.logger.Error(ctx, "failed to update partner status", err)
		return UpdateStatusResponse{}, fmt.Errorf("failed to update partner status: %w", err)
	}

	p.logger.Info(ctx, "partner status updated")

	result := p.emailSender.Send(ctx, partner.Email, email.PartnerStatusUpdate{
		CompanyName: partner.CompanyName,
		Status:      partner.Status,
	})
	if result.Err != nil {
		p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: result.Err.Error()}), "failed to send partner status email")
	}

	return UpdateStatusResponse{
		PartnerID:   partner.ID,
		CompanyName: partner.CompanyName,
		Status:      partner.Status,
	}, nil
}
