package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"adventure-server/internal/observability"

	"github.com/google/uuid"
)

const partnerColumns = `id, company_name, contact_person, email, phone, business_type, adventure_types,
	location, website, description, status, created_at, updated_at`

const sqlCreatePartner = `
INSERT INTO partners (company_name, contact_person, email, phone, business_type, adventure_types, location, website, description)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + partnerColumns

// CreatePartner inserts a pending partner application. A taken email yields ErrDuplicate.
func (s *Store) CreatePartner(ctx context.Context, params CreatePartnerParams) (Partner, error) {
	var partner Partner
	err := s.db.GetContext(ctx, &partner, sqlCreatePartner,
		params.CompanyName,
		params.ContactPerson,
		params.Email,
		params.Phone,
		params.BusinessType,
		StringArray(params.AdventureTypes),
		params.Location,
		params.Website,
		params.Description,
	)
	if err != nil {
		err = classifyError(err)
		if errors.Is(err, ErrDuplicate) {
			return Partner{}, err
		}
		s.logger.Error(ctx, "failed to create partner", err)
		return Partner{}, fmt.Errorf("failed to create partner: %w", err)
	}
	return partner, nil
}

const sqlGetPartnerByID = `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1`

// GetPartnerByID retrieves a partner by ID
func (s *Store) GetPartnerByID(ctx context.Context, partnerID uuid.UUID) (Partner, error) {
	var partner Partner
	err := s.db.GetContext(ctx, &partner, sqlGetPartnerByID, partnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Partner{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get partner by id", err)
		return Partner{}, fmt.Errorf("failed to get partner by id: %w", err)
	}
	return partner, nil
}

const sqlGetPartnerByEmail = `SELECT ` + partnerColumns + ` FROM partners WHERE email = $1`

// GetPartnerByEmail retrieves a partner by normalized email
func (s *Store) GetPartnerByEmail(ctx context.Context, email string) (Partner, error) {
	var partner Partner
	err := s.db.GetContext(ctx, &partner, sqlGetPartnerByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Partner{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get partner by email", err)
		return Partner{}, fmt.Errorf("failed to get partner by email: %w", err)
	}
	return partner, nil
}

// ListPartners returns partners newest first with optional filters
func (s *Store) ListPartners(ctx context.Context, params ListPartnersParams) (ListPartnersResult, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM partners WHERE 1=1`

	args := []interface{}{}
	argCount := 0

	if params.Status != nil {
		argCount++
		filter := fmt.Sprintf(" AND status = $%d", argCount)
		query += filter
		countQuery += filter
		args = append(args, *params.Status)
	}

	if params.BusinessType != nil {
		argCount++
		filter := fmt.Sprintf(" AND business_type = $%d", argCount)
		query += filter
		countQuery += filter
		args = append(args, *params.BusinessType)
	}

	if params.Search != nil && *params.Search != "" {
		argCount++
		filter := fmt.Sprintf(" AND company_name ILIKE $%d ESCAPE '\\'", argCount)
		query += filter
		countQuery += filter
		args = append(args, "%"+escapeLike(*params.Search)+"%")
	}

	var totalCount int
	if err := s.db.GetContext(ctx, &totalCount, countQuery, args...); err != nil {
		s.logger.Error(ctx, "failed to count partners", err)
		return ListPartnersResult{}, fmt.Errorf("failed to count partners: %w", err)
	}

	offset := pageOffset(params.Page, params.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", argCount+1, argCount+2)
	args = append(args, params.Limit, offset)

	partners := []Partner{}
	if err := s.db.SelectContext(ctx, &partners, query, args...); err != nil {
		s.logger.Error(ctx, "failed to list partners", err)
		return ListPartnersResult{}, fmt.Errorf("failed to list partners: %w", err)
	}

	return ListPartnersResult{
		Partners:   partners,
		TotalCount: totalCount,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: totalPages(totalCount, params.Limit),
	}, nil
}

const sqlCountPartners = `SELECT COUNT(*) FROM partners`

// CountPartners returns the number of partners
func (s *Store) CountPartners(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountPartners); err != nil {
		s.logger.Error(ctx, "failed to count partners", err)
		return 0, fmt.Errorf("failed to count partners: %w", err)
	}
	return count, nil
}

const sqlUpdatePartnerStatus = `
UPDATE partners
SET status = $2, updated_at = NOW()
WHERE id = $1
RETURNING ` + partnerColumns

// UpdatePartnerStatus overwrites the status of a partner
func (s *Store) UpdatePartnerStatus(ctx context.Context, partnerID uuid.UUID, status string) (Partner, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "partner_id", Value: partnerID},
		observability.Field{Key: "status", Value: status},
	)

	var partner Partner
	err := s.db.GetContext(ctx, &partner, sqlUpdatePartnerStatus, partnerID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Partner{}, ErrNotFound
		}
		err = classifyError(err)
		s.logger.Error(ctx, "failed to update partner status", err)
		return Partner{}, fmt.Errorf("failed to update partner status: %w", err)
	}
	return partner, nil
}

const sqlCountPartnersByStatus = `
SELECT status AS key, COUNT(*) AS count
FROM partners
GROUP BY status
ORDER BY count DESC, key`

// CountPartnersByStatus groups partners by application status
func (s *Store) CountPartnersByStatus(ctx context.Context) ([]CountByKey, error) {
	counts := []CountByKey{}
	if err := s.db.SelectContext(ctx, &counts, sqlCountPartnersByStatus); err != nil {
		s.logger.Error(ctx, "failed to count partners by status", err)
		return nil, fmt.Errorf("failed to count partners by status: %w", err)
	}
	return counts, nil
}

const sqlCountPartnersByBusinessType = `
SELECT business_type AS key, COUNT(*) AS count
FROM partners
GROUP BY business_type
ORDER BY count DESC, key`

// CountPartnersByBusinessType groups partners by business type
func (s *Store) CountPartnersByBusinessType(ctx context.Context) ([]CountByKey, error) {
	counts := []CountByKey{}
	if err := s.db.SelectContext(ctx, &counts, sqlCountPartnersByBusinessType); err != nil {
		s.logger.Error(ctx, "failed to count partners by business type", err)
		return nil, fmt.Errorf("failed to count partners by business type: %w", err)
	}
	return counts, nil
}

const sqlGetRecentPartners = `SELECT ` + partnerColumns + ` FROM partners ORDER BY created_at DESC LIMIT $1`

// GetRecentPartners returns the newest partner applications first
func (s *Store) GetRecentPartners(ctx context.Context, limit int) ([]Partner, error) {
	partners := []Partner{}
	if err := s.db.SelectContext(ctx, &partners, sqlGetRecentPartners, limit); err != nil {
		s.logger.Error(ctx, "failed to get recent partners", err)
		return nil, fmt.Errorf("failed to get recent partners: %w", err)
	}
	return partners, nil
}

// escapeLike escapes LIKE wildcards so the term matches literally
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
