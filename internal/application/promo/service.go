package promo

import (
	"context"
	"fmt"
	"time"

	"github.com/agaman/jobboard-api/internal/domain"
	"github.com/agaman/jobboard-api/internal/pkg/id"
)

const (
	fieldCode            = "promo_code"
	fieldDescription     = "description"
	fieldDiscountPercent = "discount_percent"
	fieldValidFrom       = "valid_from"
	fieldValidTo         = "valid_to"
	fieldActive          = "active"
)

const dateLayout = "2006-01-02"

type Service interface {
	List(ctx context.Context) ([]domain.Promo, error)
	Get(ctx context.Context, promoID string) (*domain.Promo, error)
	GetByCode(ctx context.Context, code string) (*domain.Promo, error)
	Create(ctx context.Context, req domain.PromoInput) (*domain.Promo, error)
	Update(ctx context.Context, promoID string, req domain.PromoInput) (*domain.Promo, error)
	SetActive(ctx context.Context, promoID string, active bool) error
	Delete(ctx context.Context, promoID string) error
}

type promoStore interface {
	Put(ctx context.Context, p *domain.Promo) error
	Get(ctx context.Context, promoID string) (*domain.Promo, error)
	GetByCode(ctx context.Context, code string) (*domain.Promo, error)
	Scan(ctx context.Context) ([]domain.Promo, error)
	Update(ctx context.Context, promoID string, updates map[string]interface{}) error
	SetActive(ctx context.Context, promoID string, active bool) error
	Delete(ctx context.Context, promoID string) error
}

type service struct {
	repo promoStore
	now  func() time.Time
}

func NewService(repo promoStore) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]domain.Promo, error) {
	return s.repo.Scan(ctx)
}

func (s *service) Get(ctx context.Context, promoID string) (*domain.Promo, error) {
	return s.repo.Get(ctx, promoID)
}

// GetByCode resolves a promo code for checkout. Inactive codes and codes
// outside their validity window are rejected.
func (s *service) GetByCode(ctx context.Context, code string) (*domain.Promo, error) {
	if code == "" {
		return nil, fmt.Errorf("promo code is required: %w", domain.ErrBadRequest)
	}
	p, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, domain.E(domain.ErrNotFound, "Invalid promo code.")
	}
	if !p.Active {
		return nil, domain.E(domain.ErrBadRequest, "Promo code is not active.")
	}
	now := s.now().UTC()
	if !p.ValidFrom.IsZero() && now.Before(p.ValidFrom) {
		return nil, domain.E(domain.ErrBadRequest, "Promo code is not yet valid.")
	}
	if !p.ValidTo.IsZero() && now.After(p.ValidTo) {
		return nil, domain.E(domain.ErrBadRequest, "Promo code has expired.")
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, req domain.PromoInput) (*domain.Promo, error) {
	if _, err := s.repo.GetByCode(ctx, req.Code); err == nil {
		return nil, fmt.Errorf("promo code already exists: %w", domain.ErrConflict)
	}
	validFrom, validTo, err := parseValidity(req)
	if err != nil {
		return nil, err
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	now := time.Now().UTC()
	p := &domain.Promo{
		PromoID:         id.New(),
		Code:            req.Code,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		ValidFrom:       validFrom,
		ValidTo:         validTo,
		Active:          active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, promoID string, req domain.PromoInput) (*domain.Promo, error) {
	if _, err := s.repo.Get(ctx, promoID); err != nil {
		return nil, domain.E(domain.ErrNotFound, "Promo not found.")
	}
	if other, err := s.repo.GetByCode(ctx, req.Code); err == nil && other.PromoID != promoID {
		return nil, fmt.Errorf("promo code already exists: %w", domain.ErrConflict)
	}
	validFrom, validTo, err := parseValidity(req)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		fieldCode:            req.Code,
		fieldDescription:     req.Description,
		fieldDiscountPercent: req.DiscountPercent,
	}
	if !validFrom.IsZero() {
		updates[fieldValidFrom] = validFrom.Format(time.RFC3339)
	}
	if !validTo.IsZero() {
		updates[fieldValidTo] = validTo.Format(time.RFC3339)
	}
	if req.Active != nil {
		updates[fieldActive] = *req.Active
	}
	if err := s.repo.Update(ctx, promoID, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, promoID)
}

func (s *service) SetActive(ctx context.Context, promoID string, active bool) error {
	if _, err := s.repo.Get(ctx, promoID); err != nil {
		return domain.E(domain.ErrNotFound, "Promo not found.")
	}
	return s.repo.SetActive(ctx, promoID, active)
}

func (s *service) Delete(ctx context.Context, promoID string) error {
	if _, err := s.repo.Get(ctx, promoID); err != nil {
		return domain.E(domain.ErrNotFound, "Promo not found.")
	}
	return s.repo.Delete(ctx, promoID)
}

func parseValidity(req domain.PromoInput) (validFrom, validTo time.Time, err error) {
	if req.ValidFrom != "" {
		validFrom, err = time.Parse(dateLayout, req.ValidFrom)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("valid_from must be in YYYY-MM-DD format: %w", domain.ErrBadRequest)
		}
	}
	if req.ValidTo != "" {
		validTo, err = time.Parse(dateLayout, req.ValidTo)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("valid_to must be in YYYY-MM-DD format: %w", domain.ErrBadRequest)
		}
	}
	if !validFrom.IsZero() && !validTo.IsZero() && validTo.Before(validFrom) {
		return time.Time{}, time.Time{}, fmt.Errorf("valid_to precedes valid_from: %w", domain.ErrBadRequest)
	}
	return validFrom, validTo, nil
}
