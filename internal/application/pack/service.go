// Package pack manages purchasable job-post packages. Named pack because
// package is a keyword.
package pack

import (
	"context"
	"time"

	"github.com/agaman/jobboard-api/internal/domain"
	"github.com/agaman/jobboard-api/internal/pkg/id"
)

const (
	fieldName        = "name"
	fieldDescription = "description"
	fieldPriceCents  = "price_cents"
	fieldCurrency    = "currency"
	fieldJobCredits  = "job_credits"
	fieldActive      = "active"
)

type Service interface {
	List(ctx context.Context) ([]domain.Package, error)
	Get(ctx context.Context, packageID string) (*domain.Package, error)
	Create(ctx context.Context, req domain.PackageInput) (*domain.Package, error)
	Update(ctx context.Context, packageID string, req domain.PackageInput) (*domain.Package, error)
	Delete(ctx context.Context, packageID string) error
}

type packageStore interface {
	Put(ctx context.Context, p *domain.Package) error
	Get(ctx context.Context, packageID string) (*domain.Package, error)
	Scan(ctx context.Context) ([]domain.Package, error)
	Update(ctx context.Context, packageID string, updates map[string]interface{}) error
	Delete(ctx context.Context, packageID string) error
}

type service struct {
	repo packageStore
}

func NewService(repo packageStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]domain.Package, error) {
	return s.repo.Scan(ctx)
}

func (s *service) Get(ctx context.Context, packageID string) (*domain.Package, error) {
	return s.repo.Get(ctx, packageID)
}

func (s *service) Create(ctx context.Context, req domain.PackageInput) (*domain.Package, error) {
	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	now := time.Now().UTC()
	p := &domain.Package{
		PackageID:   id.New(),
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Currency:    currency,
		JobCredits:  req.JobCredits,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, packageID string, req domain.PackageInput) (*domain.Package, error) {
	if _, err := s.repo.Get(ctx, packageID); err != nil {
		return nil, domain.E(domain.ErrNotFound, "Package not found.")
	}
	updates := map[string]interface{}{
		fieldName:        req.Name,
		fieldDescription: req.Description,
		fieldPriceCents:  req.PriceCents,
		fieldJobCredits:  req.JobCredits,
	}
	if req.Currency != "" {
		updates[fieldCurrency] = req.Currency
	}
	if req.Active != nil {
		updates[fieldActive] = *req.Active
	}
	if err := s.repo.Update(ctx, packageID, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, packageID)
}

func (s *service) Delete(ctx context.Context, packageID string) error {
	if _, err := s.repo.Get(ctx, packageID); err != nil {
		return domain.E(domain.ErrNotFound, "Package not found.")
	}
	return s.repo.Delete(ctx, packageID)
}
