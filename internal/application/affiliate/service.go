package affiliate

import (
	"context"
	"fmt"
	"time"

	"github.com/agaman/jobboard-api/internal/domain"
	"github.com/agaman/jobboard-api/internal/pkg/id"
	"golang.org/x/crypto/bcrypt"
)

const (
	fieldName          = "name"
	fieldUsername      = "username"
	fieldEmail         = "email"
	fieldPhone         = "phone"
	fieldAffiliateCode = "affiliate_code"
	fieldActive        = "active"
	fieldPasswordHash  = "password_hash"
)

type Service interface {
	List(ctx context.Context) ([]domain.Affiliate, error)
	Get(ctx context.Context, affiliateID string) (*domain.Affiliate, error)
	Create(ctx context.Context, req domain.CreateAffiliateRequest) (*domain.Affiliate, error)
	Update(ctx context.Context, affiliateID string, req domain.UpdateAffiliateRequest) (*domain.Affiliate, error)
	SetActive(ctx context.Context, affiliateID string, active bool) error
	UpdatePassword(ctx context.Context, affiliateID, newPassword string) error
	ValidateCode(ctx context.Context, code string) (*domain.Affiliate, error)
}

type affiliateStore interface {
	Put(ctx context.Context, a *domain.Affiliate) error
	Get(ctx context.Context, affiliateID string) (*domain.Affiliate, error)
	GetByUsername(ctx context.Context, username string) (*domain.Affiliate, error)
	GetByEmail(ctx context.Context, email string) (*domain.Affiliate, error)
	GetByCode(ctx context.Context, code string) (*domain.Affiliate, error)
	Scan(ctx context.Context) ([]domain.Affiliate, error)
	Update(ctx context.Context, affiliateID string, updates map[string]interface{}) error
	UpdatePassword(ctx context.Context, affiliateID, passwordHash string) error
	SetActive(ctx context.Context, affiliateID string, active bool) error
}

type service struct {
	repo affiliateStore
}

func NewService(repo affiliateStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]domain.Affiliate, error) {
	return s.repo.Scan(ctx)
}

func (s *service) Get(ctx context.Context, affiliateID string) (*domain.Affiliate, error) {
	return s.repo.Get(ctx, affiliateID)
}

func (s *service) Create(ctx context.Context, req domain.CreateAffiliateRequest) (*domain.Affiliate, error) {
	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("username already taken: %w", domain.ErrConflict)
	}
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
	}
	if _, err := s.repo.GetByCode(ctx, req.AffiliateCode); err == nil {
		return nil, fmt.Errorf("affiliate code already in use: %w", domain.ErrConflict)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	a := &domain.Affiliate{
		AffiliateID:   id.New(),
		Name:          req.Name,
		Username:      req.Username,
		Email:         req.Email,
		Phone:         req.Phone,
		PasswordHash:  string(hash),
		AffiliateCode: req.AffiliateCode,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Put(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Update(ctx context.Context, affiliateID string, req domain.UpdateAffiliateRequest) (*domain.Affiliate, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates[fieldName] = *req.Name
	}
	if req.Username != nil {
		updates[fieldUsername] = *req.Username
	}
	if req.Email != nil {
		updates[fieldEmail] = *req.Email
	}
	if req.Phone != nil {
		updates[fieldPhone] = *req.Phone
	}
	if req.AffiliateCode != nil {
		if other, err := s.repo.GetByCode(ctx, *req.AffiliateCode); err == nil && other.AffiliateID != affiliateID {
			return nil, fmt.Errorf("affiliate code already in use: %w", domain.ErrConflict)
		}
		updates[fieldAffiliateCode] = *req.AffiliateCode
	}
	if req.Active != nil {
		updates[fieldActive] = *req.Active
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", domain.ErrBadRequest)
	}
	if err := s.repo.Update(ctx, affiliateID, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, affiliateID)
}

func (s *service) SetActive(ctx context.Context, affiliateID string, active bool) error {
	if _, err := s.repo.Get(ctx, affiliateID); err != nil {
		return domain.E(domain.ErrNotFound, "Affiliate not found.")
	}
	return s.repo.SetActive(ctx, affiliateID, active)
}

func (s *service) UpdatePassword(ctx context.Context, affiliateID, newPassword string) error {
	if _, err := s.repo.Get(ctx, affiliateID); err != nil {
		return domain.E(domain.ErrNotFound, "Affiliate not found.")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, affiliateID, string(hash))
}

// ValidateCode resolves an affiliate code to an active affiliate. Inactive
// affiliates don't accept new signups through their code.
func (s *service) ValidateCode(ctx context.Context, code string) (*domain.Affiliate, error) {
	if code == "" {
		return nil, fmt.Errorf("affiliate code is required: %w", domain.ErrBadRequest)
	}
	a, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, domain.E(domain.ErrNotFound, "Invalid affiliate code.")
	}
	if !a.Active {
		return nil, domain.E(domain.ErrBadRequest, "Affiliate is not active.")
	}
	return a, nil
}
