package setting

import (
	"context"
	"fmt"

	"github.com/agaman/jobboard-api/internal/domain"
)

type Service interface {
	List(ctx context.Context) ([]domain.Setting, error)
	Get(ctx context.Context, name string) (*domain.Setting, error)
	Create(ctx context.Context, s domain.Setting) error
	Update(ctx context.Context, s domain.Setting) error
}

type settingStore interface {
	Put(ctx context.Context, s *domain.Setting) error
	GetByName(ctx context.Context, name string) (*domain.Setting, error)
	Scan(ctx context.Context) ([]domain.Setting, error)
}

type service struct {
	repo settingStore
}

func NewService(repo settingStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]domain.Setting, error) {
	return s.repo.Scan(ctx)
}

func (s *service) Get(ctx context.Context, name string) (*domain.Setting, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *service) Create(ctx context.Context, setting domain.Setting) error {
	if _, err := s.repo.GetByName(ctx, setting.Name); err == nil {
		return fmt.Errorf("setting %q already exists: %w", setting.Name, domain.ErrConflict)
	}
	return s.repo.Put(ctx, &setting)
}

func (s *service) Update(ctx context.Context, setting domain.Setting) error {
	if _, err := s.repo.GetByName(ctx, setting.Name); err != nil {
		return domain.E(domain.ErrNotFound, "Setting not found.")
	}
	return s.repo.Put(ctx, &setting)
}
