package role

import (
	"context"
	"fmt"
	"strings"

	"github.com/agaman/jobboard-api/internal/domain"
	"github.com/agaman/jobboard-api/internal/pkg/id"
)

const (
	fieldName   = "name"
	fieldActive = "active"
)

type Service interface {
	List(ctx context.Context, nameFilter string, page, perPage int) ([]domain.Role, int, error)
	Get(ctx context.Context, roleID string) (*domain.Role, error)
	Create(ctx context.Context, name string) (*domain.Role, error)
	Update(ctx context.Context, req domain.UpdateRoleRequest) (*domain.Role, error)
	Delete(ctx context.Context, roleID string) error
	DeleteMany(ctx context.Context, roleIDs []string) error
}

type roleStore interface {
	Put(ctx context.Context, role *domain.Role) error
	Get(ctx context.Context, roleID string) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	Scan(ctx context.Context) ([]domain.Role, error)
	Update(ctx context.Context, roleID string, updates map[string]interface{}) error
	Delete(ctx context.Context, roleID string) error
}

type service struct {
	repo roleStore
}

func NewService(repo roleStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, nameFilter string, page, perPage int) ([]domain.Role, int, error) {
	roles, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, 0, err
	}
	if nameFilter != "" {
		needle := strings.ToLower(nameFilter)
		filtered := roles[:0]
		for _, r := range roles {
			if strings.Contains(strings.ToLower(r.Name), needle) {
				filtered = append(filtered, r)
			}
		}
		roles = filtered
	}
	total := len(roles)
	if perPage <= 0 {
		return roles, total, nil
	}
	start := (page - 1) * perPage
	if start >= total {
		return []domain.Role{}, total, nil
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return roles[start:end], total, nil
}

func (s *service) Get(ctx context.Context, roleID string) (*domain.Role, error) {
	return s.repo.Get(ctx, roleID)
}

func (s *service) Create(ctx context.Context, name string) (*domain.Role, error) {
	if name == "" {
		return nil, fmt.Errorf("role name is required: %w", domain.ErrBadRequest)
	}
	if _, err := s.repo.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("role %q already exists: %w", name, domain.ErrConflict)
	}
	r := &domain.Role{RoleID: id.New(), Name: name, Active: true}
	if err := s.repo.Put(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) Update(ctx context.Context, req domain.UpdateRoleRequest) (*domain.Role, error) {
	if _, err := s.repo.Get(ctx, req.RoleID); err != nil {
		return nil, domain.E(domain.ErrNotFound, "Role not found.")
	}
	if other, err := s.repo.GetByName(ctx, req.Name); err == nil && other.RoleID != req.RoleID {
		return nil, fmt.Errorf("role %q already exists: %w", req.Name, domain.ErrConflict)
	}
	updates := map[string]interface{}{fieldName: req.Name}
	if req.Active != nil {
		updates[fieldActive] = *req.Active
	}
	if err := s.repo.Update(ctx, req.RoleID, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, req.RoleID)
}

func (s *service) Delete(ctx context.Context, roleID string) error {
	if _, err := s.repo.Get(ctx, roleID); err != nil {
		return domain.E(domain.ErrNotFound, "Role not found.")
	}
	return s.repo.Delete(ctx, roleID)
}

func (s *service) DeleteMany(ctx context.Context, roleIDs []string) error {
	if len(roleIDs) == 0 {
		return fmt.Errorf("no role ids given: %w", domain.ErrBadRequest)
	}
	for _, rid := range roleIDs {
		if err := s.Delete(ctx, rid); err != nil {
			return fmt.Errorf("delete role %s: %w", rid, err)
		}
	}
	return nil
}
