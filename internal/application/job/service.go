package job

import (
	"context"
	"fmt"

	"github.com/agaman/jobboard-api/internal/domain"
)

// Service serves the stored-jobs read surface. Rows are written by the
// external fetcher pipeline, not through this API.
type Service interface {
	List(ctx context.Context) ([]domain.Job, error)
	Get(ctx context.Context, jobID string) (*domain.Job, error)
	Search(ctx context.Context, req domain.JobSearchRequest) ([]domain.Job, error)
}

type jobStore interface {
	Get(ctx context.Context, jobID string) (*domain.Job, error)
	Scan(ctx context.Context) ([]domain.Job, error)
	Search(ctx context.Context, title, location string) ([]domain.Job, error)
}

type service struct {
	repo jobStore
}

func NewService(repo jobStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]domain.Job, error) {
	return s.repo.Scan(ctx)
}

func (s *service) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	return s.repo.Get(ctx, jobID)
}

func (s *service) Search(ctx context.Context, req domain.JobSearchRequest) ([]domain.Job, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required: %w", domain.ErrBadRequest)
	}
	return s.repo.Search(ctx, req.Title, req.Location)
}
