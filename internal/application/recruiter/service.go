package recruiter

import (
	"context"
	"fmt"
	"strings"

	"github.com/agaman/jobboard-api/internal/domain"
)

// Service serves the recruiter read surface: the job seekers assigned to a
// recruiter and how many applications each of them tracks.
type Service interface {
	ListJobSeekers(ctx context.Context, recruiterID string) ([]domain.User, error)
	JobCountsPerSeeker(ctx context.Context, recruiterID string) ([]domain.JobSeekerJobCount, error)
}

type userStore interface {
	ListByRecruiter(ctx context.Context, recruiterID string) ([]domain.User, error)
}

type userJobStore interface {
	CountByUser(ctx context.Context, userID string) (int, error)
}

type service struct {
	users    userStore
	userJobs userJobStore
}

func NewService(users userStore, userJobs userJobStore) Service {
	return &service{users: users, userJobs: userJobs}
}

func (s *service) ListJobSeekers(ctx context.Context, recruiterID string) ([]domain.User, error) {
	if recruiterID == "" {
		return nil, fmt.Errorf("recruiter id is required: %w", domain.ErrBadRequest)
	}
	seekers, err := s.users.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	if len(seekers) == 0 {
		return nil, domain.E(domain.ErrNotFound, "No job seekers assigned")
	}
	return seekers, nil
}

// JobCountsPerSeeker returns one row per assigned job seeker. A recruiter with
// no seekers gets an empty list, not an error.
func (s *service) JobCountsPerSeeker(ctx context.Context, recruiterID string) ([]domain.JobSeekerJobCount, error) {
	if recruiterID == "" {
		return nil, fmt.Errorf("recruiter id is required: %w", domain.ErrBadRequest)
	}
	seekers, err := s.users.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	counts := make([]domain.JobSeekerJobCount, 0, len(seekers))
	for _, u := range seekers {
		n, err := s.userJobs.CountByUser(ctx, u.UserID)
		if err != nil {
			return nil, err
		}
		counts = append(counts, domain.JobSeekerJobCount{
			UserID:   u.UserID,
			Name:     strings.TrimSpace(u.FirstName + " " + u.LastName),
			JobCount: n,
		})
	}
	return counts, nil
}
