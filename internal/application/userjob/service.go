package userjob

import (
	"context"
	"fmt"
	"time"

	"github.com/agaman/jobboard-api/internal/domain"
	"github.com/agaman/jobboard-api/internal/pkg/id"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldTitle       = "title"
	fieldCompany     = "company"
	fieldLocation    = "location"
	fieldURL         = "url"
	fieldStatus      = "status"
	fieldActive      = "active"
	fieldProblem     = "problem"
	fieldProblemNote = "problem_note"
)

// Service tracks job applications per job seeker: CRUD, the problem-review
// queue, and the application counters the dashboards read.
type Service interface {
	Create(ctx context.Context, req domain.CreateUserJobRequest) (*domain.UserJob, error)
	Get(ctx context.Context, userJobID string) (*domain.UserJob, error)
	List(ctx context.Context, searchName string, page, perPage int) ([]domain.UserJob, int, error)
	ListByUser(ctx context.Context, userID string) ([]domain.UserJob, error)
	Update(ctx context.Context, userJobID string, req domain.UpdateUserJobRequest) (*domain.UserJob, error)
	SetActive(ctx context.Context, userJobID string, active bool) error
	DeleteMany(ctx context.Context, userJobIDs []string) error
	Exists(ctx context.Context, userID, jobID string) (bool, error)
	SetProblem(ctx context.Context, req domain.UserJobProblemRequest) error
	ListProblems(ctx context.Context, searchName string, page, perPage int) ([]domain.UserJob, int, error)
	CountsForUser(ctx context.Context, userID string) (*domain.UserJobCounts, error)
	CountBetween(ctx context.Context, req domain.UserJobsDateCountRequest) (int, error)
	CountByAffiliate(ctx context.Context, affiliateID string) (int, error)
}

type userJobStore interface {
	Put(ctx context.Context, uj *domain.UserJob) error
	Get(ctx context.Context, userJobID string) (*domain.UserJob, error)
	Update(ctx context.Context, userJobID string, updates map[string]interface{}) error
	SetActive(ctx context.Context, userJobID string, active bool) error
	Scan(ctx context.Context, searchName string) ([]domain.UserJob, error)
	ScanProblems(ctx context.Context, searchName string) ([]domain.UserJob, error)
	ListByUser(ctx context.Context, userID string) ([]domain.UserJob, error)
	Exists(ctx context.Context, userID, jobID string) (bool, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	CountProblemsByUser(ctx context.Context, userID string) (int, error)
	CountByUserBetween(ctx context.Context, userID string, from, to time.Time) (int, error)
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	ListByAffiliate(ctx context.Context, affiliateID string) ([]domain.User, error)
}

type service struct {
	repo  userJobStore
	users userStore
}

func NewService(repo userJobStore, users userStore) Service {
	return &service{repo: repo, users: users}
}

// Create tracks a new application. One row per (user, job) pair; a second
// attempt for the same posting is rejected.
func (s *service) Create(ctx context.Context, req domain.CreateUserJobRequest) (*domain.UserJob, error) {
	if _, err := s.users.Get(ctx, req.UserID); err != nil {
		return nil, domain.E(domain.ErrNotFound, "User not found.")
	}
	exists, err := s.repo.Exists(ctx, req.UserID, req.JobID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.E(domain.ErrConflict, "Job already exists for the user with the same details.")
	}
	now := time.Now().UTC()
	appliedAt := now
	if req.AppliedAt != nil {
		appliedAt = req.AppliedAt.UTC()
	}
	uj := &domain.UserJob{
		UserJobID: id.New(),
		UserID:    req.UserID,
		JobID:     req.JobID,
		Title:     req.Title,
		Company:   req.Company,
		Location:  req.Location,
		URL:       req.URL,
		Status:    req.Status,
		Active:    true,
		AppliedAt: appliedAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Put(ctx, uj); err != nil {
		return nil, err
	}
	return uj, nil
}

func (s *service) Get(ctx context.Context, userJobID string) (*domain.UserJob, error) {
	uj, err := s.repo.Get(ctx, userJobID)
	if err != nil {
		return nil, domain.E(domain.ErrNotFound, fmt.Sprintf("No job found with ID %s.", userJobID))
	}
	return uj, nil
}

// List returns one page of active tracked applications plus the unpaged total.
func (s *service) List(ctx context.Context, searchName string, page, perPage int) ([]domain.UserJob, int, error) {
	jobs, err := s.repo.Scan(ctx, searchName)
	if err != nil {
		return nil, 0, err
	}
	return paginate(jobs, page, perPage)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]domain.UserJob, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required: %w", domain.ErrBadRequest)
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Update(ctx context.Context, userJobID string, req domain.UpdateUserJobRequest) (*domain.UserJob, error) {
	if _, err := s.repo.Get(ctx, userJobID); err != nil {
		return nil, domain.E(domain.ErrNotFound, fmt.Sprintf("No job found with ID %s.", userJobID))
	}
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates[fieldTitle] = *req.Title
	}
	if req.Company != nil {
		updates[fieldCompany] = *req.Company
	}
	if req.Location != nil {
		updates[fieldLocation] = *req.Location
	}
	if req.URL != nil {
		updates[fieldURL] = *req.URL
	}
	if req.Status != nil {
		updates[fieldStatus] = *req.Status
	}
	if req.Active != nil {
		updates[fieldActive] = *req.Active
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", domain.ErrBadRequest)
	}
	if err := s.repo.Update(ctx, userJobID, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userJobID)
}

// SetActive soft-deletes (false) or restores (true) a tracked application.
func (s *service) SetActive(ctx context.Context, userJobID string, active bool) error {
	if _, err := s.repo.Get(ctx, userJobID); err != nil {
		return domain.E(domain.ErrNotFound, fmt.Sprintf("No job found with ID %s.", userJobID))
	}
	return s.repo.SetActive(ctx, userJobID, active)
}

// DeleteMany soft-deletes a batch. The first failure stops the batch;
// already-processed rows stay deleted.
func (s *service) DeleteMany(ctx context.Context, userJobIDs []string) error {
	if len(userJobIDs) == 0 {
		return fmt.Errorf("no user job ids given: %w", domain.ErrBadRequest)
	}
	for _, ujID := range userJobIDs {
		if err := s.SetActive(ctx, ujID, false); err != nil {
			return fmt.Errorf("delete user job %s: %w", ujID, err)
		}
	}
	return nil
}

// Exists reports whether the user already tracks the given posting. Blank
// identifiers report false rather than erroring.
func (s *service) Exists(ctx context.Context, userID, jobID string) (bool, error) {
	if userID == "" || jobID == "" {
		return false, nil
	}
	return s.repo.Exists(ctx, userID, jobID)
}

// SetProblem flags or clears an application in the admin review queue.
func (s *service) SetProblem(ctx context.Context, req domain.UserJobProblemRequest) error {
	if _, err := s.repo.Get(ctx, req.UserJobID); err != nil {
		return domain.E(domain.ErrNotFound, fmt.Sprintf("No job found with ID %s.", req.UserJobID))
	}
	updates := map[string]interface{}{fieldProblem: req.Problem}
	if req.Problem {
		updates[fieldProblemNote] = req.Note
	} else {
		updates[fieldProblemNote] = ""
	}
	return s.repo.Update(ctx, req.UserJobID, updates)
}

func (s *service) ListProblems(ctx context.Context, searchName string, page, perPage int) ([]domain.UserJob, int, error) {
	jobs, err := s.repo.ScanProblems(ctx, searchName)
	if err != nil {
		return nil, 0, err
	}
	return paginate(jobs, page, perPage)
}

func (s *service) CountsForUser(ctx context.Context, userID string) (*domain.UserJobCounts, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, domain.E(domain.ErrNotFound, "User not found.")
	}
	total, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	problem, err := s.repo.CountProblemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.UserJobCounts{Total: total, Problem: problem}, nil
}

func (s *service) CountBetween(ctx context.Context, req domain.UserJobsDateCountRequest) (int, error) {
	if !req.To.After(req.From) {
		return 0, fmt.Errorf("date range is empty: %w", domain.ErrBadRequest)
	}
	return s.repo.CountByUserBetween(ctx, req.UserID, req.From, req.To)
}

// CountByAffiliate sums tracked applications across every user the affiliate
// recruited.
func (s *service) CountByAffiliate(ctx context.Context, affiliateID string) (int, error) {
	if affiliateID == "" {
		return 0, fmt.Errorf("affiliate id is required: %w", domain.ErrBadRequest)
	}
	users, err := s.users.ListByAffiliate(ctx, affiliateID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, u := range users {
		n, err := s.repo.CountByUser(ctx, u.UserID)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// paginate slices after the scan; the tables stay small enough for that to hold.
func paginate(jobs []domain.UserJob, page, perPage int) ([]domain.UserJob, int, error) {
	total := len(jobs)
	if perPage <= 0 {
		return jobs, total, nil
	}
	start := (page - 1) * perPage
	if start >= total {
		return []domain.UserJob{}, total, nil
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return jobs[start:end], total, nil
}
