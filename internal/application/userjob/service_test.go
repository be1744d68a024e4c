package userjob

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/agaman/jobboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockUserJobStore struct{ mock.Mock }

func (m *mockUserJobStore) Put(ctx context.Context, uj *domain.UserJob) error {
	return m.Called(ctx, uj).Error(0)
}
func (m *mockUserJobStore) Get(ctx context.Context, userJobID string) (*domain.UserJob, error) {
	args := m.Called(ctx, userJobID)
	if uj, _ := args.Get(0).(*domain.UserJob); uj != nil {
		return uj, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserJobStore) Update(ctx context.Context, userJobID string, updates map[string]interface{}) error {
	return m.Called(ctx, userJobID, updates).Error(0)
}
func (m *mockUserJobStore) SetActive(ctx context.Context, userJobID string, active bool) error {
	return m.Called(ctx, userJobID, active).Error(0)
}
func (m *mockUserJobStore) Scan(ctx context.Context, searchName string) ([]domain.UserJob, error) {
	args := m.Called(ctx, searchName)
	return args.Get(0).([]domain.UserJob), args.Error(1)
}
func (m *mockUserJobStore) ScanProblems(ctx context.Context, searchName string) ([]domain.UserJob, error) {
	args := m.Called(ctx, searchName)
	return args.Get(0).([]domain.UserJob), args.Error(1)
}
func (m *mockUserJobStore) ListByUser(ctx context.Context, userID string) ([]domain.UserJob, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.UserJob), args.Error(1)
}
func (m *mockUserJobStore) Exists(ctx context.Context, userID, jobID string) (bool, error) {
	args := m.Called(ctx, userID, jobID)
	return args.Bool(0), args.Error(1)
}
func (m *mockUserJobStore) CountByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}
func (m *mockUserJobStore) CountProblemsByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}
func (m *mockUserJobStore) CountByUserBetween(ctx context.Context, userID string, from, to time.Time) (int, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Int(0), args.Error(1)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) ListByAffiliate(ctx context.Context, affiliateID string) ([]domain.User, error) {
	args := m.Called(ctx, affiliateID)
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- helpers ---

func baseReq() domain.CreateUserJobRequest {
	return domain.CreateUserJobRequest{
		UserID:  "u-1",
		JobID:   "j-1",
		Title:   "Go Developer",
		Company: "Acme",
	}
}

func seekerStore() *mockUserStore {
	us := &mockUserStore{}
	us.On("Get", mock.Anything, "u-1").Return(&domain.User{UserID: "u-1"}, nil)
	return us
}

// --- Create tests ---

func TestCreate_Success(t *testing.T) {
	ujs := &mockUserJobStore{}
	ujs.On("Exists", mock.Anything, "u-1", "j-1").Return(false, nil)
	var stored *domain.UserJob
	ujs.On("Put", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.UserJob) }).Return(nil)

	svc := NewService(ujs, seekerStore())
	uj, err := svc.Create(context.Background(), baseReq())

	require.NoError(t, err)
	assert.NotEmpty(t, uj.UserJobID)
	assert.True(t, uj.Active)
	assert.False(t, uj.AppliedAt.IsZero())
	assert.Equal(t, stored, uj)
}

func TestCreate_DuplicateApplicationRejected(t *testing.T) {
	ujs := &mockUserJobStore{}
	ujs.On("Exists", mock.Anything, "u-1", "j-1").Return(true, nil)

	svc := NewService(ujs, seekerStore())
	_, err := svc.Create(context.Background(), baseReq())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Equal(t, "Job already exists for the user with the same details.", err.Error())
	ujs.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestCreate_UnknownUser(t *testing.T) {
	us := &mockUserStore{}
	us.On("Get", mock.Anything, "u-1").Return(nil, domain.ErrNotFound)

	svc := NewService(&mockUserJobStore{}, us)
	_, err := svc.Create(context.Background(), baseReq())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "User not found.", err.Error())
}

// --- Get / Update tests ---

func TestGet_NotFoundMessage(t *testing.T) {
	ujs := &mockUserJobStore{}
	ujs.On("Get", mock.Anything, "uj-missing").Return(nil, domain.ErrNotFound)

	svc := NewService(ujs, &mockUserStore{})
	_, err := svc.Get(context.Background(), "uj-missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "No job found with ID uj-missing.", err.Error())
}

func TestUpdate_OnlyProvidedFields(t *testing.T) {
	ujs := &mockUserJobStore{}
	ujs.On("Get", mock.Anything, "uj-1").Return(&domain.UserJob{UserJobID: "uj-1"}, nil)
	status := "interview"
	ujs.On("Update", mock.Anything, "uj-1", map[string]interface{}{fieldStatus: status}).Return(nil)

	svc := NewService(ujs, &mockUserStore{})
	_, err := svc.Update(context.Background(), "uj-1", domain.UpdateUserJobRequest{Status: &status})

	require.NoError(t, err)
	ujs.AssertExpectations(t)
}

func TestUpdate_NoFields(t *testing.T) {
	ujs := &mockUserJobStore{}
	ujs.On("Get", mock.Anything, "uj-1").Return(&domain.UserJob{UserJobID: "uj-1"}, nil)

	svc := NewService(ujs, &mockUserStore{})
	_, err := svc.Update(context.Background(), "uj-1", domain.UpdateUserJobRequest{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

// --- Problem-flag tests ---

func TestSetProblem_FlagStoresNote(t *testing.T) {
	ujs := &mockUserJobStore{}
	ujs.On("Get", mock.Anything, "uj-1").Return(&domain.UserJob{UserJobID: "uj-1"}, nil)
	ujs.On("Update", mock.Anything, "uj-1", map[string]interface{}{
		fieldProblem: true, fieldProblemNote: "posting expired",
	}).Return(nil)

	svc := NewService(ujs, &mockUserStore{})
	err := svc.SetProblem(context.Background(), domain.UserJobProblemRequest{
		UserJobID: "uj-1", Problem: true, Note: "posting expired",
	})

	require.NoError(t, err)
	ujs.AssertExpectations(t)
}

func TestSetProblem_ClearResetsNote(t *testing.T) {
	ujs := &mockUserJobStore{}
	ujs.On("Get", mock.Anything, "uj-1").Return(&domain.UserJob{UserJobID: "uj-1"}, nil)
	ujs.On("Update", mock.Anything, "uj-1", map[string]interface{}{
		fieldProblem: false, fieldProblemNote: "",
	}).Return(nil)

	svc := NewService(ujs, &mockUserStore{})
	err := svc.SetProblem(context.Background(), domain.UserJobProblemRequest{
		UserJobID: "uj-1", Problem: false, Note: "ignored"})

	require.NoError(t, err)
	ujs.AssertExpectations(t)
}

// --- Count tests ---

func TestCountsForUser(t *testing.T) {
	ujs := &mockUserJobStore{}
	ujs.On("CountByUser", mock.Anything, "u-1").Return(7, nil)
	ujs.On("CountProblemsByUser", mock.Anything, "u-1").Return(2, nil)

	svc := NewService(ujs, seekerStore())
	counts, err := svc.CountsForUser(context.Background(), "u-1")

	require.NoError(t, err)
	assert.Equal(t, &domain.UserJobCounts{Total: 7, Problem: 2}, counts)
}

func TestCountBetween_EmptyRange(t *testing.T) {
	svc := NewService(&mockUserJobStore{}, &mockUserStore{})
	now := time.Now()
	_, err := svc.CountBetween(context.Background(), domain.UserJobsDateCountRequest{
		UserID: "u-1", From: now, To: now,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestCountByAffiliate_SumsAcrossUsers(t *testing.T) {
	us := &mockUserStore{}
	us.On("ListByAffiliate", mock.Anything, "aff-1").Return([]domain.User{
		{UserID: "u-1"}, {UserID: "u-2"},
	}, nil)
	ujs := &mockUserJobStore{}
	ujs.On("CountByUser", mock.Anything, "u-1").Return(3, nil)
	ujs.On("CountByUser", mock.Anything, "u-2").Return(4, nil)

	svc := NewService(ujs, us)
	total, err := svc.CountByAffiliate(context.Background(), "aff-1")

	require.NoError(t, err)
	assert.Equal(t, 7, total)
}

// --- List tests ---

func TestList_Pagination(t *testing.T) {
	jobs := make([]domain.UserJob, 5)
	for i := range jobs {
		jobs[i].UserJobID = string(rune('a' + i))
	}
	ujs := &mockUserJobStore{}
	ujs.On("Scan", mock.Anything, "").Return(jobs, nil)

	svc := NewService(ujs, &mockUserStore{})
	page, total, err := svc.List(context.Background(), "", 2, 2)

	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "c", page[0].UserJobID)
}

func TestExists_BlankIDsReportFalse(t *testing.T) {
	svc := NewService(&mockUserJobStore{}, &mockUserStore{})
	ok, err := svc.Exists(context.Background(), "", "j-1")

	require.NoError(t, err)
	assert.False(t, ok)
}
