package recruiter

import (
	"context"
	"errors"
	"testing"

	"github.com/agaman/jobboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) ListByRecruiter(ctx context.Context, recruiterID string) ([]domain.User, error) {
	args := m.Called(ctx, recruiterID)
	return args.Get(0).([]domain.User), args.Error(1)
}

type mockUserJobStore struct{ mock.Mock }

func (m *mockUserJobStore) CountByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// --- tests ---

func TestListJobSeekers_Success(t *testing.T) {
	us := &mockUserStore{}
	us.On("ListByRecruiter", mock.Anything, "rec-1").Return([]domain.User{
		{UserID: "u-1", FirstName: "Alice"},
	}, nil)

	svc := NewService(us, &mockUserJobStore{})
	seekers, err := svc.ListJobSeekers(context.Background(), "rec-1")

	require.NoError(t, err)
	require.Len(t, seekers, 1)
	assert.Equal(t, "u-1", seekers[0].UserID)
}

func TestListJobSeekers_NoneAssigned(t *testing.T) {
	us := &mockUserStore{}
	us.On("ListByRecruiter", mock.Anything, "rec-1").Return([]domain.User{}, nil)

	svc := NewService(us, &mockUserJobStore{})
	_, err := svc.ListJobSeekers(context.Background(), "rec-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "No job seekers assigned", err.Error())
}

func TestJobCountsPerSeeker(t *testing.T) {
	us := &mockUserStore{}
	us.On("ListByRecruiter", mock.Anything, "rec-1").Return([]domain.User{
		{UserID: "u-1", FirstName: "Alice", LastName: "Smith"},
		{UserID: "u-2", FirstName: "Bob"},
	}, nil)
	ujs := &mockUserJobStore{}
	ujs.On("CountByUser", mock.Anything, "u-1").Return(5, nil)
	ujs.On("CountByUser", mock.Anything, "u-2").Return(0, nil)

	svc := NewService(us, ujs)
	counts, err := svc.JobCountsPerSeeker(context.Background(), "rec-1")

	require.NoError(t, err)
	assert.Equal(t, []domain.JobSeekerJobCount{
		{UserID: "u-1", Name: "Alice Smith", JobCount: 5},
		{UserID: "u-2", Name: "Bob", JobCount: 0},
	}, counts)
}

func TestJobCountsPerSeeker_EmptyListNotAnError(t *testing.T) {
	us := &mockUserStore{}
	us.On("ListByRecruiter", mock.Anything, "rec-1").Return([]domain.User{}, nil)

	svc := NewService(us, &mockUserJobStore{})
	counts, err := svc.JobCountsPerSeeker(context.Background(), "rec-1")

	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestJobCountsPerSeeker_MissingRecruiterID(t *testing.T) {
	svc := NewService(&mockUserStore{}, &mockUserJobStore{})
	_, err := svc.JobCountsPerSeeker(context.Background(), "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}
