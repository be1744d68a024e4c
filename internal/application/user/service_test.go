package user

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

func (m *mockUserStore) Put(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) Update(ctx context.Context, userID string, updates map[string]interface{}) error {
	return m.Called(ctx, userID, updates).Error(0)
}
func (m *mockUserStore) SetActive(ctx context.Context, userID string, active bool) error {
	return m.Called(ctx, userID, active).Error(0)
}
func (m *mockUserStore) Scan(ctx context.Context, searchName string) ([]domain.User, error) {
	args := m.Called(ctx, searchName)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *mockUserStore) ListByAffiliate(ctx context.Context, affiliateID string) ([]domain.User, error) {
	args := m.Called(ctx, affiliateID)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *mockUserStore) ListByRole(ctx context.Context, roleID string) ([]domain.User, error) {
	args := m.Called(ctx, roleID)
	return args.Get(0).([]domain.User), args.Error(1)
}

type mockRoleStore struct{ mock.Mock }

func (m *mockRoleStore) Get(ctx context.Context, roleID string) (*domain.Role, error) {
	args := m.Called(ctx, roleID)
	if r, _ := args.Get(0).(*domain.Role); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRoleStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	args := m.Called(ctx, name)
	if r, _ := args.Get(0).(*domain.Role); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPackageStore struct{ mock.Mock }

func (m *mockPackageStore) Get(ctx context.Context, packageID string) (*domain.Package, error) {
	args := m.Called(ctx, packageID)
	if p, _ := args.Get(0).(*domain.Package); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockObjectStore struct{ mock.Mock }

func (m *mockObjectStore) UploadBase64(ctx context.Context, key, b64Data string) (string, error) {
	args := m.Called(ctx, key, b64Data)
	return args.String(0), args.Error(1)
}
func (m *mockObjectStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// --- helpers ---

func baseReq() domain.CreateUserRequest {
	return domain.CreateUserRequest{
		Username:  "alice",
		Password:  "password123",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
		RoleID:    "r-1",
	}
}

// --- Create tests ---

func TestCreate_Success(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByUsername", mock.Anything, "alice").Return(nil, domain.ErrNotFound)
	us.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, domain.ErrNotFound)
	us.On("Put", mock.Anything, mock.Anything).Return(nil)
	rs := &mockRoleStore{}
	rs.On("Get", mock.Anything, "r-1").Return(&domain.Role{RoleID: "r-1", Name: domain.RoleJobSeeker}, nil)

	svc := NewService(ServiceDeps{UserRepo: us, RoleRepo: rs})
	u, err := svc.Create(context.Background(), baseReq())

	require.NoError(t, err)
	assert.NotEmpty(t, u.UserID)
	assert.True(t, u.Active)
	assert.NotEqual(t, "password123", u.PasswordHash)
	us.AssertExpectations(t)
}

func TestCreate_UsernameConflict(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{}, nil)

	svc := NewService(ServiceDeps{UserRepo: us})
	_, err := svc.Create(context.Background(), baseReq())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestCreate_UnknownRole(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByUsername", mock.Anything, "alice").Return(nil, domain.ErrNotFound)
	us.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, domain.ErrNotFound)
	rs := &mockRoleStore{}
	rs.On("Get", mock.Anything, "r-1").Return(nil, domain.ErrNotFound)

	svc := NewService(ServiceDeps{UserRepo: us, RoleRepo: rs})
	_, err := svc.Create(context.Background(), baseReq())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

// --- List tests ---

func TestList_Pagination(t *testing.T) {
	all := []domain.User{{UserID: "1"}, {UserID: "2"}, {UserID: "3"}, {UserID: "4"}, {UserID: "5"}}
	us := &mockUserStore{}
	us.On("Scan", mock.Anything, "").Return(all, nil)

	svc := NewService(ServiceDeps{UserRepo: us})
	page, total, err := svc.List(context.Background(), "", 2, 2)

	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "3", page[0].UserID)
	assert.Equal(t, "4", page[1].UserID)
}

func TestList_PageBeyondEnd(t *testing.T) {
	us := &mockUserStore{}
	us.On("Scan", mock.Anything, "").Return([]domain.User{{UserID: "1"}}, nil)

	svc := NewService(ServiceDeps{UserRepo: us})
	page, total, err := svc.List(context.Background(), "", 9, 10)

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Empty(t, page)
}

// --- Update tests ---

func TestUpdate_NoFields(t *testing.T) {
	svc := NewService(ServiceDeps{})
	_, err := svc.Update(context.Background(), "u-1", domain.UpdateUserRequest{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestUpdate_PartialFields(t *testing.T) {
	us := &mockUserStore{}
	first := "Bob"
	us.On("Update", mock.Anything, "u-1", map[string]interface{}{fieldFirstName: "Bob"}).Return(nil)
	us.On("Get", mock.Anything, "u-1").Return(&domain.User{UserID: "u-1", FirstName: "Bob"}, nil)

	svc := NewService(ServiceDeps{UserRepo: us})
	u, err := svc.Update(context.Background(), "u-1", domain.UpdateUserRequest{FirstName: &first})

	require.NoError(t, err)
	assert.Equal(t, "Bob", u.FirstName)
	us.AssertExpectations(t)
}

// --- DeleteMany tests ---

func TestDeleteMany_StopsOnFirstFailure(t *testing.T) {
	us := &mockUserStore{}
	us.On("Get", mock.Anything, "u-1").Return(&domain.User{UserID: "u-1"}, nil)
	us.On("SetActive", mock.Anything, "u-1", false).Return(nil)
	us.On("Get", mock.Anything, "u-2").Return(nil, domain.ErrNotFound)

	svc := NewService(ServiceDeps{UserRepo: us})
	err := svc.DeleteMany(context.Background(), []string{"u-1", "u-2", "u-3"})

	require.Error(t, err)
	us.AssertCalled(t, "SetActive", mock.Anything, "u-1", false)
	us.AssertNotCalled(t, "Get", mock.Anything, "u-3")
}

func TestDeleteMany_EmptyBatch(t *testing.T) {
	svc := NewService(ServiceDeps{})
	err := svc.DeleteMany(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

// --- ListByRoleName tests ---

func TestListByRoleName(t *testing.T) {
	rs := &mockRoleStore{}
	rs.On("GetByName", mock.Anything, domain.RoleRecruiter).
		Return(&domain.Role{RoleID: "r-2", Name: domain.RoleRecruiter}, nil)
	us := &mockUserStore{}
	us.On("ListByRole", mock.Anything, "r-2").Return([]domain.User{{UserID: "u-9"}}, nil)

	svc := NewService(ServiceDeps{UserRepo: us, RoleRepo: rs})
	users, err := svc.ListByRoleName(context.Background(), domain.RoleRecruiter)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u-9", users[0].UserID)
}

func TestListByRoleName_Unknown(t *testing.T) {
	rs := &mockRoleStore{}
	rs.On("GetByName", mock.Anything, "Nope").Return(nil, domain.ErrNotFound)

	svc := NewService(ServiceDeps{RoleRepo: rs})
	_, err := svc.ListByRoleName(context.Background(), "Nope")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// --- Resume tests ---

func TestUploadResume_ReplacesPrevious(t *testing.T) {
	old := "resumes/u-1/old.pdf"
	us := &mockUserStore{}
	us.On("Get", mock.Anything, "u-1").Return(&domain.User{UserID: "u-1", ResumeObject: &old}, nil)
	us.On("Update", mock.Anything, "u-1", map[string]interface{}{fieldResumeObject: "resumes/u-1/new.pdf"}).Return(nil)
	os := &mockObjectStore{}
	os.On("UploadBase64", mock.Anything, "resumes/u-1/new.pdf", "ZGF0YQ==").Return("s3://b/resumes/u-1/new.pdf", nil)
	os.On("Delete", mock.Anything, old).Return(nil)

	svc := NewService(ServiceDeps{UserRepo: us, ObjectStore: os})
	url, err := svc.UploadResume(context.Background(), "u-1", "new.pdf", "ZGF0YQ==")

	require.NoError(t, err)
	assert.Equal(t, "s3://b/resumes/u-1/new.pdf", url)
	os.AssertExpectations(t)
}

func TestUploadResume_DeleteFailureIsNonFatal(t *testing.T) {
	old := "resumes/u-1/old.pdf"
	us := &mockUserStore{}
	us.On("Get", mock.Anything, "u-1").Return(&domain.User{UserID: "u-1", ResumeObject: &old}, nil)
	us.On("Update", mock.Anything, "u-1", mock.Anything).Return(nil)
	os := &mockObjectStore{}
	os.On("UploadBase64", mock.Anything, mock.Anything, mock.Anything).Return("s3://b/k", nil)
	os.On("Delete", mock.Anything, old).Return(errors.New("s3 down"))

	svc := NewService(ServiceDeps{UserRepo: us, ObjectStore: os})
	_, err := svc.UploadResume(context.Background(), "u-1", "new.pdf", "ZGF0YQ==")

	require.NoError(t, err)
}

// --- Package / counter tests ---

func TestAssignPackage_UnknownPackage(t *testing.T) {
	us := &mockUserStore{}
	us.On("Get", mock.Anything, "u-1").Return(&domain.User{UserID: "u-1"}, nil)
	ps := &mockPackageStore{}
	ps.On("Get", mock.Anything, "p-9").Return(nil, domain.ErrNotFound)

	svc := NewService(ServiceDeps{UserRepo: us, PackageRepo: ps})
	err := svc.AssignPackage(context.Background(), "u-1", "p-9")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestIncrementFreeIQ(t *testing.T) {
	us := &mockUserStore{}
	us.On("Get", mock.Anything, "u-1").Return(&domain.User{UserID: "u-1", FreeIQUsed: 2}, nil)
	us.On("Update", mock.Anything, "u-1", map[string]interface{}{fieldFreeIQUsed: 3}).Return(nil)

	svc := NewService(ServiceDeps{UserRepo: us})
	n, err := svc.IncrementFreeIQ(context.Background(), "u-1")

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	us.AssertExpectations(t)
}
