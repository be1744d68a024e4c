package user

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/agaman/jobboard-api/internal/domain"
	"github.com/agaman/jobboard-api/internal/pkg/id"
	"golang.org/x/crypto/bcrypt"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldUsername     = "username"
	fieldEmail        = "email"
	fieldPhone        = "phone"
	fieldFirstName    = "first_name"
	fieldLastName     = "last_name"
	fieldRoleID       = "role_id"
	fieldAffiliateID  = "affiliate_id"
	fieldRecruiterID  = "recruiter_id"
	fieldIPAddress    = "ip_address"
	fieldActive       = "active"
	fieldPackageID    = "package_id"
	fieldFreeIQUsed   = "free_iq_used"
	fieldResumeObject = "resume_object"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error)
	List(ctx context.Context, searchName string, page, perPage int) ([]domain.User, int, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, req domain.UpdateUserRequest) (*domain.User, error)
	SetActive(ctx context.Context, userID string, active bool) error
	DeleteMany(ctx context.Context, userIDs []string) error
	ListByAffiliate(ctx context.Context, affiliateID string) ([]domain.User, error)
	ListByRoleName(ctx context.Context, roleName string) ([]domain.User, error)
	UploadResume(ctx context.Context, userID, filename, b64Data string) (string, error)
	AssignPackage(ctx context.Context, userID, packageID string) error
	IncrementFreeIQ(ctx context.Context, userID string) (int, error)
}

type userStore interface {
	Put(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	SetActive(ctx context.Context, userID string, active bool) error
	Scan(ctx context.Context, searchName string) ([]domain.User, error)
	ListByAffiliate(ctx context.Context, affiliateID string) ([]domain.User, error)
	ListByRole(ctx context.Context, roleID string) ([]domain.User, error)
}

type roleStore interface {
	Get(ctx context.Context, roleID string) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
}

type packageStore interface {
	Get(ctx context.Context, packageID string) (*domain.Package, error)
}

type settingStore interface {
	GetByName(ctx context.Context, name string) (*domain.Setting, error)
}

type captchaVerifier interface {
	Verify(ctx context.Context, secret, token string) bool
}

type objectStore interface {
	UploadBase64(ctx context.Context, key, b64Data string) (string, error)
	Delete(ctx context.Context, key string) error
}

type service struct {
	repo     userStore
	roles    roleStore
	packages packageStore
	settings settingStore
	captcha  captchaVerifier
	objects  objectStore
}

type ServiceDeps struct {
	UserRepo    userStore
	RoleRepo    roleStore
	PackageRepo packageStore
	SettingRepo settingStore
	Captcha     captchaVerifier
	ObjectStore objectStore
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:     deps.UserRepo,
		roles:    deps.RoleRepo,
		packages: deps.PackageRepo,
		settings: deps.SettingRepo,
		captcha:  deps.Captcha,
		objects:  deps.ObjectStore,
	}
}

// Create registers a user. The captcha token is validated only when present;
// admin tooling creates users without one.
func (s *service) Create(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	if req.CaptchaToken != "" {
		setting, err := s.settings.GetByName(ctx, domain.SettingRecaptchaSecretKey)
		if err != nil || !s.captcha.Verify(ctx, setting.Value, req.CaptchaToken) {
			return nil, domain.E(domain.ErrUnauthorized, "Captcha validation failed")
		}
	}
	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("username already taken: %w", domain.ErrConflict)
	}
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
	}
	if _, err := s.roles.Get(ctx, req.RoleID); err != nil {
		return nil, fmt.Errorf("unknown role: %w", domain.ErrBadRequest)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		RoleID:       req.RoleID,
		AffiliateID:  req.AffiliateID,
		RecruiterID:  req.RecruiterID,
		IPAddress:    req.IPAddress,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Put(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// List returns one page of active users plus the unpaged total. Pagination is
// applied after the scan; the table stays small enough for that to hold.
func (s *service) List(ctx context.Context, searchName string, page, perPage int) ([]domain.User, int, error) {
	users, err := s.repo.Scan(ctx, searchName)
	if err != nil {
		return nil, 0, err
	}
	total := len(users)
	if perPage <= 0 {
		return users, total, nil
	}
	start := (page - 1) * perPage
	if start >= total {
		return []domain.User{}, total, nil
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return users[start:end], total, nil
}

func (s *service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.Get(ctx, userID)
}

func (s *service) Update(ctx context.Context, userID string, req domain.UpdateUserRequest) (*domain.User, error) {
	updates := map[string]interface{}{}
	if req.Username != nil {
		updates[fieldUsername] = *req.Username
	}
	if req.Email != nil {
		updates[fieldEmail] = *req.Email
	}
	if req.Phone != nil {
		updates[fieldPhone] = *req.Phone
	}
	if req.FirstName != nil {
		updates[fieldFirstName] = *req.FirstName
	}
	if req.LastName != nil {
		updates[fieldLastName] = *req.LastName
	}
	if req.RoleID != nil {
		if _, err := s.roles.Get(ctx, *req.RoleID); err != nil {
			return nil, fmt.Errorf("unknown role: %w", domain.ErrBadRequest)
		}
		updates[fieldRoleID] = *req.RoleID
	}
	if req.AffiliateID != nil {
		updates[fieldAffiliateID] = *req.AffiliateID
	}
	if req.RecruiterID != nil {
		updates[fieldRecruiterID] = *req.RecruiterID
	}
	if req.IPAddress != nil {
		updates[fieldIPAddress] = *req.IPAddress
	}
	if req.Active != nil {
		updates[fieldActive] = *req.Active
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", domain.ErrBadRequest)
	}
	if err := s.repo.Update(ctx, userID, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID)
}

// SetActive soft-deletes (false) or restores (true) a user.
func (s *service) SetActive(ctx context.Context, userID string, active bool) error {
	if _, err := s.repo.Get(ctx, userID); err != nil {
		return domain.E(domain.ErrNotFound, "User not found.")
	}
	return s.repo.SetActive(ctx, userID, active)
}

// DeleteMany soft-deletes a batch of users. The first failure stops the batch;
// already-processed rows stay deleted.
func (s *service) DeleteMany(ctx context.Context, userIDs []string) error {
	if len(userIDs) == 0 {
		return fmt.Errorf("no user ids given: %w", domain.ErrBadRequest)
	}
	for _, uid := range userIDs {
		if err := s.SetActive(ctx, uid, false); err != nil {
			return fmt.Errorf("delete user %s: %w", uid, err)
		}
	}
	return nil
}

func (s *service) ListByAffiliate(ctx context.Context, affiliateID string) ([]domain.User, error) {
	if affiliateID == "" {
		return nil, fmt.Errorf("affiliate id is required: %w", domain.ErrBadRequest)
	}
	return s.repo.ListByAffiliate(ctx, affiliateID)
}

func (s *service) ListByRoleName(ctx context.Context, roleName string) ([]domain.User, error) {
	role, err := s.roles.GetByName(ctx, roleName)
	if err != nil {
		return nil, fmt.Errorf("unknown role %q: %w", roleName, domain.ErrNotFound)
	}
	return s.repo.ListByRole(ctx, role.RoleID)
}

// UploadResume stores the decoded file in S3 and records its key on the user.
// A previously stored resume is deleted best-effort.
func (s *service) UploadResume(ctx context.Context, userID, filename, b64Data string) (string, error) {
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		return "", domain.E(domain.ErrNotFound, "User not found.")
	}
	key := path.Join("resumes", userID, filename)
	url, err := s.objects.UploadBase64(ctx, key, b64Data)
	if err != nil {
		return "", err
	}
	if u.ResumeObject != nil && *u.ResumeObject != key {
		if err := s.objects.Delete(ctx, *u.ResumeObject); err != nil {
			slog.Warn("failed to delete previous resume object", "key", *u.ResumeObject, "err", err)
		}
	}
	if err := s.repo.Update(ctx, userID, map[string]interface{}{fieldResumeObject: key}); err != nil {
		return "", err
	}
	return url, nil
}

func (s *service) AssignPackage(ctx context.Context, userID, packageID string) error {
	if _, err := s.repo.Get(ctx, userID); err != nil {
		return domain.E(domain.ErrNotFound, "User not found.")
	}
	if _, err := s.packages.Get(ctx, packageID); err != nil {
		return fmt.Errorf("unknown package: %w", domain.ErrBadRequest)
	}
	return s.repo.Update(ctx, userID, map[string]interface{}{fieldPackageID: packageID})
}

// IncrementFreeIQ bumps the free-usage counter and returns the new value.
func (s *service) IncrementFreeIQ(ctx context.Context, userID string) (int, error) {
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		return 0, domain.E(domain.ErrNotFound, "User not found.")
	}
	next := u.FreeIQUsed + 1
	if err := s.repo.Update(ctx, userID, map[string]interface{}{fieldFreeIQUsed: next}); err != nil {
		return 0, err
	}
	return next, nil
}
