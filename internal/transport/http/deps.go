package http

import (
	"context"
	"time"

	"github.com/agaman/jobboard-api/internal/domain"
	stripeinfra "github.com/agaman/jobboard-api/internal/infrastructure/stripe"
)

// UserRepository is the minimal interface the router requires from the users table.
type UserRepository interface {
	Put(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Scan(ctx context.Context, searchName string) ([]domain.User, error)
	ListByAffiliate(ctx context.Context, affiliateID string) ([]domain.User, error)
	ListByRecruiter(ctx context.Context, recruiterID string) ([]domain.User, error)
	ListByRole(ctx context.Context, roleID string) ([]domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	UpdateOTP(ctx context.Context, userID, code string) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	SetActive(ctx context.Context, userID string, active bool) error
	Count(ctx context.Context, affiliateID string) (int, error)
}

// AffiliateRepository is the minimal interface the router requires from the affiliates table.
type AffiliateRepository interface {
	Put(ctx context.Context, a *domain.Affiliate) error
	Get(ctx context.Context, affiliateID string) (*domain.Affiliate, error)
	GetByUsername(ctx context.Context, username string) (*domain.Affiliate, error)
	GetByEmail(ctx context.Context, email string) (*domain.Affiliate, error)
	GetByCode(ctx context.Context, code string) (*domain.Affiliate, error)
	Scan(ctx context.Context) ([]domain.Affiliate, error)
	Update(ctx context.Context, affiliateID string, updates map[string]interface{}) error
	UpdateOTP(ctx context.Context, affiliateID, code string) error
	UpdatePassword(ctx context.Context, affiliateID, passwordHash string) error
	SetActive(ctx context.Context, affiliateID string, active bool) error
	Count(ctx context.Context) (int, error)
}

// RoleRepository is the minimal interface the router requires from the roles table.
type RoleRepository interface {
	Put(ctx context.Context, role *domain.Role) error
	Get(ctx context.Context, roleID string) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	Scan(ctx context.Context) ([]domain.Role, error)
	Update(ctx context.Context, roleID string, updates map[string]interface{}) error
	Delete(ctx context.Context, roleID string) error
}

// SettingRepository is the minimal interface the router requires from the settings table.
type SettingRepository interface {
	Put(ctx context.Context, s *domain.Setting) error
	GetByName(ctx context.Context, name string) (*domain.Setting, error)
	Scan(ctx context.Context) ([]domain.Setting, error)
}

// PromoRepository is the minimal interface the router requires from the promos table.
type PromoRepository interface {
	Put(ctx context.Context, p *domain.Promo) error
	Get(ctx context.Context, promoID string) (*domain.Promo, error)
	GetByCode(ctx context.Context, code string) (*domain.Promo, error)
	Scan(ctx context.Context) ([]domain.Promo, error)
	Update(ctx context.Context, promoID string, updates map[string]interface{}) error
	SetActive(ctx context.Context, promoID string, active bool) error
	Delete(ctx context.Context, promoID string) error
	Count(ctx context.Context) (int, error)
}

// PackageRepository is the minimal interface the router requires from the packages table.
type PackageRepository interface {
	Put(ctx context.Context, p *domain.Package) error
	Get(ctx context.Context, packageID string) (*domain.Package, error)
	Scan(ctx context.Context) ([]domain.Package, error)
	Update(ctx context.Context, packageID string, updates map[string]interface{}) error
	Delete(ctx context.Context, packageID string) error
	Count(ctx context.Context) (int, error)
}

// JobRepository is the minimal interface the router requires from the jobs table.
type JobRepository interface {
	Get(ctx context.Context, jobID string) (*domain.Job, error)
	Scan(ctx context.Context) ([]domain.Job, error)
	Search(ctx context.Context, title, location string) ([]domain.Job, error)
	Count(ctx context.Context) (int, error)
}

// UserJobRepository is the minimal interface the router requires from the
// tracked-applications table.
type UserJobRepository interface {
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

// OrderRepository is the minimal interface the router requires from the orders table.
type OrderRepository interface {
	Put(ctx context.Context, o *domain.Order) error
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Order, error)
	Scan(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	Count(ctx context.Context) (int, error)
}

// CaptchaVerifier is the minimal interface the router requires from the reCAPTCHA client.
type CaptchaVerifier interface {
	Verify(ctx context.Context, secret, token string) bool
}

// PaymentGateway is the minimal interface the router requires from the Stripe client.
type PaymentGateway interface {
	CreateIntent(amountCents int64, currency, description string) (*stripeinfra.Intent, error)
	GetIntent(id string) (*stripeinfra.Intent, error)
}
