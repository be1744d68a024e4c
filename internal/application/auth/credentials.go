package auth

import (
	"context"
	"strings"

	"github.com/agaman/jobboard-api/internal/domain"
)

// Account is the credential view shared by user and affiliate logins.
type Account struct {
	ID           string
	Name         string
	Username     string
	Email        string
	PasswordHash string
	OTP          string
	Active       bool
	RoleID       string
}

// CredentialStore is the capability surface the auth flows need from an
// account table. Both the user and affiliate repos are adapted to it.
type CredentialStore interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	UpdateOTP(ctx context.Context, accountID, code string) error
	UpdatePassword(ctx context.Context, accountID, passwordHash string) error
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateOTP(ctx context.Context, userID, code string) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type affiliateStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Affiliate, error)
	GetByUsername(ctx context.Context, username string) (*domain.Affiliate, error)
	UpdateOTP(ctx context.Context, affiliateID, code string) error
	UpdatePassword(ctx context.Context, affiliateID, passwordHash string) error
}

// UserCredentials adapts the users table to CredentialStore.
type UserCredentials struct {
	store userStore
}

func NewUserCredentials(store userStore) *UserCredentials {
	return &UserCredentials{store: store}
}

func (c *UserCredentials) GetByEmail(ctx context.Context, email string) (*Account, error) {
	u, err := c.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return userAccount(u), nil
}

func (c *UserCredentials) GetByUsername(ctx context.Context, username string) (*Account, error) {
	u, err := c.store.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return userAccount(u), nil
}

func (c *UserCredentials) UpdateOTP(ctx context.Context, accountID, code string) error {
	return c.store.UpdateOTP(ctx, accountID, code)
}

func (c *UserCredentials) UpdatePassword(ctx context.Context, accountID, passwordHash string) error {
	return c.store.UpdatePassword(ctx, accountID, passwordHash)
}

func userAccount(u *domain.User) *Account {
	return &Account{
		ID:           u.UserID,
		Name:         strings.TrimSpace(u.FirstName + " " + u.LastName),
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		OTP:          u.OTP,
		Active:       u.Active,
		RoleID:       u.RoleID,
	}
}

// AffiliateCredentials adapts the affiliates table to CredentialStore.
type AffiliateCredentials struct {
	store affiliateStore
}

func NewAffiliateCredentials(store affiliateStore) *AffiliateCredentials {
	return &AffiliateCredentials{store: store}
}

func (c *AffiliateCredentials) GetByEmail(ctx context.Context, email string) (*Account, error) {
	a, err := c.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return affiliateAccount(a), nil
}

func (c *AffiliateCredentials) GetByUsername(ctx context.Context, username string) (*Account, error) {
	a, err := c.store.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return affiliateAccount(a), nil
}

func (c *AffiliateCredentials) UpdateOTP(ctx context.Context, accountID, code string) error {
	return c.store.UpdateOTP(ctx, accountID, code)
}

func (c *AffiliateCredentials) UpdatePassword(ctx context.Context, accountID, passwordHash string) error {
	return c.store.UpdatePassword(ctx, accountID, passwordHash)
}

func affiliateAccount(a *domain.Affiliate) *Account {
	return &Account{
		ID:           a.AffiliateID,
		Name:         a.Name,
		Username:     a.Username,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		OTP:          a.OTP,
		Active:       a.Active,
	}
}
