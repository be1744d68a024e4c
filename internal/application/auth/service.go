package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agaman/jobboard-api/internal/domain"
	"github.com/agaman/jobboard-api/internal/pkg/otp"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
	CaptchaToken    string `json:"captcha_token"`
}

type ForgotPasswordRequest struct {
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the signed token plus the account it was issued for.
type LoginResult struct {
	Token   string
	Account *Account
	Role    string
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}

type roleStore interface {
	Get(ctx context.Context, roleID string) (*domain.Role, error)
}

type settingStore interface {
	GetByName(ctx context.Context, name string) (*domain.Setting, error)
}

type captchaVerifier interface {
	Verify(ctx context.Context, secret, token string) bool
}

type mailSender interface {
	SendForgotPasswordOTP(to, name, code, template string) error
}

type smsSender interface {
	SendPasswordResetOTP(ctx context.Context, to, code string) error
}

type tokenSigner interface {
	Sign(accountID, username, email, role string) (string, error)
}

type service struct {
	creds    CredentialStore
	roles    roleStore
	settings settingStore
	captcha  captchaVerifier
	mailer   mailSender
	sms      smsSender
	jwt      tokenSigner

	fixedRole             string
	shapeCheckFirst       bool
	requireActiveForReset bool
}

type ServiceDeps struct {
	Creds    CredentialStore
	Roles    roleStore
	Settings settingStore
	Captcha  captchaVerifier
	Mailer   mailSender
	SMS      smsSender
	JWT      tokenSigner

	// FixedRole, when non-empty, is stamped into tokens instead of looking up
	// the account's role. Affiliate logins use this; affiliates carry no role id.
	FixedRole string
	// ShapeCheckFirst validates required fields before the captcha round-trip.
	ShapeCheckFirst bool
	// RequireActiveForReset rejects inactive accounts in the forgot/reset flow.
	RequireActiveForReset bool
}

func NewService(deps ServiceDeps) Service {
	return &service{
		creds:                 deps.Creds,
		roles:                 deps.Roles,
		settings:              deps.Settings,
		captcha:               deps.Captcha,
		mailer:                deps.Mailer,
		sms:                   deps.SMS,
		jwt:                   deps.JWT,
		fixedRole:             deps.FixedRole,
		shapeCheckFirst:       deps.ShapeCheckFirst,
		requireActiveForReset: deps.RequireActiveForReset,
	}
}

// ResolveAccount finds an account by identifier. An identifier containing "@"
// is treated as an email; anything else is tried as a username first, with an
// email lookup as the fallback.
func ResolveAccount(ctx context.Context, store CredentialStore, identifier string) (*Account, error) {
	if strings.Contains(identifier, "@") {
		return store.GetByEmail(ctx, identifier)
	}
	acct, err := store.GetByUsername(ctx, identifier)
	if err == nil {
		return acct, nil
	}
	return store.GetByEmail(ctx, identifier)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if s.shapeCheckFirst {
		if err := checkLoginShape(req); err != nil {
			return nil, err
		}
	}
	if !s.validateCaptcha(ctx, req.CaptchaToken) {
		return nil, domain.E(domain.ErrUnauthorized, "Captcha validation failed")
	}
	if !s.shapeCheckFirst {
		if err := checkLoginShape(req); err != nil {
			return nil, err
		}
	}

	acct, err := ResolveAccount(ctx, s.creds, req.UsernameOrEmail)
	if err != nil {
		return nil, domain.E(domain.ErrUnauthorized, "User is not FOUND")
	}
	if !acct.Active {
		return nil, domain.E(domain.ErrUnauthorized, "User is not active")
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(req.Password)) != nil {
		return nil, domain.E(domain.ErrUnauthorized, "Invalid credentials")
	}

	roleName := s.fixedRole
	if roleName == "" {
		role, err := s.roles.Get(ctx, acct.RoleID)
		if err != nil {
			return nil, fmt.Errorf("role lookup: %w", err)
		}
		roleName = role.Name
	}

	if s.jwt == nil {
		return nil, errors.New("token signer is not configured")
	}
	token, err := s.jwt.Sign(acct.ID, acct.Username, acct.Email, roleName)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &LoginResult{Token: token, Account: acct, Role: roleName}, nil
}

func checkLoginShape(req LoginRequest) error {
	if req.UsernameOrEmail == "" || req.Password == "" {
		return domain.E(domain.ErrBadRequest, "Username/Email and password are required")
	}
	return nil
}

func (s *service) validateCaptcha(ctx context.Context, token string) bool {
	setting, err := s.settings.GetByName(ctx, domain.SettingRecaptchaSecretKey)
	if err != nil {
		slog.Warn("captcha secret setting missing", "err", err)
		return false
	}
	return s.captcha.Verify(ctx, setting.Value, token)
}

// ForgotPassword stores a fresh one-time code on the account, overwriting any
// prior code, then delivers it. A delivery failure is reported to the caller
// but the stored code is not rolled back.
func (s *service) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error {
	acct, err := s.creds.GetByEmail(ctx, req.Email)
	if err != nil {
		return domain.E(domain.ErrNotFound, "Email not found. Please register first.")
	}
	if s.requireActiveForReset && !acct.Active {
		return domain.E(domain.ErrBadRequest, "User is not active")
	}

	code, err := otp.New()
	if err != nil {
		return err
	}
	if err := s.creds.UpdateOTP(ctx, acct.ID, code); err != nil {
		return domain.E(domain.ErrBadRequest, "Failed to update OTP.")
	}

	if req.Phone != nil && *req.Phone != "" && s.sms != nil {
		if err := s.sms.SendPasswordResetOTP(ctx, *req.Phone, code); err != nil {
			slog.Warn("OTP SMS send failed", "err", err)
			return domain.E(domain.ErrBadRequest, "Failed to send OTP.")
		}
		return nil
	}

	template, err := s.settings.GetByName(ctx, domain.SettingForgotPasswordEmailTemplate)
	if err != nil {
		return domain.E(domain.ErrBadRequest, "Email template not found.")
	}
	if err := s.mailer.SendForgotPasswordOTP(acct.Email, acct.Name, code, template.Value); err != nil {
		slog.Warn("OTP email send failed", "email", acct.Email, "err", err)
		return domain.E(domain.ErrBadRequest, "Failed to send OTP.")
	}
	return nil
}

// VerifyOTP checks the submitted code against the most recently stored one.
// Exact string match; an empty stored code never matches.
func (s *service) VerifyOTP(ctx context.Context, req VerifyOTPRequest) error {
	if req.Email == "" || req.OTP == "" {
		return domain.E(domain.ErrBadRequest, "Email and OTP are required.")
	}
	acct, err := s.creds.GetByEmail(ctx, req.Email)
	if err != nil {
		return domain.E(domain.ErrNotFound, "User not found.")
	}
	if acct.OTP == "" || acct.OTP != req.OTP {
		return domain.E(domain.ErrUnauthorized, "Invalid OTP.")
	}
	return nil
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if req.Email == "" || req.Password == "" {
		return domain.E(domain.ErrBadRequest, "Email and password are required.")
	}
	acct, err := s.creds.GetByEmail(ctx, req.Email)
	if err != nil {
		return domain.E(domain.ErrNotFound, "User not found.")
	}
	if s.requireActiveForReset && !acct.Active {
		return domain.E(domain.ErrBadRequest, "User is not active")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.creds.UpdatePassword(ctx, acct.ID, string(hash))
}
