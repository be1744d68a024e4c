package domain

import "time"

type User struct {
	UserID       string     `json:"id" dynamodbav:"user_id"`
	Username     string     `json:"username" dynamodbav:"username"`
	Email        string     `json:"email" dynamodbav:"email"`
	Phone        *string    `json:"phone" dynamodbav:"phone"`
	PasswordHash string     `json:"-" dynamodbav:"password_hash"`
	FirstName    string     `json:"first_name" dynamodbav:"first_name"`
	LastName     string     `json:"last_name" dynamodbav:"last_name"`
	RoleID       string     `json:"role_id" dynamodbav:"role_id"`
	AffiliateID  *string    `json:"affiliate_id,omitempty" dynamodbav:"affiliate_id"`
	RecruiterID  *string    `json:"recruiter_id,omitempty" dynamodbav:"recruiter_id"`
	PackageID    *string    `json:"package_id,omitempty" dynamodbav:"package_id"`
	FreeIQUsed   int        `json:"free_iq_used" dynamodbav:"free_iq_used"`
	ResumeObject *string    `json:"resume_object,omitempty" dynamodbav:"resume_object"`
	IPAddress    string     `json:"ip_address,omitempty" dynamodbav:"ip_address"`
	OTP          string     `json:"-" dynamodbav:"otp"`
	Active       bool       `json:"is_active" dynamodbav:"active"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" dynamodbav:"deleted_at"`
	CreatedAt    time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt    time.Time  `json:"updated" dynamodbav:"updated_at"`
}

type CreateUserRequest struct {
	Username    string  `json:"username" validate:"required"`
	Password    string  `json:"password" validate:"required,min=8,max=72"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone"`
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name"`
	RoleID      string  `json:"role_id" validate:"required"`
	AffiliateID *string `json:"affiliate_id"`
	RecruiterID *string `json:"recruiter_id"`
	IPAddress   string  `json:"ip_address"`
	// CaptchaToken is validated only when present; admin tooling omits it.
	CaptchaToken string `json:"captcha_token"`
}

type UpdateUserRequest struct {
	Username    *string `json:"username"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	RoleID      *string `json:"role_id"`
	AffiliateID *string `json:"affiliate_id"`
	RecruiterID *string `json:"recruiter_id"`
	IPAddress   *string `json:"ip_address"`
	Active      *bool   `json:"is_active"`
}
