package domain

import "time"

// Affiliate is a partner account type, structurally parallel to User but with
// its own login and password-recovery flow.
type Affiliate struct {
	AffiliateID   string    `json:"id" dynamodbav:"affiliate_id"`
	Name          string    `json:"name" dynamodbav:"name"`
	Username      string    `json:"username" dynamodbav:"username"`
	Email         string    `json:"email" dynamodbav:"email"`
	Phone         *string   `json:"phone" dynamodbav:"phone"`
	PasswordHash  string    `json:"-" dynamodbav:"password_hash"`
	AffiliateCode string    `json:"affiliate_code" dynamodbav:"affiliate_code"`
	OTP           string    `json:"-" dynamodbav:"otp"`
	Active        bool      `json:"is_active" dynamodbav:"active"`
	CreatedAt     time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt     time.Time `json:"updated" dynamodbav:"updated_at"`
}

type CreateAffiliateRequest struct {
	Name          string  `json:"name" validate:"required"`
	Username      string  `json:"username" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         *string `json:"phone"`
	Password      string  `json:"password" validate:"required,min=8,max=72"`
	AffiliateCode string  `json:"affiliate_code" validate:"required"`
}

type UpdateAffiliateRequest struct {
	Name          *string `json:"name"`
	Username      *string `json:"username"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	AffiliateCode *string `json:"affiliate_code"`
	Active        *bool   `json:"is_active"`
}
