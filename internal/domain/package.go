package domain

import "time"

// Package is a purchasable bundle of job-post credits.
type Package struct {
	PackageID   string    `json:"id" dynamodbav:"package_id"`
	Name        string    `json:"name" dynamodbav:"name"`
	Description string    `json:"description" dynamodbav:"description"`
	PriceCents  int64     `json:"price_cents" dynamodbav:"price_cents"`
	Currency    string    `json:"currency" dynamodbav:"currency"`
	JobCredits  int       `json:"job_credits" dynamodbav:"job_credits"`
	Active      bool      `json:"is_active" dynamodbav:"active"`
	CreatedAt   time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updated" dynamodbav:"updated_at"`
}

type PackageInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" validate:"required,min=0"`
	Currency    string `json:"currency"`
	JobCredits  int    `json:"job_credits" validate:"min=0"`
	Active      *bool  `json:"is_active"`
}
