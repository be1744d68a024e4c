package domain

import "time"

type Promo struct {
	PromoID         string    `json:"id" dynamodbav:"promo_id"`
	Code            string    `json:"promo_code" dynamodbav:"promo_code"`
	Description     string    `json:"description" dynamodbav:"description"`
	DiscountPercent int       `json:"discount_percent" dynamodbav:"discount_percent"`
	ValidFrom       time.Time `json:"valid_from" dynamodbav:"valid_from"`
	ValidTo         time.Time `json:"valid_to" dynamodbav:"valid_to"`
	Active          bool      `json:"is_active" dynamodbav:"active"`
	CreatedAt       time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt       time.Time `json:"updated" dynamodbav:"updated_at"`
}

type PromoInput struct {
	Code            string `json:"promo_code" validate:"required"`
	Description     string `json:"description"`
	DiscountPercent int    `json:"discount_percent" validate:"required,min=1,max=100"`
	ValidFrom       string `json:"valid_from"` // YYYY-MM-DD
	ValidTo         string `json:"valid_to"`   // YYYY-MM-DD
	Active          *bool  `json:"is_active"`
}
