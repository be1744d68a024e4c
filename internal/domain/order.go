package domain

import "time"

// Order statuses.
const (
	OrderPending = "pending"
	OrderPaid    = "paid"
)

// Order records a package purchase and its Stripe payment intent.
type Order struct {
	OrderID         string    `json:"id" dynamodbav:"order_id"`
	UserID          string    `json:"user_id" dynamodbav:"user_id"`
	PackageID       string    `json:"package_id" dynamodbav:"package_id"`
	PromoCode       *string   `json:"promo_code,omitempty" dynamodbav:"promo_code"`
	AmountCents     int64     `json:"amount_cents" dynamodbav:"amount_cents"`
	Currency        string    `json:"currency" dynamodbav:"currency"`
	PaymentIntentID string    `json:"payment_intent_id" dynamodbav:"payment_intent_id"`
	Status          string    `json:"status" dynamodbav:"status"`
	CreatedAt       time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt       time.Time `json:"updated" dynamodbav:"updated_at"`
}
