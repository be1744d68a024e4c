package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/agaman/jobboard-api/internal/domain"
	stripeinfra "github.com/agaman/jobboard-api/internal/infrastructure/stripe"
	"github.com/agaman/jobboard-api/internal/pkg/id"
)

type CreateRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	PackageID string  `json:"package_id" validate:"required"`
	PromoCode *string `json:"promo_code"`
}

// CreateResult carries the pending order and the client secret the frontend
// needs to complete the Stripe payment.
type CreateResult struct {
	Order        *domain.Order `json:"order"`
	ClientSecret string        `json:"client_secret"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)
	Confirm(ctx context.Context, paymentIntentID string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	AddOrder(ctx context.Context, o domain.Order) (*domain.Order, error)
}

type orderStore interface {
	Put(ctx context.Context, o *domain.Order) error
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Order, error)
	Scan(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

type packageStore interface {
	Get(ctx context.Context, packageID string) (*domain.Package, error)
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

type promoResolver interface {
	GetByCode(ctx context.Context, code string) (*domain.Promo, error)
}

type paymentGateway interface {
	CreateIntent(amountCents int64, currency, description string) (*stripeinfra.Intent, error)
	GetIntent(id string) (*stripeinfra.Intent, error)
}

type service struct {
	orders   orderStore
	packages packageStore
	users    userStore
	promos   promoResolver
	gateway  paymentGateway
}

type ServiceDeps struct {
	OrderRepo   orderStore
	PackageRepo packageStore
	UserRepo    userStore
	Promos      promoResolver
	Gateway     paymentGateway
}

func NewService(deps ServiceDeps) Service {
	return &service{
		orders:   deps.OrderRepo,
		packages: deps.PackageRepo,
		users:    deps.UserRepo,
		promos:   deps.Promos,
		gateway:  deps.Gateway,
	}
}

// Create prices the package (applying a promo code when given), opens a Stripe
// payment intent, and records a pending order against it.
func (s *service) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	if _, err := s.users.Get(ctx, req.UserID); err != nil {
		return nil, domain.E(domain.ErrNotFound, "User not found.")
	}
	pkg, err := s.packages.Get(ctx, req.PackageID)
	if err != nil {
		return nil, domain.E(domain.ErrNotFound, "Package not found.")
	}

	amount := pkg.PriceCents
	if req.PromoCode != nil && *req.PromoCode != "" {
		promo, err := s.promos.GetByCode(ctx, *req.PromoCode)
		if err != nil {
			return nil, err
		}
		amount -= amount * int64(promo.DiscountPercent) / 100
	}

	intent, err := s.gateway.CreateIntent(amount, pkg.Currency, "Package: "+pkg.Name)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	now := time.Now().UTC()
	o := &domain.Order{
		OrderID:         id.New(),
		UserID:          req.UserID,
		PackageID:       req.PackageID,
		PromoCode:       req.PromoCode,
		AmountCents:     amount,
		Currency:        pkg.Currency,
		PaymentIntentID: intent.ID,
		Status:          domain.OrderPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.orders.Put(ctx, o); err != nil {
		return nil, err
	}
	return &CreateResult{Order: o, ClientSecret: intent.ClientSecret}, nil
}

// Confirm re-reads the intent from Stripe and marks the order paid once the
// intent has succeeded. The gateway is the source of truth; client-reported
// status is never trusted.
func (s *service) Confirm(ctx context.Context, paymentIntentID string) (*domain.Order, error) {
	if paymentIntentID == "" {
		return nil, fmt.Errorf("payment intent id is required: %w", domain.ErrBadRequest)
	}
	o, err := s.orders.GetByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, domain.E(domain.ErrNotFound, "Order not found.")
	}
	intent, err := s.gateway.GetIntent(paymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("get payment intent: %w", err)
	}
	if intent.Status != "succeeded" {
		return nil, domain.E(domain.ErrBadRequest, "Payment not completed.")
	}
	if o.Status != domain.OrderPaid {
		if err := s.orders.UpdateStatus(ctx, o.OrderID, domain.OrderPaid); err != nil {
			return nil, err
		}
		o.Status = domain.OrderPaid
	}
	return o, nil
}

func (s *service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.Scan(ctx)
}

func (s *service) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orders.Get(ctx, orderID)
}

// AddOrder records an order row directly, bypassing Stripe. Used by admin
// tooling for manually settled purchases.
func (s *service) AddOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	if o.UserID == "" || o.PackageID == "" {
		return nil, fmt.Errorf("user_id and package_id are required: %w", domain.ErrBadRequest)
	}
	if o.Status == "" {
		o.Status = domain.OrderPending
	}
	now := time.Now().UTC()
	o.OrderID = id.New()
	o.CreatedAt = now
	o.UpdatedAt = now
	if err := s.orders.Put(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
