package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/agaman/jobboard-api/internal/domain"
	stripeinfra "github.com/agaman/jobboard-api/internal/infrastructure/stripe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockOrderStore struct{ mock.Mock }

func (m *mockOrderStore) Put(ctx context.Context, o *domain.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *mockOrderStore) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if o, _ := args.Get(0).(*domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOrderStore) GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Order, error) {
	args := m.Called(ctx, paymentIntentID)
	if o, _ := args.Get(0).(*domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOrderStore) Scan(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *mockOrderStore) UpdateStatus(ctx context.Context, orderID, status string) error {
	return m.Called(ctx, orderID, status).Error(0)
}

type mockPackageStore struct{ mock.Mock }

func (m *mockPackageStore) Get(ctx context.Context, packageID string) (*domain.Package, error) {
	args := m.Called(ctx, packageID)
	if p, _ := args.Get(0).(*domain.Package); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPromoResolver struct{ mock.Mock }

func (m *mockPromoResolver) GetByCode(ctx context.Context, code string) (*domain.Promo, error) {
	args := m.Called(ctx, code)
	if p, _ := args.Get(0).(*domain.Promo); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) CreateIntent(amountCents int64, currency, description string) (*stripeinfra.Intent, error) {
	args := m.Called(amountCents, currency, description)
	if i, _ := args.Get(0).(*stripeinfra.Intent); i != nil {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGateway) GetIntent(id string) (*stripeinfra.Intent, error) {
	args := m.Called(id)
	if i, _ := args.Get(0).(*stripeinfra.Intent); i != nil {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- helpers ---

func premiumPackage() *domain.Package {
	return &domain.Package{PackageID: "p-1", Name: "Premium", PriceCents: 10000, Currency: "usd"}
}

// --- Create tests ---

func TestCreate_Success(t *testing.T) {
	us := &mockUserStore{}
	us.On("Get", mock.Anything, "u-1").Return(&domain.User{UserID: "u-1"}, nil)
	ps := &mockPackageStore{}
	ps.On("Get", mock.Anything, "p-1").Return(premiumPackage(), nil)
	gw := &mockGateway{}
	gw.On("CreateIntent", int64(10000), "usd", "Package: Premium").
		Return(&stripeinfra.Intent{ID: "pi_1", ClientSecret: "cs_1", Status: "requires_payment_method"}, nil)
	os := &mockOrderStore{}
	os.On("Put", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(ServiceDeps{OrderRepo: os, PackageRepo: ps, UserRepo: us, Gateway: gw})
	res, err := svc.Create(context.Background(), CreateRequest{UserID: "u-1", PackageID: "p-1"})

	require.NoError(t, err)
	assert.Equal(t, "cs_1", res.ClientSecret)
	assert.Equal(t, domain.OrderPending, res.Order.Status)
	assert.Equal(t, "pi_1", res.Order.PaymentIntentID)
	assert.Equal(t, int64(10000), res.Order.AmountCents)
	gw.AssertExpectations(t)
}

func TestCreate_PromoDiscountApplied(t *testing.T) {
	us := &mockUserStore{}
	us.On("Get", mock.Anything, "u-1").Return(&domain.User{UserID: "u-1"}, nil)
	ps := &mockPackageStore{}
	ps.On("Get", mock.Anything, "p-1").Return(premiumPackage(), nil)
	pr := &mockPromoResolver{}
	pr.On("GetByCode", mock.Anything, "SAVE20").Return(&domain.Promo{Code: "SAVE20", DiscountPercent: 20, Active: true}, nil)
	gw := &mockGateway{}
	gw.On("CreateIntent", int64(8000), "usd", mock.Anything).
		Return(&stripeinfra.Intent{ID: "pi_1", ClientSecret: "cs_1"}, nil)
	os := &mockOrderStore{}
	os.On("Put", mock.Anything, mock.Anything).Return(nil)

	code := "SAVE20"
	svc := NewService(ServiceDeps{OrderRepo: os, PackageRepo: ps, UserRepo: us, Promos: pr, Gateway: gw})
	res, err := svc.Create(context.Background(), CreateRequest{UserID: "u-1", PackageID: "p-1", PromoCode: &code})

	require.NoError(t, err)
	assert.Equal(t, int64(8000), res.Order.AmountCents)
	gw.AssertExpectations(t)
}

func TestCreate_InvalidPromoRejected(t *testing.T) {
	us := &mockUserStore{}
	us.On("Get", mock.Anything, "u-1").Return(&domain.User{UserID: "u-1"}, nil)
	ps := &mockPackageStore{}
	ps.On("Get", mock.Anything, "p-1").Return(premiumPackage(), nil)
	pr := &mockPromoResolver{}
	pr.On("GetByCode", mock.Anything, "NOPE").Return(nil, domain.E(domain.ErrNotFound, "Invalid promo code."))

	code := "NOPE"
	svc := NewService(ServiceDeps{PackageRepo: ps, UserRepo: us, Promos: pr})
	_, err := svc.Create(context.Background(), CreateRequest{UserID: "u-1", PackageID: "p-1", PromoCode: &code})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCreate_GatewayFailure(t *testing.T) {
	us := &mockUserStore{}
	us.On("Get", mock.Anything, "u-1").Return(&domain.User{UserID: "u-1"}, nil)
	ps := &mockPackageStore{}
	ps.On("Get", mock.Anything, "p-1").Return(premiumPackage(), nil)
	gw := &mockGateway{}
	gw.On("CreateIntent", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("stripe down"))
	os := &mockOrderStore{}

	svc := NewService(ServiceDeps{OrderRepo: os, PackageRepo: ps, UserRepo: us, Gateway: gw})
	_, err := svc.Create(context.Background(), CreateRequest{UserID: "u-1", PackageID: "p-1"})

	require.Error(t, err)
	os.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

// --- Confirm tests ---

func TestConfirm_MarksOrderPaid(t *testing.T) {
	os := &mockOrderStore{}
	os.On("GetByPaymentIntent", mock.Anything, "pi_1").
		Return(&domain.Order{OrderID: "o-1", PaymentIntentID: "pi_1", Status: domain.OrderPending}, nil)
	os.On("UpdateStatus", mock.Anything, "o-1", domain.OrderPaid).Return(nil)
	gw := &mockGateway{}
	gw.On("GetIntent", "pi_1").Return(&stripeinfra.Intent{ID: "pi_1", Status: "succeeded"}, nil)

	svc := NewService(ServiceDeps{OrderRepo: os, Gateway: gw})
	o, err := svc.Confirm(context.Background(), "pi_1")

	require.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, o.Status)
	os.AssertExpectations(t)
}

func TestConfirm_IntentNotSucceeded(t *testing.T) {
	os := &mockOrderStore{}
	os.On("GetByPaymentIntent", mock.Anything, "pi_1").
		Return(&domain.Order{OrderID: "o-1", Status: domain.OrderPending}, nil)
	gw := &mockGateway{}
	gw.On("GetIntent", "pi_1").Return(&stripeinfra.Intent{ID: "pi_1", Status: "requires_payment_method"}, nil)

	svc := NewService(ServiceDeps{OrderRepo: os, Gateway: gw})
	_, err := svc.Confirm(context.Background(), "pi_1")

	require.Error(t, err)
	assert.Equal(t, "Payment not completed.", err.Error())
	os.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirm_AlreadyPaidIsIdempotent(t *testing.T) {
	os := &mockOrderStore{}
	os.On("GetByPaymentIntent", mock.Anything, "pi_1").
		Return(&domain.Order{OrderID: "o-1", Status: domain.OrderPaid}, nil)
	gw := &mockGateway{}
	gw.On("GetIntent", "pi_1").Return(&stripeinfra.Intent{ID: "pi_1", Status: "succeeded"}, nil)

	svc := NewService(ServiceDeps{OrderRepo: os, Gateway: gw})
	o, err := svc.Confirm(context.Background(), "pi_1")

	require.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, o.Status)
	os.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirm_UnknownIntent(t *testing.T) {
	os := &mockOrderStore{}
	os.On("GetByPaymentIntent", mock.Anything, "pi_9").Return(nil, domain.ErrNotFound)

	svc := NewService(ServiceDeps{OrderRepo: os})
	_, err := svc.Confirm(context.Background(), "pi_9")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
