package stripeinfra

import (
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// Intent is the subset of a Stripe PaymentIntent the application cares about.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

// Gateway creates and inspects payment intents.
type Gateway interface {
	CreateIntent(amountCents int64, currency, description string) (*Intent, error)
	GetIntent(id string) (*Intent, error)
}

type gateway struct {
	api *client.API
}

func NewGateway(apiKey string) Gateway {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &gateway{api: api}
}

func (g *gateway) CreateIntent(amountCents int64, currency, description string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret, Status: string(pi.Status)}, nil
}

func (g *gateway) GetIntent(id string) (*Intent, error) {
	pi, err := g.api.PaymentIntents.Get(id, nil)
	if err != nil {
		return nil, fmt.Errorf("get payment intent: %w", err)
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret, Status: string(pi.Status)}, nil
}
