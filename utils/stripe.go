package utils

import (
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// PaymentGateway is the subset of the Stripe API the checkout flow uses.
type PaymentGateway interface {
	CreateCustomer(params *stripe.CustomerParams) (*stripe.Customer, error)
	GetCustomer(id string) (*stripe.Customer, error)
	CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type StripeGateway struct {
	api *client.API
}

// NewStripeGateway builds a client bound to secretKey instead of the
// package-level stripe.Key.
func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	return g.api.Customers.New(params)
}

func (g *StripeGateway) GetCustomer(id string) (*stripe.Customer, error) {
	return g.api.Customers.Get(id, nil)
}

func (g *StripeGateway) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return g.api.CheckoutSessions.New(params)
}
