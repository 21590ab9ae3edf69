package checkoutstripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"

	"github.com/MarcGrol/ndaonboarding/lib/myerrors"
)

//go:generate mockgen -source=payer.go -package checkoutstripe -destination payer_mock.go Payer
type Payer interface {
	CreateCheckoutSession(c context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error)
	GetCheckoutSession(c context.Context, sessionID string) (stripe.CheckoutSession, error)
}

type stripePayer struct{}

func NewPayer(apiKey string) Payer {
	stripe.Key = apiKey
	return &stripePayer{}
}

func (p *stripePayer) CreateCheckoutSession(c context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
	params.Context = c
	session, err := session.New(&params)
	if err != nil {
		return stripe.CheckoutSession{}, myerrors.NewInvalidInputError(fmt.Errorf("error creating stripe session: %s", err))
	}

	return *session, nil
}

func (p *stripePayer) GetCheckoutSession(c context.Context, sessionID string) (stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = c
	params.AddExpand("customer")

	session, err := session.Get(sessionID, params)
	if err != nil {
		return stripe.CheckoutSession{}, myerrors.NewNotFoundError(fmt.Errorf("error fetching stripe session %s: %s", sessionID, err))
	}

	return *session, nil
}
