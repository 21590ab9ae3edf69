package checkoutstripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v74"

	"github.com/MarcGrol/ndaonboarding/lib/myerrors"
	"github.com/MarcGrol/ndaonboarding/lib/mylog"
	"github.com/MarcGrol/ndaonboarding/lib/mypublisher"
	"github.com/MarcGrol/ndaonboarding/services/checkoutevents"
)

type service struct {
	logger    mylog.Logger
	payer     Payer
	publisher mypublisher.Publisher
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(logger mylog.Logger, payer Payer, publisher mypublisher.Publisher) *service {
	return &service{
		logger:    logger,
		payer:     payer,
		publisher: publisher,
	}
}

// startCheckout creates a subscription checkout session on the Stripe platform and
// returns the url of the hosted payment page
func (s *service) startCheckout(c context.Context, origin string, priceID string) (string, error) {
	s.logger.Log(c, priceID, mylog.SeverityInfo, "Start checkout for price %s", priceID)

	session, err := s.payer.CreateCheckoutSession(c, checkoutParams(origin, priceID))
	if err != nil {
		return "", err
	}
	if session.URL == "" {
		return "", myerrors.NewInternalError(fmt.Errorf("stripe returned no checkout url for price %s", priceID))
	}

	err = s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.CheckoutStarted{
		CheckoutUID:  session.ID,
		ProviderName: "stripe",
		PriceID:      priceID,
		Mode:         string(stripe.CheckoutSessionModeSubscription),
	})
	if err != nil {
		return "", myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
	}

	return session.URL, nil
}

// getCustomerEmail returns the email the purchaser entered on the payment page or
// an empty string when Stripe has none
func (s *service) getCustomerEmail(c context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", myerrors.NewInvalidInputError(fmt.Errorf("missing checkout session id"))
	}

	session, err := s.payer.GetCheckoutSession(c, sessionID)
	if err != nil {
		return "", err
	}

	if session.CustomerDetails == nil {
		return "", nil
	}

	return session.CustomerDetails.Email, nil
}

func checkoutParams(origin string, priceID string) stripe.CheckoutSessionParams {
	return stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:                stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		AllowPromotionCodes: stripe.Bool(true),
		SuccessURL:          stripe.String(origin + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:           stripe.String(origin + "/"),
	}
}
