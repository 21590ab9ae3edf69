package onboarding

import (
	"context"

	"github.com/MarcGrol/ndaonboarding/lib/mylog"
	"github.com/MarcGrol/ndaonboarding/services/docusign/docusignclient"
)

type service struct {
	logger       mylog.Logger
	resolver     CustomerEmailResolver
	orchestrator EnvelopeOrchestrator
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(logger mylog.Logger, resolver CustomerEmailResolver, orchestrator EnvelopeOrchestrator) *service {
	return &service{
		logger:       logger,
		resolver:     resolver,
		orchestrator: orchestrator,
	}
}

type landing struct {
	carried       carriedState
	docusignError string
	sessionID     string
	auth          docusignclient.AuthData
	authorized    bool
}

// resolve decides in which step a customer arriving at the onboarding page starts
func (s *service) resolve(c context.Context, l landing) Transition {
	state := State{
		Step:             StepLoading,
		CustomerEmail:    l.carried.CustomerEmail,
		CustomerName:     l.carried.CustomerName,
		DocuSignEmail:    l.carried.DocuSignEmail,
		SignerAuthorized: l.authorized,
	}

	var event Event
	switch {
	case l.docusignError != "":
		s.logger.Log(c, "", mylog.SeverityWarn, "Returned from DocuSign with error: %s", l.docusignError)
		event = AuthorizationErrorReceived{Message: l.docusignError}

	case l.authorized && l.auth.UserInfo.Email != "":
		event = AuthorizationGranted{SignerEmail: l.auth.UserInfo.Email}

	case l.sessionID != "":
		email, err := s.resolver.GetCustomerEmail(c, l.sessionID)
		if err != nil {
			s.logger.Log(c, l.sessionID, mylog.SeverityError, "Error fetching customer email: %s", err)
			event = CheckoutLookupFailed{}
		} else {
			event = CheckoutResolved{Email: email}
		}

	default:
		event = CheckoutUnavailable{}
	}

	transition, err := Apply(state, event)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityError, "Error resolving onboarding step: %s", err)
		state.Step = StepEmail
		return Transition{State: state}
	}

	return transition
}

func (s *service) submit(c context.Context, state State, event Event) (Transition, error) {
	transition, err := Apply(state, event)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Rejected input: %s", err)
		return transition, err
	}
	return transition, nil
}

// startAuthorization returns where to send the customer to grant access to DocuSign
func (s *service) startAuthorization(c context.Context, state State, origin string) (string, Transition) {
	authURL, err := s.orchestrator.AuthorizationURL(c, origin)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityError, "Error initiating DocuSign auth: %s", err)
		return "", s.apply(c, state, AuthorizationStartFailed{})
	}

	return authURL, Transition{State: state}
}

// requestSigning sends the NDA and returns where the customer can sign it
func (s *service) requestSigning(c context.Context, state State, auth docusignclient.AuthData, origin string) (string, Transition, error) {
	if !state.SignerAuthorized {
		return "", s.apply(c, state, AuthorizationMissing{}), nil
	}

	if !state.readyForSigning() {
		transition, err := Apply(state, SigningCompleted{})
		s.logger.Log(c, "", mylog.SeverityWarn, "Signing requested with incomplete information: %s", err)
		return "", transition, err
	}

	signingURL, err := s.orchestrator.CreateEnvelopeAndSigningURL(c, auth, origin, state.DocuSignEmail, state.CustomerName)
	if err != nil {
		s.logger.Log(c, state.DocuSignEmail, mylog.SeverityError, "Error creating DocuSign envelope: %s", err)
		return "", s.apply(c, state, SigningFailed{}), nil
	}

	return signingURL, s.apply(c, state, SigningCompleted{}), nil
}

func (s *service) apply(c context.Context, state State, event Event) Transition {
	transition, err := Apply(state, event)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityError, "Error applying %s: %s", event.name(), err)
	}
	return transition
}
