package docusign

import (
	"context"
	"fmt"

	"github.com/MarcGrol/ndaonboarding/lib/myerrors"
	"github.com/MarcGrol/ndaonboarding/lib/myevents"
	"github.com/MarcGrol/ndaonboarding/lib/mylog"
	"github.com/MarcGrol/ndaonboarding/lib/mypublisher"
	"github.com/MarcGrol/ndaonboarding/services/docusign/docusignclient"
	"github.com/MarcGrol/ndaonboarding/services/docusign/ndaevents"
)

const (
	callbackPath = "/api/docusign-callback"
	completePath = "/complete"
)

type service struct {
	logger     mylog.Logger
	client     docusignclient.Client
	templateID string
	publisher  mypublisher.Publisher
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(logger mylog.Logger, client docusignclient.Client, templateID string, publisher mypublisher.Publisher) *service {
	return &service{
		logger:     logger,
		client:     client,
		templateID: templateID,
		publisher:  publisher,
	}
}

func (s *service) authorizationURL(c context.Context, origin string) (string, error) {
	if origin == "" {
		return "", myerrors.NewInvalidInputError(fmt.Errorf("missing origin"))
	}

	authURL := s.client.ComposeAuthURL(origin + callbackPath)
	if authURL == "" {
		return "", myerrors.NewInternalError(fmt.Errorf("no authorization url"))
	}

	return authURL, nil
}

// authorize exchanges the code for a token and fetches the identity of the signer behind it
func (s *service) authorize(c context.Context, code string, origin string) (docusignclient.AuthData, error) {
	tokenData, err := s.client.GetAccessToken(c, code, origin+callbackPath)
	if err != nil {
		return docusignclient.AuthData{}, err
	}

	userInfo, err := s.client.GetUserInfo(c, tokenData.AccessToken)
	if err != nil {
		return docusignclient.AuthData{}, err
	}

	account, _ := userInfo.DefaultAccount()
	s.publish(c, ndaevents.SignerAuthorized{
		SignerEmail: userInfo.Email,
		AccountID:   account.AccountID,
	})

	return docusignclient.AuthData{
		TokenData: tokenData,
		UserInfo:  userInfo,
	}, nil
}

// createEnvelopeAndSigningURL sends the NDA to the signer and returns the url of the embedded signing session
func (s *service) createEnvelopeAndSigningURL(c context.Context, auth docusignclient.AuthData, origin string, email string, name string) (string, error) {
	if email == "" || name == "" {
		return "", myerrors.NewInvalidInputError(fmt.Errorf("signer email and name are required"))
	}
	if auth.TokenData.AccessToken == "" {
		return "", myerrors.NewUnauthorizedError(fmt.Errorf("DocuSign authentication required"))
	}

	account, found := auth.UserInfo.DefaultAccount()
	if !found {
		return "", myerrors.NewInvalidInputError(fmt.Errorf("DocuSign user %s has no account", auth.UserInfo.Email))
	}

	signer := docusignclient.Signer{
		Email: email,
		Name:  name,
	}

	envelope, err := s.client.CreateEnvelope(c, auth.TokenData.AccessToken, account.AccountID, s.templateID, signer)
	if err != nil {
		return "", myerrors.NewInternalError(err)
	}

	s.logger.Log(c, envelope.EnvelopeID, mylog.SeverityInfo, "Envelope %s sent to %s", envelope.EnvelopeID, email)

	s.publish(c, ndaevents.EnvelopeSent{
		EnvelopeID:  envelope.EnvelopeID,
		TemplateID:  s.templateID,
		SignerEmail: email,
		SignerName:  name,
	})

	view, err := s.client.CreateRecipientView(c, auth.TokenData.AccessToken, account.AccountID, envelope.EnvelopeID, signer, origin+completePath)
	if err != nil {
		return "", myerrors.NewInternalError(err)
	}
	if view.URL == "" {
		return "", myerrors.NewInternalError(fmt.Errorf("no signing url for envelope %s", envelope.EnvelopeID))
	}

	return view.URL, nil
}

// publish does not fail the customer flow: the events only inform other parties
func (s *service) publish(c context.Context, event myevents.Event) {
	err := s.publisher.Publish(c, ndaevents.TopicName, event)
	if err != nil {
		s.logger.Log(c, event.GetAggregateName(), mylog.SeverityWarn, "Error publishing %s: %s", event.GetEventTypeName(), err)
	}
}
