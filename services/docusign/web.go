package docusign

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/ndaonboarding/lib/mycontext"
	"github.com/MarcGrol/ndaonboarding/lib/myerrors"
	"github.com/MarcGrol/ndaonboarding/lib/myhttp"
	"github.com/MarcGrol/ndaonboarding/lib/mylog"
	"github.com/MarcGrol/ndaonboarding/lib/mypublisher"
	"github.com/MarcGrol/ndaonboarding/services/docusign/authstore"
	"github.com/MarcGrol/ndaonboarding/services/docusign/docusignclient"
	"github.com/MarcGrol/ndaonboarding/services/docusign/ndaevents"
)

const (
	successPath = "/success"
	errorParam  = "docusign_error"
)

type webService struct {
	logger    mylog.Logger
	authStore authstore.AuthStore
	publisher mypublisher.Publisher
	service   *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(client docusignclient.Client, templateID string, authStore authstore.AuthStore, publisher mypublisher.Publisher) *webService {
	logger := mylog.New("docusign")
	return &webService{
		logger:    logger,
		authStore: authStore,
		publisher: publisher,
		service:   newService(logger, client, templateID, publisher),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc(callbackPath, s.callback()).Methods("GET")

	err := s.publisher.CreateTopic(c, ndaevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", ndaevents.TopicName, err)
	}

	return nil
}

// AuthorizationURL returns the DocuSign consent page that redirects back to our callback
func (s *webService) AuthorizationURL(c context.Context, origin string) (string, error) {
	return s.service.authorizationURL(c, origin)
}

// CreateEnvelopeAndSigningURL sends the NDA and returns where the signer can sign it
func (s *webService) CreateEnvelopeAndSigningURL(c context.Context, auth docusignclient.AuthData, origin string, email string, name string) (string, error) {
	return s.service.createEnvelopeAndSigningURL(c, auth, origin, email, name)
}

func (s *webService) callback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)
		origin := myhttp.HostnameWithScheme(r)

		providerError := r.URL.Query().Get("error")
		if providerError != "" {
			s.redirectWithError(c, w, r, origin, classifyAuthorizationError(&docusignclient.ProviderError{
				Operation:   "authorize with DocuSign",
				ErrorCode:   providerError,
				Description: r.URL.Query().Get("error_description"),
			}))
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("No authorization code provided")))
			return
		}

		authData, err := s.service.authorize(c, code, origin)
		if err != nil {
			s.redirectWithError(c, w, r, origin, classifyAuthorizationError(err))
			return
		}

		err = s.authStore.Save(c, w, authData)
		if err != nil {
			s.redirectWithError(c, w, r, origin, classifyAuthorizationError(err))
			return
		}

		http.Redirect(w, r, origin+successPath, http.StatusSeeOther)
	}
}

func (s *webService) redirectWithError(c context.Context, w http.ResponseWriter, r *http.Request, origin string, authErr authorizationError) {
	s.logger.Log(c, "", mylog.SeverityError, "DocuSign authentication error (%d): %s: %s", authErr.GetHTTPErrorCode(), authErr.Error(), authErr.cause)

	http.Redirect(w, r, fmt.Sprintf("%s%s?%s=%s", origin, successPath, errorParam, url.QueryEscape(authErr.Error())), http.StatusSeeOther)
}
