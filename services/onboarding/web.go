package onboarding

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/ndaonboarding/lib/mycontext"
	"github.com/MarcGrol/ndaonboarding/lib/myerrors"
	"github.com/MarcGrol/ndaonboarding/lib/myhttp"
	"github.com/MarcGrol/ndaonboarding/lib/mylog"
	"github.com/MarcGrol/ndaonboarding/services/docusign/docusignclient"
)

//go:embed templates
var templateFolder embed.FS
var (
	successPageTemplate  *template.Template
	completePageTemplate *template.Template
)

func init() {
	successPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/success.html"))
	completePageTemplate = template.Must(template.ParseFS(templateFolder, "templates/complete.html"))
}

var stepPaths = map[Step]string{
	StepEmail:         "email",
	StepName:          "name",
	StepDocuSignEmail: "docusign-email",
	StepDocuSignAuth:  "docusign-auth",
	StepNDA:           "nda",
}

func stepFromPath(path string) (Step, bool) {
	for step, p := range stepPaths {
		if p == path {
			return step, true
		}
	}
	return "", false
}

type successPage struct {
	State  State
	Notice *Notice
	Action string
	Hidden url.Values
}

type completePage struct {
	ContinueURL string
}

type webService struct {
	logger      mylog.Logger
	authReader  AuthReader
	continueURL string
	service     *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(resolver CustomerEmailResolver, orchestrator EnvelopeOrchestrator, authReader AuthReader, continueURL string) *webService {
	logger := mylog.New("onboarding")
	return &webService{
		logger:      logger,
		authReader:  authReader,
		continueURL: continueURL,
		service:     newService(logger, resolver, orchestrator),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/success", s.successPage()).Methods("GET")
	router.HandleFunc("/success/{step}", s.stepAction()).Methods("POST")
	router.HandleFunc("/complete", s.completePage()).Methods("GET")

	return nil
}

func (s *webService) successPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		carried, err := carriedFromValues(r.URL.Query())
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		auth, authorized := s.loadAuthorization(c, r)

		transition := s.service.resolve(c, landing{
			carried:       carried,
			docusignError: r.URL.Query().Get("docusign_error"),
			sessionID:     r.URL.Query().Get("session_id"),
			auth:          auth,
			authorized:    authorized,
		})

		s.render(c, w, http.StatusOK, transition)
	}
}

func (s *webService) stepAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		step, found := stepFromPath(mux.Vars(r)["step"])
		if !found {
			errorWriter.WriteError(c, w, 1, myerrors.NewNotFoundError(fmt.Errorf("unknown step %s", mux.Vars(r)["step"])))
			return
		}

		err := r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		form, err := stepFormFromValues(r.PostForm)
		if err != nil {
			errorWriter.WriteError(c, w, 3, myerrors.NewInvalidInputError(err))
			return
		}

		auth, authorized := s.loadAuthorization(c, r)
		state := form.state(step)
		state.SignerAuthorized = authorized

		var transition Transition
		switch step {
		case StepEmail:
			transition, err = s.service.submit(c, state, EmailSubmitted{Email: form.Email})

		case StepName:
			transition, err = s.service.submit(c, state, NameSubmitted{Name: form.Name})

		case StepDocuSignEmail:
			transition, err = s.service.submit(c, state, DocuSignEmailSubmitted{Email: form.SignerEmail})

		case StepDocuSignAuth:
			var authURL string
			authURL, transition = s.service.startAuthorization(c, state, myhttp.HostnameWithScheme(r))
			if authURL != "" {
				http.Redirect(w, r, authURL, http.StatusSeeOther)
				return
			}

		case StepNDA:
			var signingURL string
			signingURL, transition, err = s.service.requestSigning(c, state, auth, myhttp.HostnameWithScheme(r))
			if err == nil && signingURL != "" {
				http.Redirect(w, r, signingURL, http.StatusSeeOther)
				return
			}
		}

		status := http.StatusOK
		if err != nil {
			status = myerrors.GetHTTPStatus(err)
		}
		s.render(c, w, status, transition)
	}
}

func (s *webService) completePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := completePageTemplate.Execute(w, completePage{
			ContinueURL: s.continueURL,
		})
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *webService) loadAuthorization(c context.Context, r *http.Request) (docusignclient.AuthData, bool) {
	auth, found, err := s.authReader.Load(c, r)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityError, "Error loading DocuSign authorization: %s", err)
		return docusignclient.AuthData{}, false
	}
	return auth, found
}

func (s *webService) render(c context.Context, w http.ResponseWriter, status int, transition Transition) {
	errorWriter := myhttp.NewWriter(s.logger)

	hidden, err := transition.State.carried().toForm()
	if err != nil {
		errorWriter.WriteError(c, w, 4, myerrors.NewInternalError(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	err = successPageTemplate.Execute(w, successPage{
		State:  transition.State,
		Notice: transition.Notice,
		Action: "/success/" + stepPaths[transition.State.Step],
		Hidden: hidden,
	})
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityError, "Error rendering step %s: %s", transition.State.Step, err)
	}
}
