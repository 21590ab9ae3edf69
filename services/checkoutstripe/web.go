package checkoutstripe

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/ndaonboarding/lib/mycontext"
	"github.com/MarcGrol/ndaonboarding/lib/myerrors"
	"github.com/MarcGrol/ndaonboarding/lib/myhttp"
	"github.com/MarcGrol/ndaonboarding/lib/mylog"
	"github.com/MarcGrol/ndaonboarding/lib/mypublisher"
	"github.com/MarcGrol/ndaonboarding/services/checkoutevents"
)

//go:embed templates
var templateFolder embed.FS
var (
	pricingPageTemplate *template.Template
)

func init() {
	pricingPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/pricing.html"))
}

type webService struct {
	logger         mylog.Logger
	premiumPriceID string
	publisher      mypublisher.Publisher
	service        *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(premiumPriceID string, payer Payer, publisher mypublisher.Publisher) *webService {
	logger := mylog.New("checkoutstripe")
	return &webService{
		logger:         logger,
		premiumPriceID: premiumPriceID,
		publisher:      publisher,
		service:        newService(logger, payer, publisher),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/", s.pricingPage()).Methods("GET")
	router.HandleFunc("/checkout", s.startCheckoutPage()).Methods("POST")

	err := s.publisher.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutevents.TopicName, err)
	}

	return nil
}

// GetCustomerEmail looks up the purchaser email of a completed checkout session
func (s *webService) GetCustomerEmail(c context.Context, sessionID string) (string, error) {
	return s.service.getCustomerEmail(c, sessionID)
}

func (s *webService) pricingPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := pricingPageTemplate.Execute(w, pricingPage{
			Plans: plans(s.premiumPriceID),
		})
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *webService) startCheckoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		priceID := r.Form.Get("priceId")
		if priceID == "" {
			priceID = s.premiumPriceID
		}

		redirectURL, err := s.service.startCheckout(c, myhttp.HostnameWithScheme(r), priceID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		http.Redirect(w, r, redirectURL, http.StatusSeeOther)
	}
}
