package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/ndaonboarding/lib/myconfig"
	"github.com/MarcGrol/ndaonboarding/lib/mypublisher"
	"github.com/MarcGrol/ndaonboarding/lib/mypubsub"
	"github.com/MarcGrol/ndaonboarding/lib/mytime"
	"github.com/MarcGrol/ndaonboarding/lib/myuuid"
	"github.com/MarcGrol/ndaonboarding/lib/myvault"
	"github.com/MarcGrol/ndaonboarding/services/checkoutstripe"
	"github.com/MarcGrol/ndaonboarding/services/docusign"
	"github.com/MarcGrol/ndaonboarding/services/docusign/authstore"
	"github.com/MarcGrol/ndaonboarding/services/docusign/docusignclient"
	"github.com/MarcGrol/ndaonboarding/services/onboarding"
	"github.com/MarcGrol/ndaonboarding/services/warmup"
)

func main() {
	c := context.Background()

	cfg, err := myconfig.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %s", err)
	}

	router := mux.NewRouter()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()
	publisher := mypublisher.New(pubsub, mytime.RealNower{})

	vault, vaultCleanup, err := myvault.New[docusignclient.AuthData](c, "docusign_auth")
	if err != nil {
		log.Fatalf("Error creating vault: %s", err)
	}
	defer vaultCleanup()
	if cfg.RedisAddr != "" {
		log.Printf("Authorizations are kept in redis at %s", cfg.RedisAddr)
	}

	authStore := authstore.New(vault, myuuid.RealUUIDer{}, mytime.RealNower{}, cfg.SessionSecret, cfg.IsProduction())

	checkoutService := checkoutstripe.NewWebService(cfg.StripePriceID, checkoutstripe.NewPayer(cfg.StripeSecretKey), publisher)
	err = checkoutService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering checkout endpoints: %s", err)
	}

	docusignService := docusign.NewWebService(docusignclient.New(docusignclient.Config{
		IntegrationKey: cfg.DocuSignIntegrationKey,
		SecretKey:      cfg.DocuSignSecretKey,
		AuthBaseURL:    cfg.DocuSignAuthBaseURL,
		APIBaseURL:     cfg.DocuSignAPIBaseURL,
	}, nil), cfg.DocuSignTemplateID, authStore, publisher)
	err = docusignService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering docusign endpoints: %s", err)
	}

	onboardingService := onboarding.NewWebService(checkoutService, docusignService, authStore, cfg.ContinueURL)
	err = onboardingService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering onboarding endpoints: %s", err)
	}

	warmupService := warmup.NewService(vault, myuuid.RealUUIDer{}, publisher)
	err = warmupService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering warmup endpoints: %s", err)
	}

	startWebServerBlocking(cfg, router)
}

func startWebServerBlocking(cfg *myconfig.Config, router *mux.Router) {
	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://localhost:%s", cfg.Port)
	}

	log.Printf("Starting webserver on port %s (try %s)", cfg.Port, baseURL)
	err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", cfg.Port, err)
	}
}
