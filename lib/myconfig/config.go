// Package myconfig collects the runtime settings of the onboarding service:
// development defaults first, then an overlay from the environment.
package myconfig

import (
	"fmt"
	"os"
	"strings"
)

const (
	productionEnv = "production"
)

// Config holds runtime settings.
//
// Fields:
//   - Port: port the http server listens on.
//   - Environment: "production" switches cookies to Secure.
//   - PublicBaseURL: when set, overrides the origin derived from incoming requests.
//   - StripeSecretKey / StripePriceID: Stripe api key and the premium plan price.
//   - DocuSignIntegrationKey / DocuSignSecretKey: OAuth client credentials.
//   - DocuSignAuthBaseURL / DocuSignAPIBaseURL: account server and REST api.
//   - DocuSignTemplateID: template the NDA envelope is created from.
//   - SessionSecret: HMAC secret for signing the authorization cookie (HS256).
//   - ContinueURL: where the completion page sends the customer.
//   - RedisAddr: optional redis server backing the authorization vault.
type Config struct {
	Port                   string
	Environment            string
	PublicBaseURL          string
	StripeSecretKey        string
	StripePriceID          string
	DocuSignIntegrationKey string
	DocuSignSecretKey      string
	DocuSignAuthBaseURL    string
	DocuSignAPIBaseURL     string
	DocuSignTemplateID     string
	SessionSecret          string
	ContinueURL            string
	RedisAddr              string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SessionSecret must be overridden in production.
func (c *Config) LoadDefaults() {
	c.Port = "8080"
	c.Environment = "development"
	c.StripePriceID = "price_1QUwhBC2L0rtj24uyhqiI83U"
	c.DocuSignAuthBaseURL = "https://account-d.docusign.com/oauth"
	c.DocuSignAPIBaseURL = "https://demo.docusign.net/restapi"
	c.DocuSignTemplateID = "e796a161-ac62-4acf-9ba7-8360f2b36758"
	c.SessionSecret = "secretKey"
	c.ContinueURL = "https://www.skool.com/the-banking-vault"
}

func (c Config) IsProduction() bool {
	return c.Environment == productionEnv
}

// Validate reports the required settings that are missing.
func (c Config) Validate() error {
	missing := []string{}
	if c.StripeSecretKey == "" {
		missing = append(missing, "STRIPE_SECRET_KEY")
	}
	if c.DocuSignIntegrationKey == "" {
		missing = append(missing, "DOCUSIGN_INTEGRATION_KEY")
	}
	if c.DocuSignSecretKey == "" {
		missing = append(missing, "DOCUSIGN_SECRET_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// LoadConfig builds a Config by applying defaults and then overlaying values
// from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, os.LookupEnv)

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseEnv(cfg *Config, lookup func(string) (string, bool)) {
	overlay := func(name string, target *string) {
		value, found := lookup(name)
		if found && value != "" {
			*target = value
		}
	}

	overlay("PORT", &cfg.Port)
	overlay("APP_ENV", &cfg.Environment)
	overlay("PUBLIC_BASE_URL", &cfg.PublicBaseURL)
	overlay("STRIPE_SECRET_KEY", &cfg.StripeSecretKey)
	overlay("STRIPE_PRICE_ID", &cfg.StripePriceID)
	overlay("DOCUSIGN_INTEGRATION_KEY", &cfg.DocuSignIntegrationKey)
	overlay("DOCUSIGN_SECRET_KEY", &cfg.DocuSignSecretKey)
	overlay("DOCUSIGN_AUTH_BASE_URL", &cfg.DocuSignAuthBaseURL)
	overlay("DOCUSIGN_API_BASE_URL", &cfg.DocuSignAPIBaseURL)
	overlay("DOCUSIGN_TEMPLATE_ID", &cfg.DocuSignTemplateID)
	overlay("SESSION_SECRET", &cfg.SessionSecret)
	overlay("CONTINUE_URL", &cfg.ContinueURL)
	overlay("REDIS_ADDR", &cfg.RedisAddr)

	cfg.PublicBaseURL = strings.TrimSuffix(cfg.PublicBaseURL, "/")
}
