package myconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		value, found := env[name]
		return value, found
	}
}

func TestConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "price_1QUwhBC2L0rtj24uyhqiI83U", cfg.StripePriceID)
		assert.Equal(t, "https://account-d.docusign.com/oauth", cfg.DocuSignAuthBaseURL)
		assert.Equal(t, "https://demo.docusign.net/restapi", cfg.DocuSignAPIBaseURL)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg, lookupFrom(map[string]string{
			"PORT":                     "9090",
			"APP_ENV":                  "production",
			"PUBLIC_BASE_URL":          "https://nda.example.com/",
			"STRIPE_SECRET_KEY":        "sk_test_123",
			"STRIPE_PRICE_ID":          "",
			"DOCUSIGN_INTEGRATION_KEY": "ik",
			"DOCUSIGN_SECRET_KEY":      "sk",
		}))

		assert.Equal(t, "9090", cfg.Port)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "https://nda.example.com", cfg.PublicBaseURL)
		assert.Equal(t, "sk_test_123", cfg.StripeSecretKey)
		assert.Equal(t, "price_1QUwhBC2L0rtj24uyhqiI83U", cfg.StripePriceID)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Missing credentials", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg, lookupFrom(map[string]string{
			"DOCUSIGN_INTEGRATION_KEY": "ik",
		}))

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Equal(t, "missing required configuration: STRIPE_SECRET_KEY, DOCUSIGN_SECRET_KEY", err.Error())
	})
}
