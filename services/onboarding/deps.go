package onboarding

import (
	"context"
	"net/http"

	"github.com/MarcGrol/ndaonboarding/services/docusign/docusignclient"
)

//go:generate mockgen -source=deps.go -package onboarding -destination deps_mock.go CustomerEmailResolver EnvelopeOrchestrator AuthReader

type CustomerEmailResolver interface {
	GetCustomerEmail(c context.Context, sessionID string) (string, error)
}

type EnvelopeOrchestrator interface {
	AuthorizationURL(c context.Context, origin string) (string, error)
	CreateEnvelopeAndSigningURL(c context.Context, auth docusignclient.AuthData, origin string, email string, name string) (string, error)
}

type AuthReader interface {
	Load(c context.Context, r *http.Request) (docusignclient.AuthData, bool, error)
}
