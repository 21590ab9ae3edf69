package onboarding

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/ndaonboarding/services/docusign/docusignclient"
)

var (
	authData = docusignclient.AuthData{
		TokenData: docusignclient.TokenData{
			AccessToken: "my-access-token",
			ExpiresIn:   28800,
		},
		UserInfo: docusignclient.UserInfo{
			Accounts: []docusignclient.Account{{AccountID: "acc-1", IsDefault: true}},
			Name:     "Jane Doe",
			Email:    "jane@example.com",
		},
	}
)

func TestSuccessPage(t *testing.T) {

	t.Run("Checkout email prefills both emails", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, resolver, _, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(docusignclient.AuthData{}, false, nil)
		resolver.EXPECT().GetCustomerEmail(gomock.Any(), "cs_test_1").Return("buyer@example.com", nil)

		// when
		response := get(t, router, "/success?session_id=cs_test_1")

		// then
		assert.Equal(t, 200, response.Code)
		body := response.Body.String()
		assert.Contains(t, body, "Your Name")
		assert.Contains(t, body, `action="/success/name"`)
		assert.Contains(t, body, `name="customerEmail" value="buyer@example.com"`)
		assert.Contains(t, body, `name="docuSignEmail" value="buyer@example.com"`)
	})

	t.Run("Authorized signer with name goes straight to NDA", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, resolver, _, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(authData, true, nil)
		resolver.EXPECT().GetCustomerEmail(gomock.Any(), gomock.Any()).Times(0)

		// when
		response := get(t, router, "/success?session_id=cs_test_1&customerName=Jane+Doe")

		// then
		assert.Equal(t, 200, response.Code)
		body := response.Body.String()
		assert.Contains(t, body, "One Last Step!")
		assert.Contains(t, body, `action="/success/nda"`)
		assert.Contains(t, body, `name="docuSignEmail" value="jane@example.com"`)
		assert.Contains(t, body, `name="customerName" value="Jane Doe"`)
	})

	t.Run("Authorized signer without name is asked for name", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, resolver, _, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(authData, true, nil)
		resolver.EXPECT().GetCustomerEmail(gomock.Any(), gomock.Any()).Times(0)

		// when
		response := get(t, router, "/success")

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "Your Name")
	})

	t.Run("Authorization error returns to authentication step", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, resolver, _, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(docusignclient.AuthData{}, false, nil)
		resolver.EXPECT().GetCustomerEmail(gomock.Any(), gomock.Any()).Times(0)

		// when
		response := get(t, router, "/success?docusign_error=Invalid+or+expired+authorization+code")

		// then
		assert.Equal(t, 200, response.Code)
		body := response.Body.String()
		assert.Contains(t, body, "DocuSign Authentication")
		assert.Contains(t, body, "Authentication Error")
		assert.Contains(t, body, "The DocuSign authorization code has expired. Please try authenticating again.")
	})

	t.Run("Failed checkout lookup falls back to email entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, resolver, _, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(docusignclient.AuthData{}, false, nil)
		resolver.EXPECT().GetCustomerEmail(gomock.Any(), "cs_unknown").Return("", fmt.Errorf("no such session"))

		// when
		response := get(t, router, "/success?session_id=cs_unknown")

		// then
		assert.Equal(t, 200, response.Code)
		body := response.Body.String()
		assert.Contains(t, body, "Confirm Your Email")
		assert.Contains(t, body, "Failed to retrieve your information. Please contact support.")
	})

	t.Run("Checkout without email asks for email without notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, resolver, _, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(docusignclient.AuthData{}, false, nil)
		resolver.EXPECT().GetCustomerEmail(gomock.Any(), "cs_test_1").Return("", nil)

		// when
		response := get(t, router, "/success?session_id=cs_test_1")

		// then
		body := response.Body.String()
		assert.Contains(t, body, "Confirm Your Email")
		assert.NotContains(t, body, `role="alert"`)
	})

	t.Run("Without anything asks for email", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, _, _, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(docusignclient.AuthData{}, false, fmt.Errorf("vault unavailable"))

		// when
		response := get(t, router, "/success")

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `action="/success/email"`)
	})
}

func TestStepActions(t *testing.T) {

	t.Run("Email submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, _, _, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(docusignclient.AuthData{}, false, nil)

		// when
		response := post(t, router, "email", url.Values{"email": {"buyer@example.com"}})

		// then
		assert.Equal(t, 200, response.Code)
		body := response.Body.String()
		assert.Contains(t, body, `action="/success/name"`)
		assert.Contains(t, body, `name="customerEmail" value="buyer@example.com"`)
	})

	t.Run("Empty name is rejected and never reaches DocuSign", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, _, orchestrator, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(authData, true, nil)
		orchestrator.EXPECT().CreateEnvelopeAndSigningURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		// when
		response := post(t, router, "name", url.Values{
			"docuSignEmail": {"jane@example.com"},
			"name":          {"   "},
		})

		// then
		assert.Equal(t, 400, response.Code)
		body := response.Body.String()
		assert.Contains(t, body, "Your Name")
		assert.Contains(t, body, `action="/success/name"`)
	})

	t.Run("Name submitted before authorization", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, _, _, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(docusignclient.AuthData{}, false, nil)

		// when
		response := post(t, router, "name", url.Values{
			"customerEmail": {"buyer@example.com"},
			"docuSignEmail": {"buyer@example.com"},
			"name":          {"John Smith"},
		})

		// then
		assert.Equal(t, 200, response.Code)
		body := response.Body.String()
		assert.Contains(t, body, "DocuSign Email")
		assert.Contains(t, body, `name="docusign_email" required value="buyer@example.com"`)
		assert.Contains(t, body, `name="customerName" value="John Smith"`)
	})

	t.Run("Name submitted after authorization", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, _, _, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(authData, true, nil)

		// when
		response := post(t, router, "name", url.Values{
			"docuSignEmail": {"jane@example.com"},
			"name":          {"Jane Doe"},
		})

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "One Last Step!")
	})

	t.Run("Signer email submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, _, _, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(docusignclient.AuthData{}, false, nil)

		// when
		response := post(t, router, "docusign-email", url.Values{
			"customerName":   {"John Smith"},
			"docusign_email": {"john@example.com"},
		})

		// then
		assert.Equal(t, 200, response.Code)
		body := response.Body.String()
		assert.Contains(t, body, "Authenticate with DocuSign")
		assert.Contains(t, body, `name="docuSignEmail" value="john@example.com"`)
	})

	t.Run("Start authorization", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, _, orchestrator, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(docusignclient.AuthData{}, false, nil)
		orchestrator.EXPECT().AuthorizationURL(gomock.Any(), "http://localhost:8888").Return("https://account-d.docusign.com/oauth/auth?client_id=abc", nil)

		// when
		response := post(t, router, "docusign-auth", url.Values{"customerName": {"John Smith"}})

		// then
		assert.Equal(t, 303, response.Code)
		assert.Equal(t, "https://account-d.docusign.com/oauth/auth?client_id=abc", response.Header().Get("Location"))
	})

	t.Run("Start authorization fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, _, orchestrator, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(docusignclient.AuthData{}, false, nil)
		orchestrator.EXPECT().AuthorizationURL(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("misconfigured"))

		// when
		response := post(t, router, "docusign-auth", url.Values{})

		// then
		assert.Equal(t, 200, response.Code)
		body := response.Body.String()
		assert.Contains(t, body, "Authenticate with DocuSign")
		assert.Contains(t, body, "Failed to initiate DocuSign authentication. Please try again.")
	})

	t.Run("Sign NDA", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, _, orchestrator, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(authData, true, nil)
		orchestrator.EXPECT().CreateEnvelopeAndSigningURL(gomock.Any(), authData, "http://localhost:8888", "jane@example.com", "Jane Doe").
			Return("https://demo.docusign.net/Signing/abc", nil)

		// when
		response := post(t, router, "nda", url.Values{
			"customerName":  {"Jane Doe"},
			"docuSignEmail": {"jane@example.com"},
		})

		// then
		assert.Equal(t, 303, response.Code)
		assert.Equal(t, "https://demo.docusign.net/Signing/abc", response.Header().Get("Location"))
	})

	t.Run("Sign NDA without authorization", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, _, orchestrator, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(docusignclient.AuthData{}, false, nil)
		orchestrator.EXPECT().CreateEnvelopeAndSigningURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		// when
		response := post(t, router, "nda", url.Values{
			"customerName":  {"Jane Doe"},
			"docuSignEmail": {"jane@example.com"},
		})

		// then
		assert.Equal(t, 200, response.Code)
		body := response.Body.String()
		assert.Contains(t, body, "Authenticate with DocuSign")
		assert.Contains(t, body, "DocuSign authentication required")
	})

	t.Run("Sign NDA with incomplete information", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, _, orchestrator, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(authData, true, nil)
		orchestrator.EXPECT().CreateEnvelopeAndSigningURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		// when
		response := post(t, router, "nda", url.Values{
			"docuSignEmail": {"jane@example.com"},
		})

		// then
		assert.Equal(t, 400, response.Code)
		assert.Contains(t, response.Body.String(), "Customer information is incomplete. Please contact support.")
	})

	t.Run("Sign NDA rejected by DocuSign", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, _, orchestrator, authReader := setup(t, ctrl)

		// given
		authReader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(authData, true, nil)
		orchestrator.EXPECT().CreateEnvelopeAndSigningURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", fmt.Errorf("Failed to create DocuSign envelope: TEMPLATE_ID_INVALID"))

		// when
		response := post(t, router, "nda", url.Values{
			"customerName":  {"Jane Doe"},
			"docuSignEmail": {"jane@example.com"},
		})

		// then
		assert.Equal(t, 200, response.Code)
		body := response.Body.String()
		assert.Contains(t, body, "One Last Step!")
		assert.Contains(t, body, "Failed to create NDA. Please try again later.")
		assert.NotContains(t, body, "TEMPLATE_ID_INVALID")
	})

	t.Run("Unknown step", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, _, _, _ := setup(t, ctrl)

		// when
		response := post(t, router, "payment", url.Values{})

		// then
		assert.Equal(t, 404, response.Code)
	})
}

func TestCompletePage(t *testing.T) {
	ctrl := gomock.NewController(t)

	// setup
	router, _, _, _ := setup(t, ctrl)

	// when
	response := get(t, router, "/complete")

	// then
	assert.Equal(t, 200, response.Code)
	body := response.Body.String()
	assert.Contains(t, body, "NDA Signed Successfully!")
	assert.Contains(t, body, `href="https://www.skool.com/the-banking-vault"`)
}

func get(t *testing.T, router *mux.Router, path string) *httptest.ResponseRecorder {
	request, err := http.NewRequest(http.MethodGet, path, nil)
	assert.NoError(t, err)
	request.Host = "localhost:8888"
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func post(t *testing.T, router *mux.Router, step string, values url.Values) *httptest.ResponseRecorder {
	request, err := http.NewRequest(http.MethodPost, "/success/"+step, strings.NewReader(values.Encode()))
	assert.NoError(t, err)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Host = "localhost:8888"
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func setup(t *testing.T, ctrl *gomock.Controller) (*mux.Router, *MockCustomerEmailResolver, *MockEnvelopeOrchestrator, *MockAuthReader) {
	c := context.TODO()

	resolver := NewMockCustomerEmailResolver(ctrl)
	orchestrator := NewMockEnvelopeOrchestrator(ctrl)
	authReader := NewMockAuthReader(ctrl)

	sut := NewWebService(resolver, orchestrator, authReader, "https://www.skool.com/the-banking-vault")

	router := mux.NewRouter()
	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return router, resolver, orchestrator, authReader
}
