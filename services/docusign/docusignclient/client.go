package docusignclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"

	"github.com/MarcGrol/ndaonboarding/lib/myhttpclient"
	"github.com/MarcGrol/ndaonboarding/lib/mylog"
)

//go:generate mockgen -source=client.go -package docusignclient -destination client_mock.go Client
type Client interface {
	ComposeAuthURL(redirectURI string) string
	GetAccessToken(c context.Context, code string, redirectURI string) (TokenData, error)
	GetUserInfo(c context.Context, accessToken string) (UserInfo, error)
	CreateEnvelope(c context.Context, accessToken string, accountID string, templateID string, signer Signer) (EnvelopeSummary, error)
	CreateRecipientView(c context.Context, accessToken string, accountID string, envelopeID string, signer Signer, returnURL string) (RecipientView, error)
}

type Config struct {
	IntegrationKey string
	SecretKey      string
	AuthBaseURL    string
	APIBaseURL     string
}

type client struct {
	config     Config
	httpClient *http.Client
	sender     myhttpclient.HTTPSender
	logger     mylog.Logger
}

// New returns a client for the DocuSign account server and eSignature REST api.
// Requests are sent with the given http client, or a default one when nil.
func New(config Config, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client{
		config:     config,
		httpClient: httpClient,
		sender:     myhttpclient.NewJSONHTTPClient(httpClient),
		logger:     mylog.New("docusignclient"),
	}
}

func (dc *client) oauthConfig(redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     dc.config.IntegrationKey,
		ClientSecret: dc.config.SecretKey,
		Endpoint: oauth2.Endpoint{
			AuthURL:   dc.config.AuthBaseURL + "/auth",
			TokenURL:  dc.config.AuthBaseURL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
		RedirectURL: redirectURI,
		Scopes:      []string{"signature"},
	}
}

func (dc *client) ComposeAuthURL(redirectURI string) string {
	return dc.oauthConfig(redirectURI).AuthCodeURL("")
}

func (dc *client) GetAccessToken(c context.Context, code string, redirectURI string) (TokenData, error) {
	c = context.WithValue(c, oauth2.HTTPClient, dc.httpClient)

	token, err := dc.oauthConfig(redirectURI).Exchange(c, code)
	if err != nil {
		retrieveErr := &oauth2.RetrieveError{}
		if errors.As(err, &retrieveErr) {
			status := 0
			if retrieveErr.Response != nil {
				status = retrieveErr.Response.StatusCode
			}
			return TokenData{}, &ProviderError{
				Operation:   "get DocuSign access token",
				HTTPStatus:  status,
				ErrorCode:   retrieveErr.ErrorCode,
				Description: retrieveErr.ErrorDescription,
			}
		}
		return TokenData{}, fmt.Errorf("error exchanging authorization code: %s", err)
	}

	return TokenData{
		AccessToken: token.AccessToken,
		ExpiresIn:   token.ExpiresIn,
	}, nil
}

func (dc *client) GetUserInfo(c context.Context, accessToken string) (UserInfo, error) {
	status, body, err := dc.sender.Send(c, http.MethodGet, dc.config.AuthBaseURL+"/userinfo", accessToken, nil)
	if err != nil {
		return UserInfo{}, err
	}
	if status < 200 || status >= 300 {
		return UserInfo{}, authError("get DocuSign user info", status, body)
	}

	userInfo := UserInfo{}
	err = json.Unmarshal(body, &userInfo)
	if err != nil {
		return UserInfo{}, fmt.Errorf("error parsing user info: %s", err)
	}
	return userInfo, nil
}

func (dc *client) CreateEnvelope(c context.Context, accessToken string, accountID string, templateID string, signer Signer) (EnvelopeSummary, error) {
	request := envelopeDefinition{
		TemplateID: templateID,
		TemplateRoles: []templateRole{
			{
				Email:    signer.Email,
				Name:     signer.Name,
				RoleName: signerRoleName,
			},
		},
		Status: "sent",
	}

	envelopesURL := fmt.Sprintf("%s/v2.1/accounts/%s/envelopes", dc.config.APIBaseURL, url.PathEscape(accountID))

	summary := EnvelopeSummary{}
	err := dc.post(c, "create DocuSign envelope", envelopesURL, accessToken, request, &summary)
	if err != nil {
		return EnvelopeSummary{}, err
	}
	dc.logger.Log(c, summary.EnvelopeID, mylog.SeverityInfo, "Created envelope %s from template %s", summary.EnvelopeID, templateID)

	return summary, nil
}

func (dc *client) CreateRecipientView(c context.Context, accessToken string, accountID string, envelopeID string, signer Signer, returnURL string) (RecipientView, error) {
	request := recipientViewRequest{
		ReturnURL:            returnURL,
		AuthenticationMethod: "none",
		Email:                signer.Email,
		UserName:             signer.Name,
		ClientUserID:         clientUserID,
	}

	viewURL := fmt.Sprintf("%s/v2.1/accounts/%s/envelopes/%s/views/recipient", dc.config.APIBaseURL, url.PathEscape(accountID), url.PathEscape(envelopeID))

	view := RecipientView{}
	err := dc.post(c, "get DocuSign signing URL", viewURL, accessToken, request, &view)
	if err != nil {
		return RecipientView{}, err
	}
	return view, nil
}

func (dc *client) post(c context.Context, operation string, endpoint string, accessToken string, request any, response any) error {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("error marshalling request: %s", err)
	}

	status, body, err := dc.sender.Send(c, http.MethodPost, endpoint, accessToken, requestBody)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		restErr := restError{}
		_ = json.Unmarshal(body, &restErr)
		return &ProviderError{
			Operation:   operation,
			HTTPStatus:  status,
			ErrorCode:   restErr.ErrorCode,
			Description: restErr.Message,
		}
	}

	err = json.Unmarshal(body, response)
	if err != nil {
		return fmt.Errorf("error parsing response of %s: %s", endpoint, err)
	}
	return nil
}

func authError(operation string, status int, body []byte) error {
	errorData := struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}{}
	_ = json.Unmarshal(body, &errorData)

	return &ProviderError{
		Operation:   operation,
		HTTPStatus:  status,
		ErrorCode:   errorData.Error,
		Description: errorData.ErrorDescription,
	}
}
