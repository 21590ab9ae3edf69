package docusignclient

import "fmt"

const (
	signerRoleName = "Signer"
	clientUserID   = "1000"
)

type TokenData struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type Account struct {
	AccountID   string `json:"account_id"`
	IsDefault   bool   `json:"is_default"`
	AccountName string `json:"account_name"`
	BaseURI     string `json:"base_uri"`
}

type UserInfo struct {
	Accounts []Account `json:"accounts"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Sub      string    `json:"sub"`
}

// DefaultAccount returns the account flagged as default, or the first one.
func (u UserInfo) DefaultAccount() (Account, bool) {
	for _, a := range u.Accounts {
		if a.IsDefault {
			return a, true
		}
	}
	if len(u.Accounts) > 0 {
		return u.Accounts[0], true
	}
	return Account{}, false
}

// AuthData is everything needed to act on behalf of an authorized signer.
type AuthData struct {
	TokenData TokenData `json:"tokenData"`
	UserInfo  UserInfo  `json:"userInfo"`
}

type Signer struct {
	Email string
	Name  string
}

type templateRole struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	RoleName string `json:"roleName"`
}

type envelopeDefinition struct {
	TemplateID    string         `json:"templateId"`
	TemplateRoles []templateRole `json:"templateRoles"`
	Status        string         `json:"status"`
}

type EnvelopeSummary struct {
	EnvelopeID     string `json:"envelopeId"`
	URI            string `json:"uri"`
	StatusDateTime string `json:"statusDateTime"`
	Status         string `json:"status"`
}

type recipientViewRequest struct {
	ReturnURL            string `json:"returnUrl"`
	AuthenticationMethod string `json:"authenticationMethod"`
	Email                string `json:"email"`
	UserName             string `json:"userName"`
	ClientUserID         string `json:"clientUserId"`
}

type RecipientView struct {
	URL string `json:"url"`
}

type restError struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// ProviderError is a rejection reported by DocuSign.
type ProviderError struct {
	Operation   string
	HTTPStatus  int
	ErrorCode   string
	Description string
}

func (e *ProviderError) Error() string {
	detail := e.Description
	if detail == "" {
		detail = "Unknown error"
	}
	return fmt.Sprintf("Failed to %s: %s", e.Operation, detail)
}
