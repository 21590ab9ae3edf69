package docusign

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MarcGrol/ndaonboarding/services/docusign/docusignclient"
)

const (
	MessageExpiredCode        = "Invalid or expired authorization code"
	MessageInvalidCredentials = "Invalid DocuSign API credentials"
	MessageGenericFailure     = "Failed to authenticate with DocuSign"
)

// authorizationError is the user-facing outcome of a failed authorization.
type authorizationError struct {
	httpStatus int
	message    string
	cause      error
}

func (e authorizationError) Error() string {
	return e.message
}

func (e authorizationError) GetHTTPErrorCode() int {
	return e.httpStatus
}

func (e authorizationError) Unwrap() error {
	return e.cause
}

func classifyAuthorizationError(err error) authorizationError {
	providerErr := &docusignclient.ProviderError{}
	if errors.As(err, &providerErr) {
		switch {
		case providerErr.ErrorCode == "invalid_grant" || strings.Contains(providerErr.Error(), "invalid_grant"):
			return authorizationError{httpStatus: http.StatusBadRequest, message: MessageExpiredCode, cause: err}
		case providerErr.ErrorCode == "invalid_client" || strings.Contains(providerErr.Error(), "invalid_client"):
			return authorizationError{httpStatus: http.StatusUnauthorized, message: MessageInvalidCredentials, cause: err}
		default:
			return authorizationError{httpStatus: http.StatusInternalServerError, message: providerErr.Error(), cause: err}
		}
	}
	return authorizationError{httpStatus: http.StatusInternalServerError, message: MessageGenericFailure, cause: err}
}
