package docusign

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/ndaonboarding/lib/myerrors"
	"github.com/MarcGrol/ndaonboarding/services/docusign/docusignclient"
)

func TestClassifyAuthorizationError(t *testing.T) {
	testCases := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "expired code",
			err:             &docusignclient.ProviderError{Operation: "get DocuSign access token", ErrorCode: "invalid_grant"},
			expectedStatus:  400,
			expectedMessage: "Invalid or expired authorization code",
		},
		{
			name:            "wrong credentials",
			err:             fmt.Errorf("wrapped: %w", &docusignclient.ProviderError{Operation: "get DocuSign access token", ErrorCode: "invalid_client"}),
			expectedStatus:  401,
			expectedMessage: "Invalid DocuSign API credentials",
		},
		{
			name:            "other provider error",
			err:             &docusignclient.ProviderError{Operation: "get DocuSign user info", ErrorCode: "invalid_request", Description: "The access token is invalid"},
			expectedStatus:  500,
			expectedMessage: "Failed to get DocuSign user info: The access token is invalid",
		},
		{
			name:            "network error",
			err:             fmt.Errorf("connection refused"),
			expectedStatus:  500,
			expectedMessage: "Failed to authenticate with DocuSign",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			classified := classifyAuthorizationError(tc.err)
			assert.Equal(t, tc.expectedStatus, myerrors.GetHTTPStatus(classified))
			assert.Equal(t, tc.expectedMessage, classified.Error())
			assert.ErrorIs(t, classified, tc.err)
		})
	}
}
