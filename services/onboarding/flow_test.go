package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	testCases := []struct {
		name           string
		state          State
		event          Event
		expectedState  State
		expectedNotice string
		expectError    bool
	}{
		{
			name:           "expired authorization code",
			state:          State{Step: StepLoading},
			event:          AuthorizationErrorReceived{Message: "Invalid or expired authorization code"},
			expectedState:  State{Step: StepDocuSignAuth},
			expectedNotice: "The DocuSign authorization code has expired. Please try authenticating again.",
		},
		{
			name:           "invalid integration credentials",
			state:          State{Step: StepLoading},
			event:          AuthorizationErrorReceived{Message: "Invalid DocuSign API credentials"},
			expectedState:  State{Step: StepDocuSignAuth},
			expectedNotice: "There's an issue with our DocuSign integration. Please contact support.",
		},
		{
			name:           "unexpected authorization error",
			state:          State{Step: StepLoading},
			event:          AuthorizationErrorReceived{Message: "Failed to authenticate with DocuSign"},
			expectedState:  State{Step: StepDocuSignAuth},
			expectedNotice: "An unexpected error occurred during DocuSign authentication. Please try again.",
		},
		{
			name:          "authorized without name",
			state:         State{Step: StepLoading},
			event:         AuthorizationGranted{SignerEmail: "jane@example.com"},
			expectedState: State{Step: StepName, DocuSignEmail: "jane@example.com", SignerAuthorized: true},
		},
		{
			name:          "authorized with name",
			state:         State{Step: StepLoading, CustomerName: "Jane Doe"},
			event:         AuthorizationGranted{SignerEmail: "jane@example.com"},
			expectedState: State{Step: StepNDA, CustomerName: "Jane Doe", DocuSignEmail: "jane@example.com", SignerAuthorized: true},
		},
		{
			name:          "authorized without signer email",
			state:         State{Step: StepLoading, CustomerName: "Jane Doe"},
			event:         AuthorizationGranted{},
			expectedState: State{Step: StepLoading, CustomerName: "Jane Doe"},
			expectError:   true,
		},
		{
			name:          "checkout email found",
			state:         State{Step: StepLoading},
			event:         CheckoutResolved{Email: "buyer@example.com"},
			expectedState: State{Step: StepName, CustomerEmail: "buyer@example.com", DocuSignEmail: "buyer@example.com"},
		},
		{
			name:          "checkout without email",
			state:         State{Step: StepLoading},
			event:         CheckoutResolved{},
			expectedState: State{Step: StepEmail},
		},
		{
			name:           "checkout lookup failed",
			state:          State{Step: StepLoading},
			event:          CheckoutLookupFailed{},
			expectedState:  State{Step: StepEmail},
			expectedNotice: "Failed to retrieve your information. Please contact support.",
		},
		{
			name:          "no checkout",
			state:         State{Step: StepLoading},
			event:         CheckoutUnavailable{},
			expectedState: State{Step: StepEmail},
		},
		{
			name:          "email entered",
			state:         State{Step: StepEmail},
			event:         EmailSubmitted{Email: "buyer@example.com"},
			expectedState: State{Step: StepName, CustomerEmail: "buyer@example.com", DocuSignEmail: "buyer@example.com"},
		},
		{
			name:          "empty email",
			state:         State{Step: StepEmail},
			event:         EmailSubmitted{Email: "  "},
			expectedState: State{Step: StepEmail},
			expectError:   true,
		},
		{
			name:          "name entered",
			state:         State{Step: StepName, CustomerEmail: "buyer@example.com", DocuSignEmail: "buyer@example.com"},
			event:         NameSubmitted{Name: "John Smith"},
			expectedState: State{Step: StepDocuSignEmail, CustomerEmail: "buyer@example.com", CustomerName: "John Smith", DocuSignEmail: "buyer@example.com"},
		},
		{
			name:          "name entered when already authorized",
			state:         State{Step: StepName, DocuSignEmail: "jane@example.com", SignerAuthorized: true},
			event:         NameSubmitted{Name: "Jane Doe"},
			expectedState: State{Step: StepNDA, CustomerName: "Jane Doe", DocuSignEmail: "jane@example.com", SignerAuthorized: true},
		},
		{
			name:          "empty name",
			state:         State{Step: StepName, DocuSignEmail: "jane@example.com", SignerAuthorized: true},
			event:         NameSubmitted{},
			expectedState: State{Step: StepName, DocuSignEmail: "jane@example.com", SignerAuthorized: true},
			expectError:   true,
		},
		{
			name:          "signer email entered",
			state:         State{Step: StepDocuSignEmail, CustomerName: "John Smith"},
			event:         DocuSignEmailSubmitted{Email: "john@example.com"},
			expectedState: State{Step: StepDocuSignAuth, CustomerName: "John Smith", DocuSignEmail: "john@example.com"},
		},
		{
			name:          "empty signer email",
			state:         State{Step: StepDocuSignEmail, CustomerName: "John Smith"},
			event:         DocuSignEmailSubmitted{},
			expectedState: State{Step: StepDocuSignEmail, CustomerName: "John Smith"},
			expectError:   true,
		},
		{
			name:           "authorization could not start",
			state:          State{Step: StepDocuSignAuth},
			event:          AuthorizationStartFailed{},
			expectedState:  State{Step: StepDocuSignAuth},
			expectedNotice: "Failed to initiate DocuSign authentication. Please try again.",
		},
		{
			name:           "signing without authorization",
			state:          State{Step: StepNDA, CustomerName: "Jane Doe", DocuSignEmail: "jane@example.com", SignerAuthorized: true},
			event:          AuthorizationMissing{},
			expectedState:  State{Step: StepDocuSignAuth, CustomerName: "Jane Doe", DocuSignEmail: "jane@example.com"},
			expectedNotice: "DocuSign authentication required. Please authenticate with DocuSign.",
		},
		{
			name:           "signing failed",
			state:          State{Step: StepNDA, CustomerName: "Jane Doe", DocuSignEmail: "jane@example.com", SignerAuthorized: true},
			event:          SigningFailed{},
			expectedState:  State{Step: StepNDA, CustomerName: "Jane Doe", DocuSignEmail: "jane@example.com", SignerAuthorized: true},
			expectedNotice: "Failed to create NDA. Please try again later.",
		},
		{
			name:          "signing started",
			state:         State{Step: StepNDA, CustomerName: "Jane Doe", DocuSignEmail: "jane@example.com", SignerAuthorized: true},
			event:         SigningCompleted{},
			expectedState: State{Step: StepComplete, CustomerName: "Jane Doe", DocuSignEmail: "jane@example.com", SignerAuthorized: true},
		},
		{
			name:           "signing with incomplete information",
			state:          State{Step: StepNDA, DocuSignEmail: "jane@example.com", SignerAuthorized: true},
			event:          SigningCompleted{},
			expectedState:  State{Step: StepNDA, DocuSignEmail: "jane@example.com", SignerAuthorized: true},
			expectedNotice: "Customer information is incomplete. Please contact support.",
			expectError:    true,
		},
		{
			name:          "no going back",
			state:         State{Step: StepDocuSignAuth, CustomerName: "John Smith"},
			event:         NameSubmitted{Name: "Someone Else"},
			expectedState: State{Step: StepDocuSignAuth, CustomerName: "John Smith"},
			expectError:   true,
		},
		{
			name:          "no skipping ahead",
			state:         State{Step: StepEmail},
			event:         SigningCompleted{},
			expectedState: State{Step: StepEmail},
			expectError:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			transition, err := Apply(tc.state, tc.event)

			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expectedState, transition.State)
			if tc.expectedNotice == "" {
				assert.Nil(t, transition.Notice)
			} else if assert.NotNil(t, transition.Notice) {
				assert.Equal(t, tc.expectedNotice, transition.Notice.Message)
			}

			if transition.State.Step == StepNDA {
				assert.NotEmpty(t, transition.State.DocuSignEmail)
				assert.NotEmpty(t, transition.State.CustomerName)
			}
		})
	}
}

func TestAuthorizationNoticeTitle(t *testing.T) {
	assert.Equal(t, "Authentication Error", authorizationNotice("anything").Title)
}
