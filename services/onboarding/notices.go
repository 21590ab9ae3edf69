package onboarding

import (
	"strings"

	"github.com/MarcGrol/ndaonboarding/services/docusign"
)

var (
	noticeLookupFailed = Notice{
		Title:   "Error",
		Message: "Failed to retrieve your information. Please contact support.",
	}
	noticeAuthorizationStartFailed = Notice{
		Title:   "Error",
		Message: "Failed to initiate DocuSign authentication. Please try again.",
	}
	noticeAuthorizationRequired = Notice{
		Title:   "Error",
		Message: "DocuSign authentication required. Please authenticate with DocuSign.",
	}
	noticeSigningFailed = Notice{
		Title:   "Error",
		Message: "Failed to create NDA. Please try again later.",
	}
	noticeIncomplete = Notice{
		Title:   "Error",
		Message: "Customer information is incomplete. Please contact support.",
	}
)

// authorizationNotice turns the message of a failed authorization into advice for the customer
func authorizationNotice(message string) *Notice {
	notice := Notice{
		Title:   "Authentication Error",
		Message: "An unexpected error occurred during DocuSign authentication. Please try again.",
	}

	switch {
	case strings.Contains(message, docusign.MessageExpiredCode):
		notice.Message = "The DocuSign authorization code has expired. Please try authenticating again."
	case strings.Contains(message, docusign.MessageInvalidCredentials):
		notice.Message = "There's an issue with our DocuSign integration. Please contact support."
	}

	return &notice
}
