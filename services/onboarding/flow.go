package onboarding

import (
	"fmt"
	"strings"

	"github.com/MarcGrol/ndaonboarding/lib/myerrors"
)

type Step string

const (
	StepLoading       Step = "loading"
	StepEmail         Step = "email"
	StepName          Step = "name"
	StepDocuSignEmail Step = "docusign_email"
	StepDocuSignAuth  Step = "docusign_auth"
	StepNDA           Step = "nda"
	StepComplete      Step = "complete"
)

// State is everything the onboarding flow knows about the customer. It is never
// stored: the browser carries it between requests and the authorization is looked
// up again on every request.
type State struct {
	Step             Step
	CustomerEmail    string
	CustomerName     string
	DocuSignEmail    string
	SignerAuthorized bool
}

func (s State) readyForSigning() bool {
	return s.DocuSignEmail != "" && s.CustomerName != ""
}

type Notice struct {
	Title   string
	Message string
}

type Transition struct {
	State  State
	Notice *Notice
}

type Event interface {
	name() string
}

type AuthorizationErrorReceived struct{ Message string }
type AuthorizationGranted struct{ SignerEmail string }
type CheckoutResolved struct{ Email string }
type CheckoutLookupFailed struct{}
type CheckoutUnavailable struct{}
type EmailSubmitted struct{ Email string }
type NameSubmitted struct{ Name string }
type DocuSignEmailSubmitted struct{ Email string }
type AuthorizationStartFailed struct{}
type AuthorizationMissing struct{}
type SigningFailed struct{}
type SigningCompleted struct{}

func (AuthorizationErrorReceived) name() string { return "AuthorizationErrorReceived" }
func (AuthorizationGranted) name() string       { return "AuthorizationGranted" }
func (CheckoutResolved) name() string           { return "CheckoutResolved" }
func (CheckoutLookupFailed) name() string       { return "CheckoutLookupFailed" }
func (CheckoutUnavailable) name() string        { return "CheckoutUnavailable" }
func (EmailSubmitted) name() string             { return "EmailSubmitted" }
func (NameSubmitted) name() string              { return "NameSubmitted" }
func (DocuSignEmailSubmitted) name() string     { return "DocuSignEmailSubmitted" }
func (AuthorizationStartFailed) name() string   { return "AuthorizationStartFailed" }
func (AuthorizationMissing) name() string       { return "AuthorizationMissing" }
func (SigningFailed) name() string              { return "SigningFailed" }
func (SigningCompleted) name() string           { return "SigningCompleted" }

// Apply moves the flow exactly one step forward. Events that do not fit the
// current step, or that lack a required value, are rejected and leave the
// state untouched.
func Apply(state State, event Event) (Transition, error) {
	next := state

	switch state.Step {
	case StepLoading:
		switch e := event.(type) {
		case AuthorizationErrorReceived:
			next.Step = StepDocuSignAuth
			return Transition{State: next, Notice: authorizationNotice(e.Message)}, nil

		case AuthorizationGranted:
			if strings.TrimSpace(e.SignerEmail) == "" {
				return rejected(state, event, "signer email")
			}
			next.DocuSignEmail = e.SignerEmail
			next.SignerAuthorized = true
			next.Step = StepName
			if next.readyForSigning() {
				next.Step = StepNDA
			}
			return Transition{State: next}, nil

		case CheckoutResolved:
			if e.Email == "" {
				next.Step = StepEmail
				return Transition{State: next}, nil
			}
			next.CustomerEmail = e.Email
			next.DocuSignEmail = e.Email
			next.Step = StepName
			return Transition{State: next}, nil

		case CheckoutLookupFailed:
			next.Step = StepEmail
			return Transition{State: next, Notice: &noticeLookupFailed}, nil

		case CheckoutUnavailable:
			next.Step = StepEmail
			return Transition{State: next}, nil
		}

	case StepEmail:
		if e, ok := event.(EmailSubmitted); ok {
			if strings.TrimSpace(e.Email) == "" {
				return rejected(state, event, "email")
			}
			next.CustomerEmail = e.Email
			next.DocuSignEmail = e.Email
			next.Step = StepName
			return Transition{State: next}, nil
		}

	case StepName:
		if e, ok := event.(NameSubmitted); ok {
			if strings.TrimSpace(e.Name) == "" {
				return rejected(state, event, "name")
			}
			next.CustomerName = e.Name
			next.Step = StepDocuSignEmail
			if next.SignerAuthorized && next.readyForSigning() {
				next.Step = StepNDA
			}
			return Transition{State: next}, nil
		}

	case StepDocuSignEmail:
		if e, ok := event.(DocuSignEmailSubmitted); ok {
			if strings.TrimSpace(e.Email) == "" {
				return rejected(state, event, "signer email")
			}
			next.DocuSignEmail = e.Email
			next.Step = StepDocuSignAuth
			return Transition{State: next}, nil
		}

	case StepDocuSignAuth:
		if _, ok := event.(AuthorizationStartFailed); ok {
			return Transition{State: next, Notice: &noticeAuthorizationStartFailed}, nil
		}

	case StepNDA:
		switch event.(type) {
		case AuthorizationMissing:
			next.SignerAuthorized = false
			next.Step = StepDocuSignAuth
			return Transition{State: next, Notice: &noticeAuthorizationRequired}, nil

		case SigningFailed:
			return Transition{State: next, Notice: &noticeSigningFailed}, nil

		case SigningCompleted:
			if !state.readyForSigning() {
				return Transition{State: state, Notice: &noticeIncomplete},
					myerrors.NewInvalidInputError(fmt.Errorf("customer information is incomplete"))
			}
			next.Step = StepComplete
			return Transition{State: next}, nil
		}
	}

	return Transition{State: state}, myerrors.NewInvalidInputError(fmt.Errorf("event %s not accepted in step %s", event.name(), state.Step))
}

func rejected(state State, event Event, field string) (Transition, error) {
	return Transition{State: state}, myerrors.NewInvalidInputError(fmt.Errorf("%s requires a non-empty %s", event.name(), field))
}
