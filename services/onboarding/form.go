package onboarding

import (
	"fmt"
	"net/url"
	"strings"

	formcodec "github.com/go-playground/form/v4"
)

// carriedState is the part of State the browser hands back on every request
type carriedState struct {
	CustomerEmail string `form:"customerEmail"`
	CustomerName  string `form:"customerName"`
	DocuSignEmail string `form:"docuSignEmail"`
}

// stepForm is what a step form posts: the carried state plus the value entered in this step
type stepForm struct {
	CustomerEmail string `form:"customerEmail"`
	CustomerName  string `form:"customerName"`
	DocuSignEmail string `form:"docuSignEmail"`
	Email         string `form:"email"`
	Name          string `form:"name"`
	SignerEmail   string `form:"docusign_email"`
}

func (f stepForm) state(step Step) State {
	return State{
		Step:          step,
		CustomerEmail: f.CustomerEmail,
		CustomerName:  f.CustomerName,
		DocuSignEmail: f.DocuSignEmail,
	}
}

func carriedFromValues(values url.Values) (carriedState, error) {
	carried := carriedState{}
	err := formcodec.NewDecoder().Decode(&carried, values)
	if err != nil {
		return carried, fmt.Errorf("error decoding form: %s", err)
	}
	return carried.trimmed(), nil
}

func stepFormFromValues(values url.Values) (stepForm, error) {
	f := stepForm{}
	err := formcodec.NewDecoder().Decode(&f, values)
	if err != nil {
		return f, fmt.Errorf("error decoding form: %s", err)
	}
	f.CustomerEmail = strings.TrimSpace(f.CustomerEmail)
	f.CustomerName = strings.TrimSpace(f.CustomerName)
	f.DocuSignEmail = strings.TrimSpace(f.DocuSignEmail)
	f.Email = strings.TrimSpace(f.Email)
	f.Name = strings.TrimSpace(f.Name)
	f.SignerEmail = strings.TrimSpace(f.SignerEmail)
	return f, nil
}

func (c carriedState) trimmed() carriedState {
	return carriedState{
		CustomerEmail: strings.TrimSpace(c.CustomerEmail),
		CustomerName:  strings.TrimSpace(c.CustomerName),
		DocuSignEmail: strings.TrimSpace(c.DocuSignEmail),
	}
}

func (s State) carried() carriedState {
	return carriedState{
		CustomerEmail: s.CustomerEmail,
		CustomerName:  s.CustomerName,
		DocuSignEmail: s.DocuSignEmail,
	}
}

// toForm returns the hidden fields that carry the state to the next request
func (c carriedState) toForm() (url.Values, error) {
	values, err := formcodec.NewEncoder().Encode(c)
	if err != nil {
		return nil, fmt.Errorf("error encoding form: %s", err)
	}
	for key, value := range values {
		if len(value) == 0 || value[0] == "" {
			delete(values, key)
		}
	}
	return values, nil
}
