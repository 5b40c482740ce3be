package services

import (
	"context"
	"errors"
	"log"

	"autobot_site_go/models"
)

// LeadFormState is the lifecycle state of the contact form
type LeadFormState string

const (
	LeadFormIdle       LeadFormState = "idle"
	LeadFormSubmitting LeadFormState = "submitting"
	LeadFormSubmitted  LeadFormState = "submitted"
	LeadFormError      LeadFormState = "error"
)

// GenericSubmitError is shown for every remote failure. Transient and
// permanent failures are not distinguished.
const GenericSubmitError = "Something went wrong sending your message. Please try again."

// LeadForm holds the contact form values and its submission state
type LeadForm struct {
	Values      LeadInput
	State       LeadFormState
	Error       string
	FieldErrors map[string]string
}

// NewLeadForm returns an idle form with the given values
func NewLeadForm(values LeadInput) *LeadForm {
	return &LeadForm{Values: values, State: LeadFormIdle}
}

// Submit makes a single best-effort insertion attempt. On success the form
// moves to submitted and its fields are cleared; on any failure it moves to
// error and keeps the entered values for a retry. The stored lead is
// returned on success.
func (f *LeadForm) Submit(ctx context.Context, store LeadInserter, meta LeadMeta) (*models.Lead, error) {
	f.State = LeadFormSubmitting
	f.Error = ""
	f.FieldErrors = nil

	input := f.Values.Normalize()
	if err := input.Validate(); err != nil {
		f.fail(err)
		return nil, err
	}

	lead := input.ToLead(meta)
	if err := store.InsertLead(ctx, lead); err != nil {
		log.Printf("[WARNING] Lead submission failed: %v", err)
		f.fail(err)
		return nil, err
	}

	f.State = LeadFormSubmitted
	f.Values = LeadInput{}
	return lead, nil
}

// Reset returns a submitted form to idle for another message
func (f *LeadForm) Reset() {
	if f.State == LeadFormSubmitted {
		f.State = LeadFormIdle
		f.Error = ""
		f.FieldErrors = nil
	}
}

// IsSubmitted reports whether the last submission succeeded
func (f *LeadForm) IsSubmitted() bool {
	return f.State == LeadFormSubmitted
}

func (f *LeadForm) fail(err error) {
	f.State = LeadFormError

	var validationErr *LeadValidationError
	if errors.As(err, &validationErr) {
		f.FieldErrors = validationErr.Fields
		f.Error = "Please correct the highlighted fields."
		return
	}
	f.Error = GenericSubmitError
}
