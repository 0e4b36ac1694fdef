package intake

import "github.com/dmitrymomot/formkit/pkg/submission"

// User-facing alert texts.
const (
	MessageInvalidForm     = "Please correct the errors in the form before submitting."
	MessageSubmitFailed    = "There was an error submitting your application. Please try again."
	MessageSubmitSucceeded = "Your application has been submitted. Application ID: %s"
)

// Notifier is the presentation side of the submit flow.
type Notifier interface {
	// SetBusy toggles the submitting state, e.g. disabling the submit action.
	SetBusy(busy bool)
	// Alert shows a user-facing error message.
	Alert(message string)
	// Submitted is called with the delivered record.
	Submitted(rec *submission.Record)
}

type nopNotifier struct{}

func (nopNotifier) SetBusy(bool)                 {}
func (nopNotifier) Alert(string)                 {}
func (nopNotifier) Submitted(*submission.Record) {}
