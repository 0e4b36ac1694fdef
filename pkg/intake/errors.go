package intake

import "errors"

var (
	// ErrValidationFailed blocks submission. It is joined with the
	// validator.ValidationErrors describing every failed field.
	ErrValidationFailed = errors.New("intake: form has invalid fields")

	// ErrSubmissionFailed wraps collection and webhook delivery errors.
	ErrSubmissionFailed = errors.New("intake: submission failed")

	ErrNilForm = errors.New("intake: nil form")
)
