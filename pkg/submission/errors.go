package submission

import "errors"

var (
	ErrNilForm   = errors.New("submission: form is nil")
	ErrEmptyForm = errors.New("submission: form has no named controls")
)
