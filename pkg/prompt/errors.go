package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoOptions is returned for a choice field without options.
	ErrNoOptions = errors.New("prompt: choice field has no options")
)
