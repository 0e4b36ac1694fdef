package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Code:    "required",
			Message: "This field is required",
		},
	}
}

// NotEmpty validates that a string is not empty. Unlike RequiredString it
// does not trim, which matches how select and number inputs report values.
func NotEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:   field,
			Code:    "required",
			Message: "This field is required",
		},
	}
}

// MinLenString counts runes, not bytes.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Code:    "min_length",
			Message: fmt.Sprintf("Must be at least %d characters", min),
		},
	}
}

// MaxLenString counts runes. A negative max means unbounded.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return max < 0 || utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Code:    "max_length",
			Message: fmt.Sprintf("Must be no more than %d characters", max),
		},
	}
}
