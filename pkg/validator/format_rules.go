package validator

import (
	"regexp"
	"strings"
)

var (
	// one or more non-space non-@, "@", same, ".", same
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// optional leading "+", then at least ten digits, spaces, dashes or parens
	phoneRegex = regexp.MustCompile(`^\+?[\d\s\-\(\)]{10,}$`)
)

// ValidEmail validates the loose address shape accepted by the intake forms.
// Leading and trailing whitespace is ignored.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(strings.TrimSpace(value))
		},
		Error: ValidationError{
			Field:   field,
			Code:    "email",
			Message: "Please enter a valid email address",
		},
	}
}

// ValidPhone accepts formatted numbers such as "+1 (555) 123-4567".
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phoneRegex.MatchString(strings.TrimSpace(value))
		},
		Error: ValidationError{
			Field:   field,
			Code:    "phone",
			Message: "Please enter a valid phone number",
		},
	}
}
