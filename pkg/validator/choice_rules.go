package validator

import "fmt"

// MinChecked validates that at least min options of a group are checked.
func MinChecked(field string, checked, min int) Rule {
	return Rule{
		Check: func() bool {
			return checked >= min
		},
		Error: ValidationError{
			Field:   field,
			Code:    "min_checked",
			Message: minCheckedMessage(min),
		},
	}
}

// AnyChecked validates that one option of a radio group is selected.
func AnyChecked(field string, checked int) Rule {
	return Rule{
		Check: func() bool {
			return checked > 0
		},
		Error: ValidationError{
			Field:   field,
			Code:    "required",
			Message: "Please select an option",
		},
	}
}

// Accepted validates a single must-tick checkbox such as terms acceptance.
func Accepted(field string, checked bool) Rule {
	return Rule{
		Check: func() bool {
			return checked
		},
		Error: ValidationError{
			Field:   field,
			Code:    "required",
			Message: "This box must be checked to continue",
		},
	}
}

// Selected validates that a select input has a non-empty value.
func Selected(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:   field,
			Code:    "required",
			Message: "Please select an option",
		},
	}
}

func minCheckedMessage(min int) string {
	if min == 1 {
		return "Please select at least one option"
	}
	return fmt.Sprintf("Please select at least %d options", min)
}
