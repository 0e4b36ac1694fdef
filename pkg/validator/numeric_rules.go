package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValidNumber validates that a string parses as a finite float64.
func ValidNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ParseNumber(value)
			return ok
		},
		Error: ValidationError{
			Field:   field,
			Code:    "number",
			Message: "Please enter a valid number",
		},
	}
}

// ParseNumber parses a numeric input value. NaN and infinities are rejected.
func ParseNumber(value string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Code:    "min",
			Message: fmt.Sprintf("Must be at least %v", min),
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:   field,
			Code:    "max",
			Message: fmt.Sprintf("Must be no more than %v", max),
		},
	}
}
