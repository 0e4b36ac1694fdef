package validator

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of date inputs.
const DateLayout = "2006-01-02"

// ParseDate parses a date input value as a calendar date in loc.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// CalendarDay truncates t to midnight of its calendar day in t's location.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func ValidDate(field, value string, loc *time.Location) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ParseDate(value, loc)
			return ok
		},
		Error: ValidationError{
			Field:   field,
			Code:    "date",
			Message: "Please enter a valid date",
		},
	}
}

// NotFutureDate validates that value is not after the calendar day of now.
func NotFutureDate(field string, value time.Time, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !value.After(CalendarDay(now))
		},
		Error: ValidationError{
			Field:   field,
			Code:    "date_future",
			Message: "Date cannot be in the future",
		},
	}
}

// WithinYears validates that value is no earlier than the same calendar day
// `years` years before now. The bound is built from now's year, month and day,
// so it ignores the time of day.
func WithinYears(field string, value time.Time, now time.Time, years int) Rule {
	y, m, d := now.Date()
	limit := time.Date(y-years, m, d, 0, 0, 0, 0, now.Location())
	return Rule{
		Check: func() bool {
			return !value.Before(limit)
		},
		Error: ValidationError{
			Field:   field,
			Code:    "date_too_old",
			Message: fmt.Sprintf("Date cannot be more than %d years ago", years),
		},
	}
}
