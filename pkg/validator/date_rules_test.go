package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestParseDate(t *testing.T) {
	d, ok := validator.ParseDate("2024-02-29", time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

	_, ok = validator.ParseDate("2023-02-29", time.UTC)
	assert.False(t, ok)

	_, ok = validator.ParseDate("29/02/2024", time.UTC)
	assert.False(t, ok)

	assert.False(t, validator.ValidDate("dob", "", nil).Check())
}

func TestNotFutureDate(t *testing.T) {
	now := time.Date(2026, 10, 17, 23, 59, 0, 0, time.UTC)

	assert.True(t, validator.NotFutureDate("dob", time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), now).Check())
	assert.False(t, validator.NotFutureDate("dob", time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), now).Check())
}

func TestWithinYears(t *testing.T) {
	now := time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC)

	exact := time.Date(1926, 10, 17, 0, 0, 0, 0, time.UTC)
	assert.True(t, validator.WithinYears("dob", exact, now, 100).Check())

	dayBefore := exact.AddDate(0, 0, -1)
	rule := validator.WithinYears("dob", dayBefore, now, 100)
	assert.False(t, rule.Check())
	assert.Equal(t, "Date cannot be more than 100 years ago", rule.Error.Message)
}
