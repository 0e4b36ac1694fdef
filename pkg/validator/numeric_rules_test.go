package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"5", 5, true},
		{" 2.5 ", 2.5, true},
		{"-3e2", -300, true},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := validator.ParseNumber(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidNumber(t *testing.T) {
	assert.True(t, validator.ValidNumber("age", "42").Check())
	rule := validator.ValidNumber("age", "forty")
	assert.False(t, rule.Check())
	assert.Equal(t, "number", rule.Error.Code)
}

func TestMinMaxNum(t *testing.T) {
	assert.True(t, validator.MinNum("qty", 0.0, 0.0).Check())
	assert.False(t, validator.MinNum("qty", -1.0, 0.0).Check())
	assert.True(t, validator.MaxNum("qty", 10.0, 10.0).Check())
	assert.False(t, validator.MaxNum("qty", 11.0, 10.0).Check())
	assert.Equal(t, "Must be no more than 10", validator.MaxNum("qty", 11.0, 10.0).Error.Message)

	t.Run("infinite bounds accept everything", func(t *testing.T) {
		assert.True(t, validator.MinNum("qty", -1e300, math.Inf(-1)).Check())
		assert.True(t, validator.MaxNum("qty", 1e300, math.Inf(1)).Check())
	})
}
