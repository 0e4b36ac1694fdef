package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "first.last@example.co.uk", "  a@b.com  ", "x+tag@d.io"}
	invalid := []string{"a@b", "ab.com", "a b@c.com", "a@@b.com", "@b.com", "a@.com"}

	for _, v := range valid {
		assert.True(t, validator.ValidEmail("email", v).Check(), v)
	}
	for _, v := range invalid {
		assert.False(t, validator.ValidEmail("email", v).Check(), v)
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"+1 (555) 123-4567", "5551234567", "020 7946 0958"}
	invalid := []string{"12345", "+1-555-CALL-NOW", "++15551234567"}

	for _, v := range valid {
		assert.True(t, validator.ValidPhone("phone", v).Check(), v)
	}
	for _, v := range invalid {
		assert.False(t, validator.ValidPhone("phone", v).Check(), v)
	}
	assert.Equal(t, "Please enter a valid phone number", validator.ValidPhone("phone", "").Error.Message)
}
