package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	policy := CountryPolicy{DefaultCountryCode: "+91", LocalNumberLength: 10}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare local number gets country code", "9876543210", "+919876543210"},
		{"separators stripped from local number", "98765 43210", "+919876543210"},
		{"dashes and parens stripped", "(987) 654-3210", "+919876543210"},
		{"already international passes through", "+14155551234", "+14155551234"},
		{"international with spaces", "+1 415 555 1234", "+14155551234"},
		{"non-local length gets bare plus", "445566", "+445566"},
		{"empty stays empty", "", ""},
		{"whitespace only stays empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhoneNumber(tt.in, policy))
		})
	}
}

func TestNormalizePhoneNumberWithoutLocalPolicy(t *testing.T) {
	policy := CountryPolicy{}
	assert.Equal(t, "+9876543210", NormalizePhoneNumber("9876543210", policy))
	assert.Equal(t, "+14155551234", NormalizePhoneNumber("+14155551234", policy))
}
