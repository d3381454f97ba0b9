package verification

import (
	"strings"

	"shramic/config"
)

// CountryPolicy decides how bare local numbers are promoted to international
// dialing form. The default country is deployment configuration, not a
// hard-coded assumption.
type CountryPolicy struct {
	DefaultCountryCode string // e.g. "+91"
	LocalNumberLength  int    // digit count of a bare local number, e.g. 10
}

// PolicyFromConfig builds the policy from application configuration.
func PolicyFromConfig() CountryPolicy {
	return CountryPolicy{
		DefaultCountryCode: config.AppConfig.DefaultCountryCode,
		LocalNumberLength:  config.AppConfig.LocalNumberLength,
	}
}

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// NormalizePhoneNumber strips separators and promotes the number to
// international dialing form. Numbers already carrying a leading "+" pass
// through unchanged apart from separator stripping. A bare number whose
// digit count matches the policy's local length gets the default country
// code prepended; any other bare number just gets a "+" prefix.
func NormalizePhoneNumber(raw string, policy CountryPolicy) string {
	cleaned := phoneSeparators.Replace(strings.TrimSpace(raw))
	if cleaned == "" || strings.HasPrefix(cleaned, "+") {
		return cleaned
	}
	if policy.LocalNumberLength > 0 && len(cleaned) == policy.LocalNumberLength {
		return policy.DefaultCountryCode + cleaned
	}
	return "+" + cleaned
}
