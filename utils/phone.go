// utils/phone.go
package utils

import "strings"

// NormalizePhone converts a free-form phone number into a dialable
// international form: a single leading '+' followed by digits only.
// countryCode is the default country code (digits only) applied when the
// number looks local. Returns "" when the input contains no digits.
func NormalizePhone(phone, countryCode string) string {
	raw := strings.TrimSpace(phone)

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}

	// A leading '+' means the number is already fully qualified.
	if strings.HasPrefix(raw, "+") {
		return "+" + digits
	}

	// Already carries a country code.
	if strings.HasPrefix(digits, countryCode) || strings.HasPrefix(digits, "1") {
		return "+" + digits
	}

	// Local trunk prefix: drop the zero and prepend the country code.
	if strings.HasPrefix(digits, "0") {
		return "+" + countryCode + digits[1:]
	}

	// No country code at all.
	return "+" + countryCode + digits
}
