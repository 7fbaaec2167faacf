package validators

import (
	"regexp"
	"strings"
)

// Canonical Brazilian mobile: (DD) 9XXXX-XXXX.
var brMobile = regexp.MustCompile(`^\(\d{2}\) 9\d{4}-\d{4}$`)

func IsValidBrazilianMobile(phone string) bool {
	return brMobile.MatchString(strings.TrimSpace(phone))
}

// PhoneDigits strips everything but digits; clients are keyed by it.
func PhoneDigits(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone renders 11 digits as (DD) 9XXXX-XXXX; anything else is returned as is.
func FormatPhone(digits string) string {
	if len(digits) != 11 {
		return digits
	}
	return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
}
