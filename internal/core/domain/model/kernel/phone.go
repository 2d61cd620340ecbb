package kernel

import "strings"

// IndonesiaCountryCode prefixes every normalized WhatsApp number.
const IndonesiaCountryCode = "62"

// NormalizePhone turns a user-entered Indonesian phone number into the
// international digits-only form expected by WhatsApp gateways:
// non-digits are dropped, a leading 0 becomes 62, and 62 is prepended when missing.
// Applying it twice yields the same result.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + len(IndonesiaCountryCode))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case strings.HasPrefix(digits, "0"):
		return IndonesiaCountryCode + digits[1:]
	case strings.HasPrefix(digits, IndonesiaCountryCode):
		return digits
	default:
		return IndonesiaCountryCode + digits
	}
}
