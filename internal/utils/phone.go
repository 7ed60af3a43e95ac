package utils

import (
	"fmt"
	"strings"
)

// NormalizePhone canonicalizes a Chilean mobile number to "+56 9 XXXX XXXX".
// Accepted inputs: 9XXXXXXXX, 569XXXXXXXX, +569XXXXXXXX, with any spacing,
// dots or dashes. Returns an error when the digits don't form a mobile line.
func NormalizePhone(raw string) (string, error) {
	digits := keepDigits(raw)

	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, "569"):
		digits = digits[2:]
	case len(digits) == 9 && strings.HasPrefix(digits, "9"):
		// already national format
	default:
		return "", fmt.Errorf("teléfono móvil inválido: %q", raw)
	}

	return fmt.Sprintf("+56 9 %s %s", digits[1:5], digits[5:]), nil
}

// IsValidPhone reports whether NormalizePhone would accept the input.
func IsValidPhone(raw string) bool {
	_, err := NormalizePhone(raw)
	return err == nil
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
