// Package validate holds the virtual card checks used by the payment
// simulation endpoint. No real acquiring integration: card numbers are
// checked, masked for logging and never stored.
package validate

import (
	"strconv"
	"strings"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a plausible card number: 13-19 digits passing
// the Luhn checksum.
func IsLuhn(s string) bool {
	digits := digitsOnly(s)
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}
	err := goluhn.Validate(digits)
	return err == nil
}

// IsCVC reports whether s is a 3 or 4 digit CVC/CVV code.
func IsCVC(s string) bool {
	digits := digitsOnly(s)
	return len(digits) == 3 || len(digits) == 4
}

// IsExpiryValid parses MM/YY or MM/YYYY and reports whether the card is
// still valid at the given moment.
func IsExpiryValid(expiry string, now time.Time) bool {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 {
		return false
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return false
	}
	if year < 100 {
		year += 2000
	}

	if year < now.Year() {
		return false
	}
	if year == now.Year() && month < int(now.Month()) {
		return false
	}
	return true
}

// CardType guesses the payment network from the leading digits.
func CardType(cardNumber string) string {
	digits := digitsOnly(cardNumber)
	switch {
	case strings.HasPrefix(digits, "4"):
		return "Visa"
	case len(digits) >= 2 && digits[0] == '5' && digits[1] >= '1' && digits[1] <= '5':
		return "MasterCard"
	case strings.HasPrefix(digits, "2"):
		return "Mir"
	case strings.HasPrefix(digits, "34") || strings.HasPrefix(digits, "37"):
		return "American Express"
	case strings.HasPrefix(digits, "6"):
		return "UnionPay"
	}
	return "Unknown"
}

// MaskCard keeps only the last four digits for safe logging.
func MaskCard(cardNumber string) string {
	digits := digitsOnly(cardNumber)
	if len(digits) < 4 {
		return "****"
	}
	return "**** **** **** " + digits[len(digits)-4:]
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
