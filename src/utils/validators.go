package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)
)

// IsValidEmail checks the basic shape of an email address.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// IsValidPhone accepts international-style phone numbers with common
// punctuation.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}

// IsValidCardNumber runs the Luhn checksum over a 12-19 digit card number,
// ignoring spaces and dashes.
func IsValidCardNumber(number string) bool {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(number)
	if len(digits) < 12 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// IsValidExpiry checks an MM/YY card expiry and that it is not in the past.
func IsValidExpiry(expiry string) bool {
	parts := strings.Split(strings.TrimSpace(expiry), "/")
	if len(parts) != 2 {
		return false
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 {
		return false
	}
	year += 2000

	now := time.Now()
	if year < now.Year() {
		return false
	}
	if year == now.Year() && month < int(now.Month()) {
		return false
	}
	return true
}
