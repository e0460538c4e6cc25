package helper

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
	digitsOnly      = regexp.MustCompile(`^[0-9]+$`)

	// builtin evaluates validator's stock tags against single values.
	builtin = validator.New()
)

// IsValidPhoneNumber accepts 7 to 15 digits with an optional leading '+'
// and common separators (space, dash, dot, parentheses).
func IsValidPhoneNumber(phone string) bool {
	p := phoneSeparators.Replace(strings.TrimSpace(phone))
	p = strings.TrimPrefix(p, "+")
	return digitsOnly.MatchString(p) && len(p) >= 7 && len(p) <= 15
}

// IsStrongPassword requires at least 8 characters with upper, lower, digit and symbol.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// IsValidURL accepts absolute http and https URLs with a host.
func IsValidURL(raw string) bool {
	return builtin.Var(raw, "http_url") == nil
}

func IsValidIP(ip string) bool {
	return builtin.Var(strings.TrimSpace(ip), "ip") == nil
}

// IsValidCreditCard checks length and the Luhn checksum. Digits may be
// grouped with spaces or dashes.
func IsValidCreditCard(number string) bool {
	n := strings.NewReplacer(" ", "", "-", "").Replace(number)
	return builtin.Var(n, "credit_card") == nil
}

// IsValidIdentityNumber accepts a national ID (DNI) of 6 to 12 digits
// without leading zero.
func IsValidIdentityNumber(id string) bool {
	id = strings.TrimSpace(id)
	return digitsOnly.MatchString(id) && len(id) >= 6 && len(id) <= 12 && id[0] != '0'
}
