package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// +31 / 0031 / 0 followed by the nine significant digits of a Dutch
	// number. The first significant digit is never 0.
	rePhone = regexp.MustCompile(`^(?:\+31|0031|0)[1-9]\d{8}$`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "\t", "")
)

// Required reports whether the trimmed value is non-empty.
func Required(value string) bool {
	return check(strings.TrimSpace(value), tagRequired)
}

// Email reports whether value is an RFC 5322 address that also has the
// local@domain.tld shape, so bare hosts like test@domain are rejected.
func Email(value string) bool {
	return check(value, tagEmail)
}

// Phone reports whether value is a Dutch national or international number.
// Spaces and hyphens are ignored.
func Phone(value string) bool {
	return check(value, tagPhone)
}

// NormalizePhone strips the separators people type into phone fields.
func NormalizePhone(value string) string {
	return phoneSeparators.Replace(strings.TrimSpace(value))
}

// MinLength reports whether the trimmed value has at least n characters.
func MinLength(value string, n int) bool {
	return check(strings.TrimSpace(value), boundTag("min", n))
}

// MaxLength reports whether the trimmed value has at most n characters.
func MaxLength(value string, n int) bool {
	return check(strings.TrimSpace(value), boundTag("max", n))
}

// Remaining returns how many characters are left before max is reached.
// The result is negative once the value is too long.
func Remaining(value string, max int) int {
	return max - utf8.RuneCountInString(value)
}
