// Package phone normalizes and validates the 10-digit phone numbers used
// across clients, visits and users.
package phone

import "strings"

// Normalize strips everything but digits.
func Normalize(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValid10 reports whether v normalizes to exactly 10 digits.
func IsValid10(v string) bool {
	return len(Normalize(v)) == 10
}
