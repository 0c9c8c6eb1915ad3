// Package whatsapp builds wa.me deep links for manual reminder outreach.
// Pure string construction — sending is the operator clicking the link.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/patramworks/patram/internal/phone"
)

const dateLabel = "2 Jan 2006, 3:04 PM"

// ToNumber normalizes a raw phone string to a wa.me-ready international
// number. Bare 10-digit numbers are assumed domestic (+91); numbers already
// carrying the 91 prefix at the right length pass through. Fewer than 8
// digits is not a dialable number.
func ToNumber(raw string) (string, bool) {
	digits := phone.Normalize(raw)
	switch {
	case strings.HasPrefix(digits, "91") && len(digits) == 12:
		return digits, true
	case len(digits) == 10:
		return "91" + digits, true
	case strings.HasPrefix(digits, "0") && len(digits) == 11:
		return "91" + digits[1:], true
	case len(digits) >= 8:
		return digits, true
	default:
		return "", false
	}
}

// BuildReminderLink returns a wa.me link carrying the templated reminder
// message, or ok=false when the phone is missing or not dialable. Callers
// render a missing link as a disabled action.
func BuildReminderLink(clientName string, rawPhone *string, nextDueAt time.Time) (string, bool) {
	if rawPhone == nil {
		return "", false
	}
	num, ok := ToNumber(*rawPhone)
	if !ok {
		return "", false
	}

	msg := strings.Join([]string{
		fmt.Sprintf("Hi %s, Patram Works here.", clientName),
		fmt.Sprintf("Friendly reminder for your next order on %s.", nextDueAt.Format(dateLabel)),
		"Thank you!",
	}, "\n")

	// encodeURIComponent-style escaping: %20 for spaces, not +.
	escaped := strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
	return "https://wa.me/" + num + "?text=" + escaped, true
}
