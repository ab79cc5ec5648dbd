package utils

import (
	"regexp"
	"strings"
)

// emailRe is a deliberately simple RFC 5322-ish pattern: dot-separated
// local-part segments from a fixed charset, then one-or-more domain labels
// and a final label of at least two letters.
var emailRe = regexp.MustCompile(`^(?:[a-zA-Z0-9_'^&+` + "`" + `{}~!#$%*?/=|-]+(?:\.[a-zA-Z0-9_'^&+` + "`" + `{}~!#$%*?/=|-]+)*)@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}$`)

// NormalizeEmail trims surrounding whitespace and lowercases.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsValidEmail reports whether s normalizes to a well-formed address.
func IsValidEmail(s string) bool {
	email := NormalizeEmail(s)
	if email == "" {
		return false
	}
	return emailRe.MatchString(email)
}
