package utils

import "strings"

// FormatPhoneBR renders a Brazilian phone as (DD) NNNN-NNNN for 10-digit
// numbers or (DD) NNNNN-NNNN for 11-digit ones, inserting separators
// progressively as digits become available. Input beyond 11 digits is
// truncated. Never fails.
func FormatPhoneBR(s string) string {
	digits := OnlyDigits(s)
	if len(digits) > 11 {
		digits = digits[:11]
	}
	if digits == "" {
		return ""
	}

	nine := len(digits) > 10
	split := 6
	if nine {
		split = 7
	}

	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(digits[:min(2, len(digits))])
	if len(digits) >= 2 {
		b.WriteByte(')')
	}
	if len(digits) > 2 {
		b.WriteByte(' ')
		b.WriteString(digits[2:min(split, len(digits))])
	}
	if len(digits) > split {
		b.WriteByte('-')
		b.WriteString(digits[split:])
	}
	return b.String()
}

// IsValidPhoneBR reports whether s holds a plausible Brazilian phone:
// area code plus an 8 or 9 digit number, i.e. 10 or 11 digits total.
func IsValidPhoneBR(s string) bool {
	n := len(OnlyDigits(s))
	return n == 10 || n == 11
}
