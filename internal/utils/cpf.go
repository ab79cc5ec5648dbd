package utils

import "strings"

// OnlyDigits strips every non-digit character from s. It is total and
// idempotent; empty input yields empty output.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// FormatCPF renders s as NNN.NNN.NNN-NN, inserting separators progressively
// so partial input formats cleanly while the user is still typing.
// Input beyond 11 digits is truncated. Never fails.
func FormatCPF(s string) string {
	digits := OnlyDigits(s)
	if len(digits) > 11 {
		digits = digits[:11]
	}
	if digits == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(digits[:min(3, len(digits))])
	if len(digits) > 3 {
		b.WriteByte('.')
		b.WriteString(digits[3:min(6, len(digits))])
	}
	if len(digits) > 6 {
		b.WriteByte('.')
		b.WriteString(digits[6:min(9, len(digits))])
	}
	if len(digits) > 9 {
		b.WriteByte('-')
		b.WriteString(digits[9:])
	}
	return b.String()
}

// IsValidCPF validates a CPF number: exactly 11 digits after stripping
// formatting, not a run of one repeated digit, and both mod-11 check digits
// matching.
func IsValidCPF(s string) bool {
	cpf := OnlyDigits(s)
	if len(cpf) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	d1 := cpfCheckDigit(cpf[:9])
	d2 := cpfCheckDigit(cpf[:9] + string(rune('0'+d1)))
	return int(cpf[9]-'0') == d1 && int(cpf[10]-'0') == d2
}

// cpfCheckDigit computes one check digit over base: each digit is weighted
// len(base)+1 down to 2; remainder < 2 maps to 0, otherwise 11-remainder.
func cpfCheckDigit(base string) int {
	sum := 0
	for i := 0; i < len(base); i++ {
		sum += int(base[i]-'0') * (len(base) + 1 - i)
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}
