package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		valid bool
	}{
		{name: "plain", in: "user@example.com", valid: true},
		{name: "needs normalization", in: "  User@Example.COM ", valid: true},
		{name: "dotted local part", in: "first.last@example.com.br", valid: true},
		{name: "special chars in local part", in: "o'brien+tag@example.io", valid: true},
		{name: "not an email", in: "not-an-email", valid: false},
		{name: "missing tld", in: "user@example", valid: false},
		{name: "single letter tld", in: "user@example.c", valid: false},
		{name: "empty", in: "", valid: false},
		{name: "whitespace only", in: "   ", valid: false},
		{name: "trailing dot in local part", in: "user.@example.com", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.in))
		})
	}
}
