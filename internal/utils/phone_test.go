package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhoneBR(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "one digit keeps open paren", in: "8", want: "(8"},
		{name: "area code only", in: "81", want: "(81)"},
		{name: "partial number", in: "8199", want: "(81) 99"},
		{name: "eight digit number", in: "8133334444", want: "(81) 3333-4444"},
		{name: "nine digit number", in: "81999990000", want: "(81) 99999-0000"},
		{name: "truncates past eleven", in: "819999900001234", want: "(81) 99999-0000"},
		{name: "already formatted", in: "(81) 99999-0000", want: "(81) 99999-0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhoneBR(tt.in))
		})
	}
}

func TestIsValidPhoneBR(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		valid bool
	}{
		{name: "ten digits", in: "8133334444", valid: true},
		{name: "eleven digits", in: "81999990000", valid: true},
		{name: "formatted eleven digits", in: "(81) 99999-0000", valid: true},
		{name: "empty", in: "", valid: false},
		{name: "nine digits", in: "813333444", valid: false},
		{name: "twelve digits", in: "819999900001", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPhoneBR(tt.in))
		})
	}
}
