package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhonePartialInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "(1"},
		{"123", "(123"},
		{"1234", "(123) 4"},
		{"12345", "(123) 45"},
		{"123456", "(123) 456"},
		{"1234567", "(123) 456-7"},
		{"7701112222", "(770) 111-2222"},
		{"770111222299", "(770) 111-2222"}, // extra digits dropped
		{"abc770-111.2222xyz", "(770) 111-2222"},
		{"(770) 111-2222", "(770) 111-2222"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPhone(tc.in), "input %q", tc.in)
	}
}

func TestFormatPhoneIdempotent(t *testing.T) {
	inputs := []string{"7701112222", "12345", "1", "", "(123) 456-7890"}
	for _, in := range inputs {
		once := FormatPhone(in)
		assert.Equal(t, once, FormatPhone(once), "format must be idempotent for %q", in)
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"(770) 111-2222", "(000) 000-0000", "(123) 456-7890"}
	for _, s := range valid {
		assert.True(t, ValidPhone(s), "%q should be accepted", s)
	}

	invalid := []string{
		"",
		"7701112222",
		"(770)111-2222",
		"(770) 1112222",
		"(770) 111-222",
		"(770) 111-22222",
		"(77) 111-2222",
		"770) 111-2222",
		"(770) 111_2222",
		"(abc) def-ghij",
		" (770) 111-2222",
		"(770) 111-2222 ",
	}
	for _, s := range invalid {
		assert.False(t, ValidPhone(s), "%q should be rejected", s)
	}
}
