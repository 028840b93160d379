package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneNumber(t *testing.T) {
	valid := []string{
		"12345",
		"+4412345",
		"*31#",
		"#31#12345",
		"12345,678",
		"12345;",
		strings.Repeat("9", MaxNumberLength),
		"+" + strings.Repeat("9", MaxNumberLength),
	}
	for _, n := range valid {
		assert.True(t, PhoneNumber(n), "expected %q to be valid", n)
	}

	invalid := []string{
		"",
		"+",
		"abc*123",
		"12 34",
		"12-34",
		"++123",
		"12+34",
		strings.Repeat("9", MaxNumberLength+1),
	}
	for _, n := range invalid {
		assert.False(t, PhoneNumber(n), "expected %q to be invalid", n)
	}
}

func TestPIN2(t *testing.T) {
	for _, p := range []string{"1234", "00000", "12345678"} {
		assert.True(t, PIN2(p), "expected %q to be valid", p)
	}
	for _, p := range []string{"", "123", "123456789", "12a4", " 1234", "１２３４"} {
		assert.False(t, PIN2(p), "expected %q to be invalid", p)
	}
}
