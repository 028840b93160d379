// Package validation holds the syntax rules applied before anything is sent
// to the SIM.
package validation

// MaxNumberLength bounds dialling numbers (3GPP TS 31.102 EF_ADN/EF_FDN carry
// at most 20 digits), not counting a leading '+'.
const MaxNumberLength = 20

// PIN2 length bounds (3GPP TS 31.101).
const (
	MinPINLength = 4
	MaxPINLength = 8
)

// PhoneNumber reports whether number is an optional '+' followed by 1 to
// MaxNumberLength characters from 0-9 * # , ;.
func PhoneNumber(number string) bool {
	digits := number
	if len(digits) > 0 && digits[0] == '+' {
		digits = digits[1:]
	}
	if len(digits) == 0 || len(digits) > MaxNumberLength {
		return false
	}
	for i := 0; i < len(digits); i++ {
		switch c := digits[i]; {
		case c >= '0' && c <= '9':
		case c == '*', c == '#', c == ',', c == ';':
		default:
			return false
		}
	}
	return true
}

// PIN2 reports whether pin is 4 to 8 decimal digits.
func PIN2(pin string) bool {
	if len(pin) < MinPINLength || len(pin) > MaxPINLength {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}
