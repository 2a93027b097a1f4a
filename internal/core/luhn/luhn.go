// Package luhn implements the Luhn mod-10 checksum used by payment card numbers.
package luhn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when the input is not a decimal card number.
var ErrInvalidNumber = errors.New("invalid card number")

// Validate reports whether number passes the Luhn checksum.
// Zero and negative numbers never pass.
func Validate(number int64) bool {
	if number <= 0 {
		return false
	}

	sum := 0
	for i := 0; number > 0; i++ {
		digit := int(number % 10)
		number /= 10

		if i%2 == 1 {
			digit *= 2
			if digit > 9 {
				digit = digit/10 + digit%10
			}
		}
		sum += digit
	}

	return sum%10 == 0
}

// Normalize strips surrounding whitespace and the space or dash separators
// commonly used when printing card numbers.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' || r == '\t' {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}

// ValidateString normalizes s, parses it as a decimal number and validates it.
func ValidateString(s string) (bool, error) {
	digits := Normalize(s)
	if digits == "" {
		return false, fmt.Errorf("%w: empty input", ErrInvalidNumber)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false, fmt.Errorf("%w: %q contains non-digit %q", ErrInvalidNumber, s, r)
		}
	}

	number, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrInvalidNumber, s, err)
	}

	return Validate(number), nil
}
