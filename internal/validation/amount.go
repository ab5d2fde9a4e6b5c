package validation

import (
	"errors"
	"strconv"
	"strings"
)

// ErrAmount reports a string that does not parse as a monetary amount.
var ErrAmount = errors.New("validation: invalid amount")

// ParseAmount parses a monetary amount accepting both "," and "." as the
// decimal separator ("100,50" == "100.50").
func ParseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, ErrAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrAmount
	}
	return v, nil
}

// DecimalPlaces counts the digits after the decimal separator
// (either "," or "."). No separator means 0.
func DecimalPlaces(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
