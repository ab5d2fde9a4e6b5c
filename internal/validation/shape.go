package validation

import "strings"

// Input-shaping helpers, applied while the user types so the submitted
// value already matches the expected format.

// DigitsOnly strips everything that is not an ASCII digit.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ShapePostal formats digits as "NN-NNN", truncating at 5 digits.
func ShapePostal(s string) string {
	d := DigitsOnly(s)
	if len(d) > 5 {
		d = d[:5]
	}
	if len(d) > 2 {
		return d[:2] + "-" + d[2:]
	}
	return d
}

// ShapeCard groups card digits in blocks of four, truncating at 16.
func ShapeCard(s string) string {
	d := DigitsOnly(s)
	if len(d) > 16 {
		d = d[:16]
	}
	var parts []string
	for len(d) > 4 {
		parts = append(parts, d[:4])
		d = d[4:]
	}
	if d != "" {
		parts = append(parts, d)
	}
	return strings.Join(parts, " ")
}

// ShapeExpiration formats digits as "MM/YY", truncating at 4 digits.
func ShapeExpiration(s string) string {
	d := DigitsOnly(s)
	if len(d) > 4 {
		d = d[:4]
	}
	if len(d) > 2 {
		return d[:2] + "/" + d[2:]
	}
	return d
}

// ShapeAccount keeps at most AccountNumberLen digits.
func ShapeAccount(s string) string {
	d := DigitsOnly(s)
	if len(d) > AccountNumberLen {
		d = d[:AccountNumberLen]
	}
	return d
}
