// Package money provides parsing and formatting of monetary amounts.
//
// Amounts are handled as signed int64 cents throughout the application so
// that aggregation stays exact. Decimal strings are what the banking API and
// user-entered forms carry on the wire.
package money

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidAmount is returned for strings that cannot be parsed as a
// decimal amount.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseToCents converts a signed decimal string to cents.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators, an
// optional leading sign, and performs half-up rounding on the third decimal
// place.
//
// Examples:
//
//	ParseToCents("12.34")   -> 1234, nil
//	ParseToCents("-150.00") -> -15000, nil
//	ParseToCents("12.346")  -> 1235, nil (rounds up)
func ParseToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	// Split into integer and fractional part
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	if intPart == "0" && fracPart == "" && len(parts) == 2 {
		return 0, ErrInvalidAmount
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}

	// Take first two fractional digits; half-up rounding on the third
	var fracCents int64
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracCents = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracCents += d2
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	cents := iv*100 + fracCents
	if negative {
		cents = -cents
	}
	return cents, nil
}

// FormatCents renders cents as a currency display string with thousands
// grouping, e.g. 123456 -> "$1,234.56" and -15000 -> "-$150.00".
func FormatCents(cents int64) string {
	var sb strings.Builder
	if cents < 0 {
		sb.WriteByte('-')
		cents = -cents
	}
	sb.WriteByte('$')
	sb.WriteString(groupDigits(strconv.FormatInt(cents/100, 10)))
	sb.WriteByte('.')
	frac := cents % 100
	if frac < 10 {
		sb.WriteByte('0')
	}
	sb.WriteString(strconv.FormatInt(frac, 10))
	return sb.String()
}

// CentsToDecimal renders cents as a plain decimal string, e.g. -15000 -> "-150.00".
func CentsToDecimal(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + strconv.FormatInt(cents/100, 10) + "." + pad2(cents%100)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// groupDigits inserts commas every three digits from the right.
func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
