package utils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// asciiWhitespace is the set of characters stripped from line ends and number edges:
// space, tab, newline, carriage return, vertical tab and form feed.
const asciiWhitespace = " \t\n\r\v\f"

// Subtracting two decimals rescales both to the smaller exponent, so a short
// line like "1e-999999999" could otherwise allocate a huge integer.
// ParseDecimal rounds to maxDecimalPlaces and rejects values whose order of
// magnitude exceeds maxDecimalOrder, the float64 range.
const (
	maxDecimalPlaces = 1100
	maxDecimalOrder  = 308
)

// Plain decimal notation only: sign, digits with an optional fraction, optional exponent.
// Hex floats, digit separators, "inf" and "nan" do not match.
var decimalNumberRegex = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// TrimTrailingSpace removes trailing whitespace, including the line terminator.
// Leading and interior whitespace is preserved.
func TrimTrailingSpace(s string) string {
	return strings.TrimRight(s, asciiWhitespace)
}

// ParseDecimal parses s as a decimal number. Surrounding whitespace is ignored.
// The second return value is false when s is not a number in plain decimal notation.
func ParseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.Trim(s, asciiWhitespace)
	if !decimalNumberRegex.MatchString(s) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	// order is the power of ten of the leading digit.
	order := int64(d.NumDigits()) + int64(d.Exponent()) - 1
	switch {
	case order > maxDecimalOrder:
		return decimal.Decimal{}, false
	case order < -maxDecimalPlaces:
		return decimal.Zero, true
	case d.Exponent() < -maxDecimalPlaces:
		d = d.Round(maxDecimalPlaces)
	}
	return d, true
}

// AbsDifference returns |a - b|.
func AbsDifference(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b).Abs()
}
