package utils

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseOptionalInt converts trimmed text to an int.
// Empty text is absent and yields nil; anything else must be a valid integer.
func ParseOptionalInt(val string) (*int, error) {
	s := strings.TrimSpace(val)
	if s == "" {
		return nil, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q", val)
	}
	return &i, nil
}

// ParseOptionalInt64 is ParseOptionalInt for 64-bit identifiers.
func ParseOptionalInt64(val string) (*int64, error) {
	s := strings.TrimSpace(val)
	if s == "" {
		return nil, nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q", val)
	}
	return &i, nil
}

// ParseOptionalFloat converts trimmed text to a float64, nil when empty.
func ParseOptionalFloat(val string) (*float64, error) {
	s := strings.TrimSpace(val)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", val)
	}
	return &f, nil
}

// ParsePrice normalizes a display price such as "$1,299.99" or "USD 29.99" and parses it.
//
// Text without any digit ("Contact Us", "Call for price", "") is absent and yields nil.
// Text with digits that still fails to parse after stripping currency symbols and
// thousands separators is an error, never a zero price.
func ParsePrice(val string) (*decimal.Decimal, error) {
	if !strings.ContainsFunc(val, unicode.IsDigit) {
		return nil, nil
	}

	var b strings.Builder
	for _, r := range val {
		switch {
		case unicode.IsDigit(r), r == '.', r == '-':
			b.WriteRune(r)
		case r == ',', unicode.IsSpace(r), unicode.Is(unicode.Sc, r), unicode.IsLetter(r):
			// currency symbols, codes and grouping separators
		default:
			return nil, fmt.Errorf("invalid price %q", val)
		}
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", val)
	}
	return &d, nil
}

// CollapseSpace trims text and folds internal whitespace runs into single spaces.
func CollapseSpace(val string) string {
	return strings.Join(strings.Fields(val), " ")
}
