// Package utils provides strict value coercion helpers used by the markup parsers.
//
// Unlike lenient converters that fall back to zero, every helper here distinguishes
// three outcomes:
//   - absent: the input carries no value, reported as a nil pointer
//   - valid: the parsed value
//   - invalid: an error the caller maps to a Malformed failure
//
// # Prices
//
// ParsePrice strips currency symbols, currency codes, whitespace and thousands
// separators before parsing with shopspring/decimal. Text without digits such as
// "Contact Us" is treated as absent.
//
// # Markup
//
// SelectionText, AttrOrText and MetaContent read values from goquery selections
// with whitespace collapsed, preferring structured attributes (content, src) over
// display text.
package utils
