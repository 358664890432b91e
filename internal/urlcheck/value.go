package urlcheck

import (
	"math"
	"strconv"
	"strings"
)

// ValueKind discriminates the raw shapes a cell value can take.
type ValueKind int

const (
	// KindText is an ordinary string value.
	KindText ValueKind = iota
	// KindMissing is an absent value: empty cell, NaN, or infinity.
	KindMissing
	// KindNumeric is a number stored where a URL might live.
	KindNumeric
)

// Value is a raw cell or line value before URL checking. Drivers convert
// every extracted value to a Value exactly once at the boundary, then work
// with the normalized string it yields.
type Value struct {
	kind ValueKind
	text string
	num  float64
}

// TextValue wraps an ordinary string.
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// MissingValue represents an absent cell.
func MissingValue() Value {
	return Value{kind: KindMissing}
}

// NumericValue wraps a number found where text was expected.
func NumericValue(f float64) Value {
	return Value{kind: KindNumeric, num: f}
}

// Kind returns the value's discriminator.
func (v Value) Kind() ValueKind {
	return v.kind
}

// ParseCell interprets one raw cell string: blank cells are missing, cells
// that parse as a number are numeric (spreadsheet readers hand back numeric
// cells as decimal strings), and everything else is text.
func ParseCell(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return MissingValue()
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return NumericValue(f)
	}
	return TextValue(raw)
}

// Normalize returns the string form used for classification, and false for
// values with nothing to check. Whole-number floats normalize to their
// integer form ("123.0" becomes "123", not "123.0"), which decides whether a
// numeric cell is even considered for URL-likeness.
func (v Value) Normalize() (string, bool) {
	switch v.kind {
	case KindMissing:
		return "", false
	case KindNumeric:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return "", false
		}
		if v.num == math.Trunc(v.num) && math.Abs(v.num) < float64(math.MaxInt64) {
			return strconv.FormatInt(int64(v.num), 10), true
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64), true
	default:
		s := strings.TrimSpace(v.text)
		return s, s != ""
	}
}
