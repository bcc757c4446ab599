package record

import (
	"strconv"
	"strings"
)

// Kind discriminates the closed set of candidate value forms.
type Kind int

const (
	// KindString is a plain string literal.
	KindString Kind = iota

	// KindNumber is a numeric literal.
	KindNumber

	// KindBoolean is true/false.
	KindBoolean

	// KindReference is a node reference (IRI, prefixed name, or blank
	// node label) rather than a literal.
	KindReference
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindReference:
		return "reference"
	default:
		return "string"
	}
}

// Value is one candidate value for a predicate. Exactly one of the
// payload fields is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
}

// String makes a string value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Number makes a numeric value.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// Int makes a numeric value from an integer.
func Int(i int64) Value { return Value{Kind: KindNumber, Num: float64(i)} }

// Bool makes a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBoolean, Bool: b} }

// Reference makes a node reference value.
func Reference(iri string) Value { return Value{Kind: KindReference, Str: iri} }

// Lexical returns the string form of the value, used for length and
// pattern checks and in violation messages. It is total: every value
// has a lexical form.
func (v Value) Lexical() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

// AsNumber attempts a total numeric conversion: numbers convert
// directly, strings convert when they parse as a number, booleans and
// references never convert.
func (v Value) AsNumber() (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Num, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// AsInteger is AsNumber restricted to integral values.
func (v Value) AsInteger() (int64, bool) {
	f, ok := v.AsNumber()
	if !ok || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// AsBool attempts a total boolean conversion accepting the XSD lexical
// forms true/false/1/0.
func (v Value) AsBool() (bool, bool) {
	switch v.Kind {
	case KindBoolean:
		return v.Bool, true
	case KindString:
		switch strings.TrimSpace(v.Str) {
		case "true", "1":
			return true, true
		case "false", "0":
			return false, true
		}
	case KindNumber:
		if v.Num == 1 {
			return true, true
		}
		if v.Num == 0 {
			return false, true
		}
	}
	return false, false
}
