package xsd

// Namespace is the XML Schema datatypes namespace.
const Namespace = "http://www.w3.org/2001/XMLSchema#"

// String-like datatype IRIs.
const (
	// String is the general string datatype.
	String = Namespace + "string"

	// NormalizedString is a string without tabs, newlines or carriage returns.
	NormalizedString = Namespace + "normalizedString"

	// Token is a normalized string without leading/trailing/double spaces.
	Token = Namespace + "token"

	// Language is an RFC 3066 language tag.
	Language = Namespace + "language"

	// AnyURI is a URI reference.
	AnyURI = Namespace + "anyURI"
)

// Numeric datatype IRIs.
const (
	// Integer is an arbitrary-precision integer.
	Integer = Namespace + "integer"

	// Int is a 32-bit signed integer.
	Int = Namespace + "int"

	// Long is a 64-bit signed integer.
	Long = Namespace + "long"

	// Short is a 16-bit signed integer.
	Short = Namespace + "short"

	// Byte is an 8-bit signed integer.
	Byte = Namespace + "byte"

	// NonNegativeInteger is an integer >= 0.
	NonNegativeInteger = Namespace + "nonNegativeInteger"

	// PositiveInteger is an integer >= 1.
	PositiveInteger = Namespace + "positiveInteger"

	// Decimal is an arbitrary-precision decimal number.
	Decimal = Namespace + "decimal"

	// Float is a single-precision floating point number.
	Float = Namespace + "float"

	// Double is a double-precision floating point number.
	Double = Namespace + "double"
)

// Other scalar datatype IRIs.
const (
	// Boolean is true/false.
	Boolean = Namespace + "boolean"

	// Date is an ISO 8601 calendar date (YYYY-MM-DD).
	Date = Namespace + "date"

	// DateTime is an ISO 8601 timestamp.
	DateTime = Namespace + "dateTime"
)
