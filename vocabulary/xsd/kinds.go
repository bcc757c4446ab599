package xsd

// Kind is the scalar conversion class of a datatype.
type Kind int

const (
	// KindUnknown marks a datatype IRI outside the XSD namespace or one the
	// engine has no conversion for. Values are accepted as-is.
	KindUnknown Kind = iota

	// KindString covers all string-like datatypes.
	KindString

	// KindInteger covers the integer datatypes.
	KindInteger

	// KindDecimal covers decimal and the floating point datatypes.
	KindDecimal

	// KindBoolean is xsd:boolean.
	KindBoolean

	// KindDate is xsd:date.
	KindDate

	// KindDateTime is xsd:dateTime.
	KindDateTime

	// KindAnyURI is xsd:anyURI.
	KindAnyURI
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	case KindDateTime:
		return "dateTime"
	case KindAnyURI:
		return "anyURI"
	default:
		return "unknown"
	}
}

var kinds = map[string]Kind{
	String:             KindString,
	NormalizedString:   KindString,
	Token:              KindString,
	Language:           KindString,
	AnyURI:             KindAnyURI,
	Integer:            KindInteger,
	Int:                KindInteger,
	Long:               KindInteger,
	Short:              KindInteger,
	Byte:               KindInteger,
	NonNegativeInteger: KindInteger,
	PositiveInteger:    KindInteger,
	Decimal:            KindDecimal,
	Float:              KindDecimal,
	Double:             KindDecimal,
	Boolean:            KindBoolean,
	Date:               KindDate,
	DateTime:           KindDateTime,
}

// KindOf returns the scalar kind of an expanded datatype IRI.
func KindOf(iri string) Kind {
	return kinds[iri]
}

// IsNumeric reports whether the datatype accepts numeric range facets.
func IsNumeric(iri string) bool {
	switch KindOf(iri) {
	case KindInteger, KindDecimal:
		return true
	default:
		return false
	}
}

// IsStringLike reports whether the datatype accepts length and pattern facets.
func IsStringLike(iri string) bool {
	switch KindOf(iri) {
	case KindString, KindAnyURI:
		return true
	default:
		return false
	}
}
