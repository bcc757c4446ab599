// Package shex parses a compact ShEx-style schema language into an
// immutable constraint model.
//
// A schema is a prefix table followed by named shape definitions:
//
//	PREFIX ex: <http://example.org/>
//	PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
//
//	<PersonShape> {
//	    ex:name xsd:string,
//	    ex:age xsd:integer MININCLUSIVE 0 MAXINCLUSIVE 150,
//	    ex:nickname xsd:string ?,
//	    ex:homepage IRI *
//	} CLOSED
//
// Each constraint names a predicate, a value expression (a datatype, a
// node kind IRI/BNODE/LITERAL, or a shape reference @<Other>), an
// optional cardinality suffix (? * +), optional facets (MININCLUSIVE,
// MAXINCLUSIVE, MINLENGTH, MAXLENGTH, PATTERN "..."), and an optional
// trailing WARNING keyword that downgrades the constraint's violations
// to advisory severity. A CLOSED keyword after the closing brace forbids
// undeclared predicates.
//
// All PREFIX declarations must precede the first shape definition.
// Predicates and datatypes are expanded to fully-qualified IRIs at parse
// time; a prefixed name using an undeclared prefix is a parse error.
// Shape identifiers are stored verbatim, angle brackets included, and
// are never prefix-expanded.
//
// Parsing is a pure function of the input text. The resulting Schema is
// immutable and safe for concurrent use by any number of validators.
package shex
