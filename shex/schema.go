package shex

import (
	"fmt"
	"regexp"
	"strings"
)

// NodeKind restricts the syntactic form of a value.
type NodeKind int

const (
	// NodeIRI requires an IRI or prefixed reference.
	NodeIRI NodeKind = iota

	// NodeBNode requires a blank node label (_:name).
	NodeBNode

	// NodeLiteral requires a plain literal, not a reference.
	NodeLiteral
)

// String returns the keyword form of the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeIRI:
		return KeywordIRI
	case NodeBNode:
		return KeywordBNode
	default:
		return KeywordLiteral
	}
}

// ValueExprKind discriminates the value expression variants.
type ValueExprKind int

const (
	// ValueDatatype requires values convertible to a scalar datatype.
	ValueDatatype ValueExprKind = iota

	// ValueNodeKind requires a particular syntactic node form.
	ValueNodeKind

	// ValueShapeRef requires a reference to a node of another shape.
	ValueShapeRef
)

// ValueExpr is the closed set of value expressions a constraint may
// carry. Exactly one variant applies, selected by Kind.
type ValueExpr struct {
	Kind ValueExprKind

	// Datatype is the expanded datatype IRI when Kind is ValueDatatype.
	Datatype string

	// NodeKind applies when Kind is ValueNodeKind.
	NodeKind NodeKind

	// ShapeRef is the verbatim shape identifier (brackets included) when
	// Kind is ValueShapeRef.
	ShapeRef string
}

// String returns the source-level spelling of the value expression.
func (v ValueExpr) String() string {
	switch v.Kind {
	case ValueNodeKind:
		return v.NodeKind.String()
	case ValueShapeRef:
		return "@" + v.ShapeRef
	default:
		return "<" + v.Datatype + ">"
	}
}

// FacetKind discriminates the facet variants.
type FacetKind int

const (
	// FacetMinInclusive is a numeric lower bound.
	FacetMinInclusive FacetKind = iota

	// FacetMaxInclusive is a numeric upper bound.
	FacetMaxInclusive

	// FacetMinLength is a string length lower bound.
	FacetMinLength

	// FacetMaxLength is a string length upper bound.
	FacetMaxLength

	// FacetPattern is a regular expression the value must match.
	FacetPattern
)

// String returns the facet keyword.
func (k FacetKind) String() string {
	switch k {
	case FacetMinInclusive:
		return KeywordMinInclusive
	case FacetMaxInclusive:
		return KeywordMaxInclusive
	case FacetMinLength:
		return KeywordMinLength
	case FacetMaxLength:
		return KeywordMaxLength
	default:
		return KeywordPattern
	}
}

// Facet is one additional restriction on a constraint's values. The
// field matching Kind carries the bound; the others are zero.
type Facet struct {
	Kind FacetKind

	// Number is the bound for MININCLUSIVE/MAXINCLUSIVE.
	Number float64

	// Length is the bound for MINLENGTH/MAXLENGTH.
	Length int

	// Pattern is the compiled expression for PATTERN; PatternSource keeps
	// the source text for messages and fix suggestions.
	Pattern       *regexp.Regexp
	PatternSource string
}

// TripleConstraint is one property rule within a shape.
type TripleConstraint struct {
	// Predicate is the predicate as written in the schema.
	Predicate string

	// PredicateIRI is the fully expanded predicate, the canonical form
	// used for all matching.
	PredicateIRI string

	// Value is the value expression.
	Value ValueExpr

	// Min and Max bound the number of values; Max of Unbounded means no
	// upper limit.
	Min int
	Max int

	// Facets apply in declaration order.
	Facets []Facet

	// Advisory downgrades this constraint's violations to warnings.
	Advisory bool
}

// Unbounded is the Max value of the * and + cardinalities.
const Unbounded = -1

// CardinalityString renders the constraint's cardinality range for
// messages, e.g. "[1..1]" or "[0..*]".
func (tc *TripleConstraint) CardinalityString() string {
	if tc.Max == Unbounded {
		return fmt.Sprintf("[%d..*]", tc.Min)
	}
	return fmt.Sprintf("[%d..%d]", tc.Min, tc.Max)
}

// Shape is a named set of property rules.
type Shape struct {
	// ID is the verbatim shape identifier, brackets included.
	ID string

	// Expression holds the constraints in declaration order.
	Expression []*TripleConstraint

	// Closed forbids predicates not named by any constraint.
	Closed bool
}

// Schema is the parsed form of a schema text: a prefix table plus named
// shapes. It is immutable after parsing and safe for concurrent use.
type Schema struct {
	prefixes map[string]string
	shapes   map[string]*Shape
	order    []string
}

// Prefixes returns a copy of the prefix table.
func (s *Schema) Prefixes() map[string]string {
	out := make(map[string]string, len(s.prefixes))
	for k, v := range s.prefixes {
		out[k] = v
	}
	return out
}

// Shape returns the shape with the given verbatim identifier.
func (s *Schema) Shape(id string) (*Shape, bool) {
	sh, ok := s.shapes[id]
	return sh, ok
}

// ShapeIDs returns shape identifiers in declaration order.
func (s *Schema) ShapeIDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Expand resolves a term to its fully-qualified IRI, the canonical form
// every predicate and datatype comparison goes through. Bracketed IRI
// references are unwrapped; prefixed names are resolved against the
// prefix table. It fails on an undeclared prefix or a bare term.
func (s *Schema) Expand(term string) (string, error) {
	if strings.HasPrefix(term, "<") && strings.HasSuffix(term, ">") {
		return term[1 : len(term)-1], nil
	}
	idx := strings.Index(term, ":")
	if idx < 0 {
		return "", fmt.Errorf("term %q is neither an IRI reference nor a prefixed name", term)
	}
	prefix, local := term[:idx], term[idx+1:]
	ns, ok := s.prefixes[prefix]
	if !ok {
		return "", fmt.Errorf("undeclared prefix %q in %q", prefix, term)
	}
	return ns + local, nil
}

// ExpandLoose is Expand for record-supplied keys: a key that does not
// resolve keeps its literal spelling, so it can still be reported by
// closed-shape checks under the name the caller used.
func (s *Schema) ExpandLoose(term string) string {
	iri, err := s.Expand(term)
	if err != nil {
		return term
	}
	return iri
}

// ShapeInfo is the introspection view of one shape.
type ShapeInfo struct {
	ID              string `json:"id"`
	ConstraintCount int    `json:"constraint_count"`
	Closed          bool   `json:"closed"`
}

// Info is the debug/introspection view of a schema.
type Info struct {
	Prefixes map[string]string `json:"prefixes"`
	Shapes   []ShapeInfo       `json:"shapes"`
}

// Info returns the schema's introspection view, shapes in declaration
// order.
func (s *Schema) Info() Info {
	info := Info{Prefixes: s.Prefixes()}
	for _, id := range s.order {
		sh := s.shapes[id]
		info.Shapes = append(info.Shapes, ShapeInfo{
			ID:              sh.ID,
			ConstraintCount: len(sh.Expression),
			Closed:          sh.Closed,
		})
	}
	return info
}
