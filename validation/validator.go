package validation

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/david4096/sparql-agent-sub003/record"
	"github.com/david4096/sparql-agent-sub003/shex"
	"github.com/david4096/sparql-agent-sub003/vocabulary/xsd"
)

// ErrShapeNotFound is returned when the requested shape identifier is
// absent from the schema. It is the only failure mode of Validate; all
// data-level problems become violations instead.
var ErrShapeNotFound = errors.New("shape not found in schema")

// Validator evaluates candidate records against the shapes of one
// immutable schema. It holds no per-record state and is safe for
// concurrent use.
type Validator struct {
	schema   *shex.Schema
	prefixes map[string]string
	recorder Recorder
	workers  int
}

// Option configures a Validator.
type Option func(*Validator)

// WithRecorder attaches an observability recorder.
func WithRecorder(r Recorder) Option {
	return func(v *Validator) {
		if r != nil {
			v.recorder = r
		}
	}
}

// WithWorkers bounds batch validation concurrency. Values below 1 fall
// back to serial execution.
func WithWorkers(n int) Option {
	return func(v *Validator) { v.workers = n }
}

// New creates a Validator over a parsed schema.
func New(schema *shex.Schema, opts ...Option) *Validator {
	v := &Validator{
		schema:   schema,
		prefixes: schema.Prefixes(),
		recorder: nopRecorder{},
		workers:  1,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate evaluates one record against the named shape. Constraints
// are checked in declaration order; closed-shape violations come last,
// in sorted expanded-predicate order so reports are deterministic.
func (v *Validator) Validate(rec *record.Record, shapeID string) (*Report, error) {
	shape, ok := v.schema.Shape(shapeID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrShapeNotFound, shapeID)
	}

	report := &Report{
		ReportID: uuid.New().String(),
		NodeID:   rec.NodeID,
		ShapeID:  shapeID,
	}

	idx := v.indexRecord(rec)

	declared := make(map[string]bool, len(shape.Expression))
	for _, tc := range shape.Expression {
		declared[tc.PredicateIRI] = true
		v.checkConstraint(report, tc, idx[tc.PredicateIRI])
		report.CheckedConstraints++
	}

	if shape.Closed {
		v.checkClosed(report, idx, declared)
	}

	for _, viol := range report.Violations {
		v.recorder.RecordViolation(viol.Type)
	}
	v.recorder.RecordValidation(report.IsValid())
	return report, nil
}

// fieldGroup keeps one predicate's values together with the key the
// caller wrote, so closed-shape violations name the original spelling.
type fieldGroup struct {
	writtenKey string
	values     []record.Value
}

// indexRecord expands every record key through the schema's prefix
// table, the same resolution the parser applied to declared predicates.
// Keys that expand to the same IRI are merged; the lexically smallest
// written key is kept for messages to stay deterministic.
func (v *Validator) indexRecord(rec *record.Record) map[string]*fieldGroup {
	idx := make(map[string]*fieldGroup, rec.Len())
	keys := rec.Predicates()
	sort.Strings(keys)
	for _, key := range keys {
		iri := v.schema.ExpandLoose(key)
		group, ok := idx[iri]
		if !ok {
			group = &fieldGroup{writtenKey: key}
			idx[iri] = group
		}
		group.values = append(group.values, rec.Get(key)...)
	}
	return idx
}

func (v *Validator) checkConstraint(report *Report, tc *shex.TripleConstraint, group *fieldGroup) {
	severity := SeverityError
	if tc.Advisory {
		severity = SeverityWarning
	}

	var values []record.Value
	if group != nil {
		values = group.values
	}

	v.checkCardinality(report, tc, len(values), severity)

	for _, value := range values {
		v.checkValueExpr(report, tc, value, severity)
		for _, facet := range tc.Facets {
			v.checkFacet(report, tc, facet, value, severity)
		}
	}
}

func (v *Validator) checkCardinality(report *Report, tc *shex.TripleConstraint, count int, severity Severity) {
	if count >= tc.Min && (tc.Max == shex.Unbounded || count <= tc.Max) {
		return
	}
	viol := Violation{
		Type:      ViolationCardinality,
		Predicate: tc.Predicate,
		Severity:  severity,
		Message: fmt.Sprintf("expected %s value(s) for %s, got %d",
			tc.CardinalityString(), tc.Predicate, count),
	}
	if count < tc.Min {
		viol.FixSuggestion = fixMissingValues(tc)
	} else {
		viol.FixSuggestion = fixTooManyValues(tc)
	}
	report.Violations = append(report.Violations, viol)
}

// checkValueExpr dispatches exhaustively on the value expression
// variant.
func (v *Validator) checkValueExpr(report *Report, tc *shex.TripleConstraint, value record.Value, severity Severity) {
	switch tc.Value.Kind {
	case shex.ValueDatatype:
		v.checkDatatype(report, tc, value, severity)
	case shex.ValueNodeKind:
		v.checkNodeKind(report, tc, value, severity)
	case shex.ValueShapeRef:
		// Nested shapes are not traversed: the value itself must be a
		// node reference, conformance of the referenced node is the
		// caller's concern.
		if !v.isReference(value) {
			report.Violations = append(report.Violations, Violation{
				Type:      ViolationNodeKind,
				Predicate: tc.Predicate,
				Severity:  severity,
				Message: fmt.Sprintf("value %q of %s must reference a %s node",
					value.Lexical(), tc.Predicate, tc.Value.ShapeRef),
				FixSuggestion: fixShapeRef(tc.Value.ShapeRef),
			})
		}
	}
}

// checkDatatype applies the total conversion for the declared scalar
// kind. Datatypes outside the known XSD set accept any value.
func (v *Validator) checkDatatype(report *Report, tc *shex.TripleConstraint, value record.Value, severity Severity) {
	kind := xsd.KindOf(tc.Value.Datatype)
	ok := true
	switch kind {
	case xsd.KindUnknown:
	case xsd.KindString:
		ok = value.Kind != record.KindReference
	case xsd.KindInteger:
		_, ok = value.AsInteger()
	case xsd.KindDecimal:
		_, ok = value.AsNumber()
	case xsd.KindBoolean:
		_, ok = value.AsBool()
	case xsd.KindDate:
		ok = value.Kind == record.KindString && parsesAs(value.Str, "2006-01-02")
	case xsd.KindDateTime:
		ok = value.Kind == record.KindString &&
			(parsesAs(value.Str, time.RFC3339) || parsesAs(value.Str, "2006-01-02T15:04:05"))
	case xsd.KindAnyURI:
		ok = v.isReference(value) || looksAbsoluteIRI(value.Lexical())
	}
	if ok {
		return
	}
	report.Violations = append(report.Violations, Violation{
		Type:      ViolationDatatype,
		Predicate: tc.Predicate,
		Severity:  severity,
		Message: fmt.Sprintf("value %q of %s is not a valid %s literal",
			value.Lexical(), tc.Predicate, kind),
		FixSuggestion: fixDatatype(kind.String()),
	})
}

func (v *Validator) checkNodeKind(report *Report, tc *shex.TripleConstraint, value record.Value, severity Severity) {
	var ok bool
	switch tc.Value.NodeKind {
	case shex.NodeIRI:
		ok = v.isReference(value)
	case shex.NodeBNode:
		ok = strings.HasPrefix(value.Lexical(), "_:")
	case shex.NodeLiteral:
		ok = value.Kind != record.KindReference && !looksAbsoluteIRI(value.Lexical())
	}
	if ok {
		return
	}
	report.Violations = append(report.Violations, Violation{
		Type:      ViolationNodeKind,
		Predicate: tc.Predicate,
		Severity:  severity,
		Message: fmt.Sprintf("value %q of %s is not of node kind %s",
			value.Lexical(), tc.Predicate, tc.Value.NodeKind),
		FixSuggestion: fixNodeKind(tc.Value.NodeKind),
	})
}

// checkFacet dispatches exhaustively on the facet variant. Facet checks
// are independent of the datatype check and of each other: one value
// can produce several violations. Range facets skip values with no
// numeric form; the datatype check already reports those.
func (v *Validator) checkFacet(report *Report, tc *shex.TripleConstraint, facet shex.Facet, value record.Value, severity Severity) {
	switch facet.Kind {
	case shex.FacetMinInclusive, shex.FacetMaxInclusive:
		num, ok := value.AsNumber()
		if !ok {
			return
		}
		if (facet.Kind == shex.FacetMinInclusive && num < facet.Number) ||
			(facet.Kind == shex.FacetMaxInclusive && num > facet.Number) {
			report.Violations = append(report.Violations, Violation{
				Type:      ViolationRange,
				Predicate: tc.Predicate,
				Severity:  severity,
				Message: fmt.Sprintf("value %v of %s violates %s %v",
					num, tc.Predicate, facet.Kind, facet.Number),
				FixSuggestion: fixRange(facet),
			})
		}
	case shex.FacetMinLength, shex.FacetMaxLength:
		length := utf8.RuneCountInString(value.Lexical())
		if (facet.Kind == shex.FacetMinLength && length < facet.Length) ||
			(facet.Kind == shex.FacetMaxLength && length > facet.Length) {
			report.Violations = append(report.Violations, Violation{
				Type:      ViolationLength,
				Predicate: tc.Predicate,
				Severity:  severity,
				Message: fmt.Sprintf("value %q of %s has length %d, violates %s %d",
					value.Lexical(), tc.Predicate, length, facet.Kind, facet.Length),
				FixSuggestion: fixLength(facet),
			})
		}
	case shex.FacetPattern:
		if !facet.Pattern.MatchString(value.Lexical()) {
			report.Violations = append(report.Violations, Violation{
				Type:      ViolationPattern,
				Predicate: tc.Predicate,
				Severity:  severity,
				Message: fmt.Sprintf("value %q of %s does not match pattern %q",
					value.Lexical(), tc.Predicate, facet.PatternSource),
				FixSuggestion: fixPattern(facet),
			})
		}
	}
}

// checkClosed emits one CLOSED violation per record predicate no
// constraint declared, in sorted expanded-IRI order.
func (v *Validator) checkClosed(report *Report, idx map[string]*fieldGroup, declared map[string]bool) {
	var unexpected []string
	for iri := range idx {
		if !declared[iri] {
			unexpected = append(unexpected, iri)
		}
	}
	sort.Strings(unexpected)

	for _, iri := range unexpected {
		written := idx[iri].writtenKey
		report.Violations = append(report.Violations, Violation{
			Type:          ViolationClosed,
			Predicate:     written,
			Severity:      SeverityError,
			Message:       fmt.Sprintf("predicate %s is not declared on closed shape %s", written, report.ShapeID),
			FixSuggestion: fixClosed(written),
		})
	}
}

// isReference reports whether a value names a node rather than a
// literal: an explicit reference, an absolute IRI, a blank node label,
// or a prefixed name whose prefix the schema declares.
func (v *Validator) isReference(value record.Value) bool {
	if value.Kind == record.KindReference {
		return true
	}
	if value.Kind != record.KindString {
		return false
	}
	s := value.Str
	if looksAbsoluteIRI(s) || strings.HasPrefix(s, "_:") {
		return true
	}
	if idx := strings.Index(s, ":"); idx > 0 {
		_, declared := v.prefixes[s[:idx]]
		return declared
	}
	return false
}

var absoluteIRIPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)

func looksAbsoluteIRI(s string) bool {
	return absoluteIRIPattern.MatchString(s) || strings.HasPrefix(s, "urn:")
}

func parsesAs(s, layout string) bool {
	_, err := time.Parse(layout, s)
	return err == nil
}
