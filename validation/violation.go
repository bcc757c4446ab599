package validation

import "fmt"

// ViolationType names the rule class a violation belongs to.
type ViolationType string

const (
	// ViolationCardinality is a value count outside the declared range.
	ViolationCardinality ViolationType = "CARDINALITY"

	// ViolationDatatype is a value not convertible to the declared datatype.
	ViolationDatatype ViolationType = "DATATYPE"

	// ViolationPattern is a value not matching a PATTERN facet.
	ViolationPattern ViolationType = "PATTERN"

	// ViolationRange is a value outside a numeric range facet.
	ViolationRange ViolationType = "RANGE"

	// ViolationLength is a value outside a string length facet.
	ViolationLength ViolationType = "LENGTH"

	// ViolationNodeKind is a value of the wrong syntactic node form.
	ViolationNodeKind ViolationType = "NODEKIND"

	// ViolationClosed is an undeclared predicate on a closed shape.
	ViolationClosed ViolationType = "CLOSED"
)

// Severity distinguishes hard failures from advisory notices.
type Severity string

const (
	// SeverityError marks a violation that makes the record invalid.
	SeverityError Severity = "ERROR"

	// SeverityWarning marks an advisory violation; warnings never affect
	// validity.
	SeverityWarning Severity = "WARNING"
)

// Violation is one failed rule instance.
type Violation struct {
	Type          ViolationType `json:"violation_type"`
	Predicate     string        `json:"predicate"`
	Message       string        `json:"message"`
	Severity      Severity      `json:"severity"`
	FixSuggestion string        `json:"fix_suggestion,omitempty"`
}

// String renders the violation as one line, the form used by
// Report.Render.
func (v Violation) String() string {
	s := fmt.Sprintf("[%s] %s %s: %s", v.Severity, v.Type, v.Predicate, v.Message)
	if v.FixSuggestion != "" {
		s += " (fix: " + v.FixSuggestion + ")"
	}
	return s
}
