package validation

import (
	"fmt"
	"strings"

	gojson "github.com/goccy/go-json"
)

// Report is the outcome of validating one record against one shape.
// Violations appear in the declaration order of the constraints that
// produced them, with closed-shape violations last.
type Report struct {
	// ReportID uniquely identifies this report.
	ReportID string `json:"report_id"`

	// NodeID is the caller-supplied record label, when present.
	NodeID string `json:"node_id,omitempty"`

	// ShapeID is the shape the record was validated against.
	ShapeID string `json:"shape_id"`

	// Violations lists every failed rule.
	Violations []Violation `json:"violations"`

	// CheckedConstraints counts the constraints evaluated.
	CheckedConstraints int `json:"checked_constraints"`
}

// IsValid reports whether the record passed: true iff no violation has
// error severity. Warnings never affect validity.
func (r *Report) IsValid() bool { return r.ErrorCount() == 0 }

// ErrorCount returns the number of error-severity violations.
func (r *Report) ErrorCount() int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning-severity violations.
func (r *Report) WarningCount() int {
	return len(r.Violations) - r.ErrorCount()
}

// ToMap returns the structured key-value form of the report for
// downstream serialization.
func (r *Report) ToMap() map[string]any {
	violations := make([]map[string]any, 0, len(r.Violations))
	for _, v := range r.Violations {
		m := map[string]any{
			"violation_type": string(v.Type),
			"predicate":      v.Predicate,
			"message":        v.Message,
			"severity":       string(v.Severity),
		}
		if v.FixSuggestion != "" {
			m["fix_suggestion"] = v.FixSuggestion
		}
		violations = append(violations, m)
	}
	m := map[string]any{
		"report_id":           r.ReportID,
		"shape_id":            r.ShapeID,
		"is_valid":            r.IsValid(),
		"error_count":         r.ErrorCount(),
		"warning_count":       r.WarningCount(),
		"checked_constraints": r.CheckedConstraints,
		"violations":          violations,
	}
	if r.NodeID != "" {
		m["node_id"] = r.NodeID
	}
	return m
}

// ToJSON serializes the structured form of the report.
func (r *Report) ToJSON() ([]byte, error) {
	return gojson.Marshal(r.ToMap())
}

// Render returns a deterministic human-readable rendering: a summary
// line, then one line per violation grouped by severity, errors first.
// Within each group violations keep their report order.
func (r *Report) Render() string {
	var sb strings.Builder

	label := r.ShapeID
	if r.NodeID != "" {
		label = r.NodeID + " against " + r.ShapeID
	}
	if r.IsValid() {
		fmt.Fprintf(&sb, "VALID %s", label)
	} else {
		fmt.Fprintf(&sb, "INVALID %s", label)
	}
	fmt.Fprintf(&sb, ": %d error(s), %d warning(s), %d constraint(s) checked\n",
		r.ErrorCount(), r.WarningCount(), r.CheckedConstraints)

	for _, severity := range []Severity{SeverityError, SeverityWarning} {
		for _, v := range r.Violations {
			if v.Severity == severity {
				sb.WriteString("  " + v.String() + "\n")
			}
		}
	}
	return sb.String()
}
