package validation

import (
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	return &Report{
		ReportID: "report-1",
		NodeID:   "urn:node:1",
		ShapeID:  "<PersonShape>",
		Violations: []Violation{
			{
				Type:          ViolationRange,
				Predicate:     "ex:age",
				Message:       "value 200 of ex:age violates MAXINCLUSIVE 150",
				Severity:      SeverityError,
				FixSuggestion: "use a value <= 150",
			},
			{
				Type:      ViolationLength,
				Predicate: "ex:note",
				Message:   "too long",
				Severity:  SeverityWarning,
			},
		},
		CheckedConstraints: 3,
	}
}

func TestReport_Counts(t *testing.T) {
	report := sampleReport()

	assert.False(t, report.IsValid())
	assert.Equal(t, 1, report.ErrorCount())
	assert.Equal(t, 1, report.WarningCount())

	empty := &Report{ShapeID: "<S>"}
	assert.True(t, empty.IsValid())
	assert.Equal(t, 0, empty.ErrorCount())
	assert.Equal(t, 0, empty.WarningCount())
}

func TestReport_WarningsOnlyIsValid(t *testing.T) {
	report := &Report{
		ShapeID: "<S>",
		Violations: []Violation{
			{Type: ViolationLength, Predicate: "ex:a", Severity: SeverityWarning},
		},
	}
	assert.True(t, report.IsValid())
	assert.Equal(t, 1, report.WarningCount())
}

func TestReport_ToMap(t *testing.T) {
	m := sampleReport().ToMap()

	assert.Equal(t, false, m["is_valid"])
	assert.Equal(t, 1, m["error_count"])
	assert.Equal(t, 1, m["warning_count"])
	assert.Equal(t, 3, m["checked_constraints"])
	assert.Equal(t, "urn:node:1", m["node_id"])
	assert.Equal(t, "<PersonShape>", m["shape_id"])

	violations, ok := m["violations"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, violations, 2)
	assert.Equal(t, "RANGE", violations[0]["violation_type"])
	assert.Equal(t, "use a value <= 150", violations[0]["fix_suggestion"])
	_, hasFix := violations[1]["fix_suggestion"]
	assert.False(t, hasFix, "empty fix suggestions are omitted")
}

func TestReport_ToJSON(t *testing.T) {
	data, err := sampleReport().ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, gojson.Unmarshal(data, &decoded))
	assert.Equal(t, false, decoded["is_valid"])
	assert.Equal(t, float64(1), decoded["error_count"])
}

func TestReport_RenderGroupsBySeverity(t *testing.T) {
	out := sampleReport().Render()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "INVALID urn:node:1 against <PersonShape>")
	assert.Contains(t, lines[0], "1 error(s), 1 warning(s), 3 constraint(s) checked")
	assert.Contains(t, lines[1], "[ERROR] RANGE ex:age")
	assert.Contains(t, lines[1], "fix: use a value <= 150")
	assert.Contains(t, lines[2], "[WARNING] LENGTH ex:note")

	// Deterministic: identical calls render identically.
	assert.Equal(t, out, sampleReport().Render())
}

func TestReport_RenderValid(t *testing.T) {
	report := &Report{ShapeID: "<S>", CheckedConstraints: 2}
	out := report.Render()
	assert.True(t, strings.HasPrefix(out, "VALID <S>"))
}
