package validation

import (
	"fmt"

	"github.com/david4096/sparql-agent-sub003/shex"
)

// Fix suggestions are advisory remediation hints attached to
// violations. They describe an edit the caller could make; the engine
// never applies them.

func fixMissingValues(tc *shex.TripleConstraint) string {
	return fmt.Sprintf("add at least %d value(s) for %s", tc.Min, tc.Predicate)
}

func fixTooManyValues(tc *shex.TripleConstraint) string {
	return fmt.Sprintf("keep at most %d value(s) for %s", tc.Max, tc.Predicate)
}

func fixDatatype(kind string) string {
	return fmt.Sprintf("convert the value to an %s literal", kind)
}

func fixRange(facet shex.Facet) string {
	if facet.Kind == shex.FacetMinInclusive {
		return fmt.Sprintf("use a value >= %v", facet.Number)
	}
	return fmt.Sprintf("use a value <= %v", facet.Number)
}

func fixLength(facet shex.Facet) string {
	if facet.Kind == shex.FacetMinLength {
		return fmt.Sprintf("lengthen the value to at least %d characters", facet.Length)
	}
	return fmt.Sprintf("truncate the value to at most %d characters", facet.Length)
}

func fixPattern(facet shex.Facet) string {
	return fmt.Sprintf("use a value matching the pattern %q", facet.PatternSource)
}

func fixNodeKind(kind shex.NodeKind) string {
	switch kind {
	case shex.NodeIRI:
		return "supply an IRI or prefixed reference instead of a literal"
	case shex.NodeBNode:
		return "supply a blank node label (_:name)"
	default:
		return "supply a plain literal instead of a reference"
	}
}

func fixShapeRef(shapeID string) string {
	return fmt.Sprintf("supply a reference to a node conforming to %s", shapeID)
}

func fixClosed(predicate string) string {
	return fmt.Sprintf("remove the undeclared predicate %s (or drop CLOSED from the shape)", predicate)
}
