package shex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/david4096/sparql-agent-sub003/vocabulary/xsd"
)

// ParseError reports malformed schema syntax.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
}

// Parse converts schema text into an immutable Schema. It returns a
// *LexError for invalid characters and a *ParseError for malformed
// syntax, undeclared prefixes, duplicate shape identifiers, and facets
// incompatible with their constraint's value expression.
func Parse(text string) (*Schema, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	p := &parser{
		tokens: tokens,
		schema: &Schema{
			prefixes: make(map[string]string),
			shapes:   make(map[string]*Shape),
		},
	}
	if err := p.parseSchema(); err != nil {
		return nil, err
	}
	return p.schema, nil
}

type parser struct {
	tokens []Token
	pos    int
	schema *Schema
}

func (p *parser) peek() Token { return p.tokens[p.pos] }

func (p *parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) errf(tok Token, format string, args ...any) *ParseError {
	return &ParseError{Line: tok.Line, Message: fmt.Sprintf(format, args...)}
}

// parseSchema consumes the whole token stream: all PREFIX declarations
// first, then shape definitions until EOF. A PREFIX declaration after
// the first shape is rejected to keep resolution unambiguous.
func (p *parser) parseSchema() error {
	for p.peek().Kind == TokenKeyword && p.peek().Text == KeywordPrefix {
		if err := p.parsePrefixDecl(); err != nil {
			return err
		}
	}

	for {
		tok := p.peek()
		switch {
		case tok.Kind == TokenEOF:
			return nil
		case tok.Kind == TokenIRIRef:
			if err := p.parseShape(); err != nil {
				return err
			}
		case tok.Kind == TokenKeyword && tok.Text == KeywordPrefix:
			return p.errf(tok, "PREFIX declarations must precede all shape definitions")
		default:
			return p.errf(tok, "expected shape identifier, got %s", tok.Kind)
		}
	}
}

// parsePrefixDecl consumes PREFIX label: <iri>. A duplicate label
// overwrites the earlier declaration.
func (p *parser) parsePrefixDecl() error {
	p.advance() // PREFIX keyword

	tok := p.advance()
	if tok.Kind != TokenPrefixedName || !strings.HasSuffix(tok.Text, ":") {
		return p.errf(tok, "expected prefix label ending in ':' after PREFIX, got %q", tok.Text)
	}
	label := strings.TrimSuffix(tok.Text, ":")

	iri := p.advance()
	if iri.Kind != TokenIRIRef {
		return p.errf(iri, "expected IRI reference after prefix label %q", label)
	}
	p.schema.prefixes[label] = strings.Trim(iri.Text, "<>")
	return nil
}

// parseShape consumes <ShapeId> { constraints } [CLOSED]. The shape
// identifier is stored verbatim, brackets included.
func (p *parser) parseShape() error {
	idTok := p.advance()
	id := idTok.Text
	if _, exists := p.schema.shapes[id]; exists {
		return p.errf(idTok, "duplicate shape identifier %s", id)
	}

	if tok := p.advance(); tok.Kind != TokenLBrace {
		return p.errf(tok, "expected '{' after shape identifier %s, got %s", id, tok.Kind)
	}

	shape := &Shape{ID: id}
	for p.peek().Kind != TokenRBrace {
		tc, err := p.parseConstraint()
		if err != nil {
			return err
		}
		shape.Expression = append(shape.Expression, tc)

		switch tok := p.peek(); tok.Kind {
		case TokenComma:
			p.advance()
		case TokenRBrace:
		case TokenEOF:
			return p.errf(tok, "unexpected end of input inside shape %s", id)
		default:
			return p.errf(tok, "expected ',' or '}' after constraint, got %s", tok.Kind)
		}
	}
	p.advance() // '}'

	if tok := p.peek(); tok.Kind == TokenKeyword && tok.Text == KeywordClosed {
		p.advance()
		shape.Closed = true
	}

	p.schema.shapes[id] = shape
	p.schema.order = append(p.schema.order, id)
	return nil
}

// parseConstraint consumes predicate valueExpr [cardinality] [facet...]
// [WARNING].
func (p *parser) parseConstraint() (*TripleConstraint, error) {
	predTok := p.advance()
	if predTok.Kind != TokenPrefixedName && predTok.Kind != TokenIRIRef {
		return nil, p.errf(predTok, "expected predicate, got %s", predTok.Kind)
	}
	predIRI, err := p.schema.Expand(predTok.Text)
	if err != nil {
		return nil, p.errf(predTok, "%v", err)
	}

	tc := &TripleConstraint{
		Predicate:    predTok.Text,
		PredicateIRI: predIRI,
		Min:          1,
		Max:          1,
	}

	if err := p.parseValueExpr(tc); err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Kind == TokenCardinality {
		p.advance()
		switch tok.Text {
		case "?":
			tc.Min, tc.Max = 0, 1
		case "*":
			tc.Min, tc.Max = 0, Unbounded
		case "+":
			tc.Min, tc.Max = 1, Unbounded
		}
	}

	if err := p.parseFacets(tc); err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Kind == TokenKeyword && tok.Text == KeywordWarning {
		p.advance()
		tc.Advisory = true
	}
	return tc, nil
}

func (p *parser) parseValueExpr(tc *TripleConstraint) error {
	tok := p.advance()
	switch tok.Kind {
	case TokenPrefixedName, TokenIRIRef:
		iri, err := p.schema.Expand(tok.Text)
		if err != nil {
			return p.errf(tok, "%v", err)
		}
		tc.Value = ValueExpr{Kind: ValueDatatype, Datatype: iri}
	case TokenShapeRef:
		tc.Value = ValueExpr{Kind: ValueShapeRef, ShapeRef: tok.Text}
	case TokenKeyword:
		switch tok.Text {
		case KeywordIRI:
			tc.Value = ValueExpr{Kind: ValueNodeKind, NodeKind: NodeIRI}
		case KeywordBNode:
			tc.Value = ValueExpr{Kind: ValueNodeKind, NodeKind: NodeBNode}
		case KeywordLiteral:
			tc.Value = ValueExpr{Kind: ValueNodeKind, NodeKind: NodeLiteral}
		default:
			return p.errf(tok, "expected value expression for predicate %s, got keyword %s", tc.Predicate, tok.Text)
		}
	default:
		return p.errf(tok, "expected value expression for predicate %s, got %s", tc.Predicate, tok.Kind)
	}
	return nil
}

// parseFacets attaches facet keyword-value pairs to the constraint,
// rejecting combinations incompatible with its value expression.
func (p *parser) parseFacets(tc *TripleConstraint) error {
	for {
		tok := p.peek()
		if tok.Kind != TokenKeyword {
			return nil
		}
		switch tok.Text {
		case KeywordMinInclusive, KeywordMaxInclusive:
			p.advance()
			if err := p.checkFacetCompat(tok, tc); err != nil {
				return err
			}
			num, err := p.parseNumberArg(tok.Text)
			if err != nil {
				return err
			}
			kind := FacetMinInclusive
			if tok.Text == KeywordMaxInclusive {
				kind = FacetMaxInclusive
			}
			tc.Facets = append(tc.Facets, Facet{Kind: kind, Number: num})
		case KeywordMinLength, KeywordMaxLength:
			p.advance()
			if err := p.checkFacetCompat(tok, tc); err != nil {
				return err
			}
			arg := p.advance()
			if arg.Kind != TokenInteger {
				return p.errf(arg, "expected integer after %s, got %s", tok.Text, arg.Kind)
			}
			n, err := strconv.Atoi(arg.Text)
			if err != nil || n < 0 {
				return p.errf(arg, "invalid %s value %q", tok.Text, arg.Text)
			}
			kind := FacetMinLength
			if tok.Text == KeywordMaxLength {
				kind = FacetMaxLength
			}
			tc.Facets = append(tc.Facets, Facet{Kind: kind, Length: n})
		case KeywordPattern:
			p.advance()
			if err := p.checkFacetCompat(tok, tc); err != nil {
				return err
			}
			arg := p.advance()
			if arg.Kind != TokenString {
				return p.errf(arg, "expected string literal after PATTERN, got %s", arg.Kind)
			}
			re, err := regexp.Compile(arg.Text)
			if err != nil {
				return p.errf(arg, "invalid PATTERN expression %q: %v", arg.Text, err)
			}
			tc.Facets = append(tc.Facets, Facet{Kind: FacetPattern, Pattern: re, PatternSource: arg.Text})
		default:
			return nil
		}
	}
}

func (p *parser) parseNumberArg(keyword string) (float64, error) {
	arg := p.advance()
	if arg.Kind != TokenInteger && arg.Kind != TokenDecimal {
		return 0, p.errf(arg, "expected number after %s, got %s", keyword, arg.Kind)
	}
	num, err := strconv.ParseFloat(arg.Text, 64)
	if err != nil {
		return 0, p.errf(arg, "invalid %s value %q", keyword, arg.Text)
	}
	return num, nil
}

// checkFacetCompat rejects facets on node-kind and shape-reference value
// expressions, numeric facets on non-numeric datatypes, and
// length/pattern facets on non-string datatypes.
func (p *parser) checkFacetCompat(tok Token, tc *TripleConstraint) error {
	if tc.Value.Kind != ValueDatatype {
		return p.errf(tok, "facet %s is not allowed on %s value expression of predicate %s",
			tok.Text, tc.Value, tc.Predicate)
	}
	numeric := tok.Text == KeywordMinInclusive || tok.Text == KeywordMaxInclusive
	if numeric && !xsd.IsNumeric(tc.Value.Datatype) {
		return p.errf(tok, "numeric facet %s requires a numeric datatype, predicate %s has <%s>",
			tok.Text, tc.Predicate, tc.Value.Datatype)
	}
	if !numeric && !xsd.IsStringLike(tc.Value.Datatype) {
		return p.errf(tok, "facet %s requires a string-like datatype, predicate %s has <%s>",
			tok.Text, tc.Predicate, tc.Value.Datatype)
	}
	return nil
}
