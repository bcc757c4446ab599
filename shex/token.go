package shex

import "fmt"

// TokenKind classifies a lexical token.
type TokenKind int

const (
	// TokenEOF marks the end of input.
	TokenEOF TokenKind = iota

	// TokenKeyword is one of the reserved words: PREFIX, CLOSED, WARNING,
	// the facet keywords, and the node kinds IRI/BNODE/LITERAL.
	TokenKeyword

	// TokenIRIRef is a bracketed IRI reference, text includes the brackets.
	TokenIRIRef

	// TokenPrefixedName is prefix:local (either part may be empty).
	TokenPrefixedName

	// TokenShapeRef is @<...>, text includes the brackets but not the @.
	TokenShapeRef

	// TokenString is a quoted string literal, text holds the unescaped body.
	TokenString

	// TokenInteger is an integer literal.
	TokenInteger

	// TokenDecimal is a decimal literal with a fractional part.
	TokenDecimal

	// TokenCardinality is one of + ? *.
	TokenCardinality

	// TokenLBrace, TokenRBrace and TokenComma are punctuation.
	TokenLBrace
	TokenRBrace
	TokenComma
)

// String returns the kind name for error messages.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenKeyword:
		return "keyword"
	case TokenIRIRef:
		return "IRI reference"
	case TokenPrefixedName:
		return "prefixed name"
	case TokenShapeRef:
		return "shape reference"
	case TokenString:
		return "string literal"
	case TokenInteger:
		return "integer"
	case TokenDecimal:
		return "decimal"
	case TokenCardinality:
		return "cardinality marker"
	case TokenLBrace:
		return "'{'"
	case TokenRBrace:
		return "'}'"
	case TokenComma:
		return "','"
	default:
		return "token"
	}
}

// Token is one lexical unit of schema text.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int
	Line   int
}

// Keywords recognised by the lexer, in canonical (upper-case) form.
const (
	KeywordPrefix       = "PREFIX"
	KeywordClosed       = "CLOSED"
	KeywordWarning      = "WARNING"
	KeywordMinInclusive = "MININCLUSIVE"
	KeywordMaxInclusive = "MAXINCLUSIVE"
	KeywordMinLength    = "MINLENGTH"
	KeywordMaxLength    = "MAXLENGTH"
	KeywordPattern      = "PATTERN"
	KeywordIRI          = "IRI"
	KeywordBNode        = "BNODE"
	KeywordLiteral      = "LITERAL"
)

// LexError reports an invalid character or unterminated construct.
type LexError struct {
	Offset  int
	Line    int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d (offset %d): %s", e.Line, e.Offset, e.Message)
}
