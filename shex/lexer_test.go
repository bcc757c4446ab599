package shex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenize_PrefixDeclaration(t *testing.T) {
	tokens, err := Tokenize(`PREFIX ex: <http://example.org/>`)
	require.NoError(t, err)

	require.Len(t, tokens, 4) // PREFIX, ex:, <iri>, EOF
	assert.Equal(t, TokenKeyword, tokens[0].Kind)
	assert.Equal(t, KeywordPrefix, tokens[0].Text)
	assert.Equal(t, TokenPrefixedName, tokens[1].Kind)
	assert.Equal(t, "ex:", tokens[1].Text)
	assert.Equal(t, TokenIRIRef, tokens[2].Kind)
	assert.Equal(t, "<http://example.org/>", tokens[2].Text)
	assert.Equal(t, TokenEOF, tokens[3].Kind)
}

func TestTokenize_ShapeDefinition(t *testing.T) {
	tokens, err := Tokenize(`<PersonShape> { ex:age xsd:integer + } CLOSED`)
	require.NoError(t, err)

	assert.Equal(t, []TokenKind{
		TokenIRIRef, TokenLBrace,
		TokenPrefixedName, TokenPrefixedName, TokenCardinality,
		TokenRBrace, TokenKeyword, TokenEOF,
	}, kinds(tokens))
	assert.Equal(t, "+", tokens[4].Text)
	assert.Equal(t, KeywordClosed, tokens[6].Text)
}

func TestTokenize_FacetsAndLiterals(t *testing.T) {
	tokens, err := Tokenize(`MININCLUSIVE -5 MAXINCLUSIVE 1.5 PATTERN "a\"b\n"`)
	require.NoError(t, err)

	assert.Equal(t, []TokenKind{
		TokenKeyword, TokenInteger,
		TokenKeyword, TokenDecimal,
		TokenKeyword, TokenString, TokenEOF,
	}, kinds(tokens))
	assert.Equal(t, "-5", tokens[1].Text)
	assert.Equal(t, "1.5", tokens[3].Text)
	assert.Equal(t, "a\"b\n", tokens[5].Text, "escapes should be resolved")
}

func TestTokenize_ShapeRef(t *testing.T) {
	tokens, err := Tokenize(`@<OtherShape>`)
	require.NoError(t, err)

	require.Equal(t, TokenShapeRef, tokens[0].Kind)
	assert.Equal(t, "<OtherShape>", tokens[0].Text)
}

func TestTokenize_KeywordsCaseInsensitive(t *testing.T) {
	tokens, err := Tokenize(`closed Pattern iri`)
	require.NoError(t, err)

	assert.Equal(t, KeywordClosed, tokens[0].Text)
	assert.Equal(t, KeywordPattern, tokens[1].Text)
	assert.Equal(t, KeywordIRI, tokens[2].Text)
}

func TestTokenize_CommentsAndBlankLines(t *testing.T) {
	tokens, err := Tokenize("# a comment\n\n   \n{ } # trailing\n")
	require.NoError(t, err)

	assert.Equal(t, []TokenKind{TokenLBrace, TokenRBrace, TokenEOF}, kinds(tokens))
	assert.Equal(t, 4, tokens[0].Line)
}

func TestTokenize_LineAndOffsetTracking(t *testing.T) {
	tokens, err := Tokenize("{\n  }\n")
	require.NoError(t, err)

	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 0, tokens[0].Offset)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 4, tokens[1].Offset)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	_, err := Tokenize("\n\"never closed")

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 2, lexErr.Line)
	assert.Equal(t, 1, lexErr.Offset)
	assert.Contains(t, lexErr.Message, "unterminated string")
}

func TestTokenize_UnterminatedIRIRef(t *testing.T) {
	_, err := Tokenize("<http://example.org/broken")

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Contains(t, lexErr.Message, "unterminated IRI")
}

func TestTokenize_InvalidCharacter(t *testing.T) {
	_, err := Tokenize("{ } %")

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Contains(t, lexErr.Message, "unexpected character")
}

func TestTokenize_BareIdentifier(t *testing.T) {
	_, err := Tokenize("notakeyword")

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Contains(t, lexErr.Message, "notakeyword")
}

func TestTokenize_Empty(t *testing.T) {
	tokens, err := Tokenize("")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenEOF, tokens[0].Kind)
}
