package shex

import (
	"fmt"
	"strings"
)

var keywords = map[string]bool{
	KeywordPrefix:       true,
	KeywordClosed:       true,
	KeywordWarning:      true,
	KeywordMinInclusive: true,
	KeywordMaxInclusive: true,
	KeywordMinLength:    true,
	KeywordMaxLength:    true,
	KeywordPattern:      true,
	KeywordIRI:          true,
	KeywordBNode:        true,
	KeywordLiteral:      true,
}

// lexer walks schema text byte by byte, tracking line numbers for
// error reporting.
type lexer struct {
	input string
	pos   int
	line  int
}

// Tokenize converts schema text into its token stream. The stream is
// always terminated by a TokenEOF token. It returns a *LexError when the
// input contains an unterminated string or IRI reference, or a character
// that cannot start any token.
func Tokenize(text string) ([]Token, error) {
	l := &lexer{input: text, line: 1}
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

func (l *lexer) next() (Token, error) {
	l.skipWhitespaceAndComments()
	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Offset: l.pos, Line: l.line}, nil
	}

	start, line := l.pos, l.line
	ch := l.input[l.pos]

	switch {
	case ch == '{':
		l.pos++
		return Token{Kind: TokenLBrace, Text: "{", Offset: start, Line: line}, nil
	case ch == '}':
		l.pos++
		return Token{Kind: TokenRBrace, Text: "}", Offset: start, Line: line}, nil
	case ch == ',':
		l.pos++
		return Token{Kind: TokenComma, Text: ",", Offset: start, Line: line}, nil
	case ch == '+' || ch == '?' || ch == '*':
		l.pos++
		return Token{Kind: TokenCardinality, Text: string(ch), Offset: start, Line: line}, nil
	case ch == '<':
		return l.lexIRIRef(start, line)
	case ch == '@':
		l.pos++
		if l.pos >= len(l.input) || l.input[l.pos] != '<' {
			return Token{}, &LexError{Offset: start, Line: line, Message: "expected '<' after '@' in shape reference"}
		}
		tok, err := l.lexIRIRef(l.pos, line)
		if err != nil {
			return Token{}, err
		}
		tok.Kind = TokenShapeRef
		tok.Offset = start
		return tok, nil
	case ch == '"':
		return l.lexString(start, line)
	case ch == '-' || isDigit(ch):
		return l.lexNumber(start, line)
	case isNameStart(ch):
		return l.lexName(start, line)
	default:
		return Token{}, &LexError{
			Offset:  start,
			Line:    line,
			Message: fmt.Sprintf("unexpected character %q", ch),
		}
	}
}

func (l *lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.input) {
		switch ch := l.input[l.pos]; {
		case ch == '\n':
			l.line++
			l.pos++
		case ch == ' ' || ch == '\t' || ch == '\r':
			l.pos++
		case ch == '#':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

// lexIRIRef consumes <...>, brackets included in the token text.
// IRI references may not span lines.
func (l *lexer) lexIRIRef(start, line int) (Token, error) {
	l.pos++ // consume '<'
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case '>':
			l.pos++
			return Token{Kind: TokenIRIRef, Text: l.input[start:l.pos], Offset: start, Line: line}, nil
		case '\n':
			return Token{}, &LexError{Offset: start, Line: line, Message: "unterminated IRI reference"}
		default:
			l.pos++
		}
	}
	return Token{}, &LexError{Offset: start, Line: line, Message: "unterminated IRI reference"}
}

// lexString consumes a double-quoted literal, handling the escape
// sequences \" \\ \n \t \r. The token text is the unescaped body.
func (l *lexer) lexString(start, line int) (Token, error) {
	l.pos++ // consume opening quote
	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch ch {
		case '"':
			l.pos++
			return Token{Kind: TokenString, Text: sb.String(), Offset: start, Line: line}, nil
		case '\\':
			if l.pos+1 >= len(l.input) {
				return Token{}, &LexError{Offset: start, Line: line, Message: "unterminated string literal"}
			}
			l.pos++
			switch esc := l.input[l.pos]; esc {
			case '"', '\\':
				sb.WriteByte(esc)
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			default:
				return Token{}, &LexError{
					Offset:  l.pos,
					Line:    l.line,
					Message: fmt.Sprintf("invalid escape sequence \\%c", esc),
				}
			}
			l.pos++
		case '\n':
			return Token{}, &LexError{Offset: start, Line: line, Message: "unterminated string literal"}
		default:
			sb.WriteByte(ch)
			l.pos++
		}
	}
	return Token{}, &LexError{Offset: start, Line: line, Message: "unterminated string literal"}
}

func (l *lexer) lexNumber(start, line int) (Token, error) {
	if l.input[l.pos] == '-' {
		l.pos++
		if l.pos >= len(l.input) || !isDigit(l.input[l.pos]) {
			return Token{}, &LexError{Offset: start, Line: line, Message: "expected digit after '-'"}
		}
	}
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	kind := TokenInteger
	if l.pos+1 < len(l.input) && l.input[l.pos] == '.' && isDigit(l.input[l.pos+1]) {
		kind = TokenDecimal
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	return Token{Kind: kind, Text: l.input[start:l.pos], Offset: start, Line: line}, nil
}

// lexName consumes a keyword or a prefixed name. Words containing a
// colon are prefixed names; bare words must match a keyword
// (case-insensitively) or the position is invalid.
func (l *lexer) lexName(start, line int) (Token, error) {
	for l.pos < len(l.input) && isNamePart(l.input[l.pos]) {
		l.pos++
	}
	text := l.input[start:l.pos]
	if strings.Contains(text, ":") {
		return Token{Kind: TokenPrefixedName, Text: text, Offset: start, Line: line}, nil
	}
	upper := strings.ToUpper(text)
	if keywords[upper] {
		return Token{Kind: TokenKeyword, Text: upper, Offset: start, Line: line}, nil
	}
	return Token{}, &LexError{
		Offset:  start,
		Line:    line,
		Message: fmt.Sprintf("unexpected identifier %q (not a keyword or prefixed name)", text),
	}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isNameStart(ch byte) bool {
	return ch == '_' || ch == ':' ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isNamePart(ch byte) bool {
	return isNameStart(ch) || isDigit(ch) || ch == '-' || ch == '.'
}
