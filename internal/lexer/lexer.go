// Package lexer scans jsque query expressions into tokens.
package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenRoot TokenType = iota
	TokenIdentifier
	TokenWildcard
	TokenSubOp
	TokenLeftBracket
	TokenRightBracket
	TokenIndex
)

func (t TokenType) String() string {
	switch t {
	case TokenRoot:
		return "root"
	case TokenIdentifier:
		return "identifier"
	case TokenWildcard:
		return "wildcard"
	case TokenSubOp:
		return "sub_op"
	case TokenLeftBracket:
		return "lbracket"
	case TokenRightBracket:
		return "rbracket"
	case TokenIndex:
		return "index"
	default:
		return "unknown"
	}
}

// Token is one lexeme of a query expression. Pos is the byte offset of the
// token's first character in the source.
type Token struct {
	Type TokenType
	Text string
	Pos  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Text)
}

// Tokenize scans a query expression into tokens. Whitespace separates
// tokens and is otherwise ignored. The scanner holds no state between
// calls.
func Tokenize(source string) ([]Token, error) {
	tokens := make([]Token, 0, len(source)/2)
	pos := 0

	for pos < len(source) {
		r, width := utf8.DecodeRuneInString(source[pos:])
		if unicode.IsSpace(r) {
			pos += width
			continue
		}

		switch {
		case r == '@':
			tokens = append(tokens, Token{Type: TokenRoot, Text: "@", Pos: pos})
			pos += width
		case r == '.':
			tokens = append(tokens, Token{Type: TokenSubOp, Text: ".", Pos: pos})
			pos += width
		case r == '*':
			tokens = append(tokens, Token{Type: TokenWildcard, Text: "*", Pos: pos})
			pos += width
		case r == '[':
			tokens = append(tokens, Token{Type: TokenLeftBracket, Text: "[", Pos: pos})
			pos += width
		case r == ']':
			tokens = append(tokens, Token{Type: TokenRightBracket, Text: "]", Pos: pos})
			pos += width
		case isIndexStart(r):
			literal, next := scanIndex(source, pos)
			tokens = append(tokens, Token{Type: TokenIndex, Text: literal, Pos: pos})
			pos = next
		case isIdentifierStart(r):
			literal, next := scanIdentifier(source, pos)
			tokens = append(tokens, Token{Type: TokenIdentifier, Text: literal, Pos: pos})
			pos = next
		default:
			return nil, lexicalError("unexpected character %q at position %d", r, pos)
		}
	}

	return tokens, nil
}

// scanIdentifier consumes runes until a terminator: '.', '[', or
// whitespace. Started on a terminator it yields the empty string.
func scanIdentifier(source string, start int) (string, int) {
	pos := start
	for pos < len(source) {
		r, width := utf8.DecodeRuneInString(source[pos:])
		if r == '.' || r == '[' || unicode.IsSpace(r) {
			break
		}
		pos += width
	}
	return source[start:pos], pos
}

// scanIndex consumes digits and '-' greedily. Validating the literal as an
// integer is the parser's job.
func scanIndex(source string, start int) (string, int) {
	pos := start
	for pos < len(source) && isIndexPart(rune(source[pos])) {
		pos++
	}
	return source[start:pos], pos
}

func isIdentifierStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIndexStart(r rune) bool {
	return r == '-' || (r >= '0' && r <= '9')
}

func isIndexPart(r rune) bool {
	return r == '-' || (r >= '0' && r <= '9')
}
