// Package parser turns query expressions into syntax trees.
package parser

import (
	"strconv"

	"github.com/dsillman2000/jsque/internal/ast"
	"github.com/dsillman2000/jsque/internal/lexer"
)

type parserState struct {
	tokens []lexer.Token
	pos    int
}

// Parse scans and parses a query expression. Every query anchors at '@'
// and chains operations left to right; the parse is a single pass with no
// backtracking, so trees associate leftward: @.a[0] is (@.a)[0].
func Parse(source string) (ast.Term, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}

	state := parserState{tokens: tokens}
	if state.remaining() == 0 {
		return nil, syntaxError("expected root '@' in empty query")
	}
	if first := state.advance(); first.Type != lexer.TokenRoot {
		return nil, syntaxError("expected root '@', got %s at position %d", first, first.Pos)
	}

	var expr ast.Term = &ast.Root{}
	for state.remaining() > 0 {
		tok := state.advance()
		switch tok.Type {
		case lexer.TokenLeftBracket:
			expr, err = state.parseBracket(expr)
			if err != nil {
				return nil, err
			}
		case lexer.TokenSubOp:
			expr, err = state.parseSub(expr)
			if err != nil {
				return nil, err
			}
		default:
			return nil, syntaxError("unexpected token %s at position %d", tok, tok.Pos)
		}
	}

	return expr, nil
}

// parseBracket consumes the argument and closing bracket of seq[...]; the
// opening bracket is already consumed.
func (p *parserState) parseBracket(expr ast.Term) (ast.Term, error) {
	if p.remaining() < 2 {
		return nil, syntaxError("truncated index expression")
	}

	arg := p.advance()
	var out ast.Term
	switch arg.Type {
	case lexer.TokenIndex:
		number, err := strconv.Atoi(arg.Text)
		if err != nil {
			return nil, syntaxError("invalid index literal %q at position %d", arg.Text, arg.Pos)
		}
		out = &ast.IndexExpr{Sequence: expr, Item: &ast.Index{Number: number}}
	case lexer.TokenWildcard:
		out = &ast.MemberMapExpr{Sequence: expr}
	default:
		return nil, syntaxError("bad index argument %s at position %d", arg, arg.Pos)
	}

	if closing := p.advance(); closing.Type != lexer.TokenRightBracket {
		return nil, syntaxError("expected right bracket, got %s at position %d", closing, closing.Pos)
	}
	return out, nil
}

// parseSub consumes the argument of parent.<arg>; the dot is already
// consumed.
func (p *parserState) parseSub(expr ast.Term) (ast.Term, error) {
	if p.remaining() < 1 {
		return nil, syntaxError("truncated sub expression")
	}

	arg := p.advance()
	switch arg.Type {
	case lexer.TokenIdentifier:
		return &ast.SubExpr{Parent: expr, Child: &ast.Identifier{Key: arg.Text}}, nil
	case lexer.TokenWildcard:
		return &ast.ChildMapExpr{Parent: expr}, nil
	default:
		return nil, syntaxError("bad sub-expression argument %s at position %d", arg, arg.Pos)
	}
}

func (p *parserState) remaining() int {
	return len(p.tokens) - p.pos
}

func (p *parserState) advance() lexer.Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}
