package lexer

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []Token
	}{
		{
			name:   "root_only",
			source: "@",
			want: []Token{
				{Type: TokenRoot, Text: "@", Pos: 0},
			},
		},
		{
			name:   "sub_expression",
			source: "@.a",
			want: []Token{
				{Type: TokenRoot, Text: "@", Pos: 0},
				{Type: TokenSubOp, Text: ".", Pos: 1},
				{Type: TokenIdentifier, Text: "a", Pos: 2},
			},
		},
		{
			name:   "member_map",
			source: "@[*]",
			want: []Token{
				{Type: TokenRoot, Text: "@", Pos: 0},
				{Type: TokenLeftBracket, Text: "[", Pos: 1},
				{Type: TokenWildcard, Text: "*", Pos: 2},
				{Type: TokenRightBracket, Text: "]", Pos: 3},
			},
		},
		{
			name:   "negative_index",
			source: "@.a[-12]",
			want: []Token{
				{Type: TokenRoot, Text: "@", Pos: 0},
				{Type: TokenSubOp, Text: ".", Pos: 1},
				{Type: TokenIdentifier, Text: "a", Pos: 2},
				{Type: TokenLeftBracket, Text: "[", Pos: 3},
				{Type: TokenIndex, Text: "-12", Pos: 4},
				{Type: TokenRightBracket, Text: "]", Pos: 7},
			},
		},
		{
			name:   "whitespace_separates",
			source: " @ . a ",
			want: []Token{
				{Type: TokenRoot, Text: "@", Pos: 1},
				{Type: TokenSubOp, Text: ".", Pos: 3},
				{Type: TokenIdentifier, Text: "a", Pos: 5},
			},
		},
		{
			name:   "child_map",
			source: "@.*",
			want: []Token{
				{Type: TokenRoot, Text: "@", Pos: 0},
				{Type: TokenSubOp, Text: ".", Pos: 1},
				{Type: TokenWildcard, Text: "*", Pos: 2},
			},
		},
		{
			name:   "identifier_swallows_non_terminators",
			source: "@.a-b]c",
			want: []Token{
				{Type: TokenRoot, Text: "@", Pos: 0},
				{Type: TokenSubOp, Text: ".", Pos: 1},
				{Type: TokenIdentifier, Text: "a-b]c", Pos: 2},
			},
		},
		{
			name:   "identifier_stops_at_bracket",
			source: "@.abc[0]",
			want: []Token{
				{Type: TokenRoot, Text: "@", Pos: 0},
				{Type: TokenSubOp, Text: ".", Pos: 1},
				{Type: TokenIdentifier, Text: "abc", Pos: 2},
				{Type: TokenLeftBracket, Text: "[", Pos: 5},
				{Type: TokenIndex, Text: "0", Pos: 6},
				{Type: TokenRightBracket, Text: "]", Pos: 7},
			},
		},
		{
			name:   "greedy_index_scan",
			source: "@[1-2]",
			want: []Token{
				{Type: TokenRoot, Text: "@", Pos: 0},
				{Type: TokenLeftBracket, Text: "[", Pos: 1},
				{Type: TokenIndex, Text: "1-2", Pos: 2},
				{Type: TokenRightBracket, Text: "]", Pos: 5},
			},
		},
		{
			name:   "empty_source",
			source: "",
			want:   []Token{},
		},
		{
			name:   "non_ascii_identifier_rune",
			source: "@.naïve",
			want: []Token{
				{Type: TokenRoot, Text: "@", Pos: 0},
				{Type: TokenSubOp, Text: ".", Pos: 1},
				{Type: TokenIdentifier, Text: "naïve", Pos: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.source)
			if err != nil {
				t.Fatalf("Tokenize(%q) error = %v", tt.source, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  string
		wantMsg string
	}{
		{name: "hash", source: "@.a # b", wantMsg: `unexpected character '#' at position 4`},
		{name: "leading_symbol", source: "&", wantMsg: `unexpected character '&' at position 0`},
		{name: "identifier_cannot_start_with_digit_suffix", source: "@.a.=", wantMsg: `unexpected character '='`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.source)
			if err == nil {
				t.Fatalf("Tokenize(%q) expected error", tt.source)
			}
			if !errors.Is(err, ErrLexical) {
				t.Fatalf("Tokenize(%q) error = %v, want ErrLexical", tt.source, err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("Tokenize(%q) error = %q, want substring %q", tt.source, err, tt.wantMsg)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	token := Token{Type: TokenIdentifier, Text: "evo", Pos: 2}
	if got := token.String(); got != `identifier("evo")` {
		t.Fatalf("Token.String() = %q", got)
	}
}
