package lexer

import (
	"errors"
	"fmt"
)

// ErrLexical indicates a character the scanner cannot start a token with.
var ErrLexical = errors.New("lexical error")

func lexicalError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrLexical, fmt.Sprintf(format, args...))
}
