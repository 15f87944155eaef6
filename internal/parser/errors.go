package parser

import (
	"errors"
	"fmt"
)

// ErrSyntax indicates a token stream that does not form a query.
var ErrSyntax = errors.New("syntax error")

func syntaxError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}
