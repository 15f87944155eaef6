package ast

import (
	"errors"
	"fmt"
)

// ErrStructural indicates a record that violates the tree shape: wrong
// child arity, a value on an operator, or a misplaced leaf type.
var ErrStructural = errors.New("structural error")

// ErrUnrecognizedType indicates an unknown type tag in a record.
var ErrUnrecognizedType = errors.New("unrecognized term type")

func structuralError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrStructural, fmt.Sprintf(format, args...))
}
