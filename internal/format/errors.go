package format

import (
	"errors"
	"fmt"
)

// ErrFormat indicates a term that cannot be rendered.
var ErrFormat = errors.New("format error")

func formatError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(format, args...))
}
