package pipeline

import (
	"errors"
	"fmt"

	"github.com/dsillman2000/jsque/internal/value"
)

// ErrEvaluation indicates a value that cannot support a pipeline step.
// Lookups that merely find nothing are not errors; they yield null.
var ErrEvaluation = errors.New("evaluation error")

// ErrInternal indicates a term or step outside the closed pipeline model.
var ErrInternal = errors.New("internal error")

func evaluationError(step Pipe, current any) error {
	return fmt.Errorf("%w: cannot apply %s to %s value", ErrEvaluation, step, value.TypeName(current))
}

func internalError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...))
}
