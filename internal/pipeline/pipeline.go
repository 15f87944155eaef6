// Package pipeline compiles query trees into evaluation plans and runs
// them against decoded documents.
package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dsillman2000/jsque/internal/ast"
	"github.com/dsillman2000/jsque/internal/value"
)

// Pipe is one evaluation step. Injections carry one value to exactly one
// value; surjections explode one value into many and map the remaining
// pipeline over each, nesting the result one sequence level deeper. The
// set of implementations is closed.
type Pipe interface {
	fmt.Stringer
	pipe()
}

type injection interface {
	Pipe
	eval(current any) (any, error)
}

type surjection interface {
	Pipe
	explode(current any) ([]any, error)
}

// Index selects a sequence member, a character of a string, or an
// integer-keyed mapping entry. Negative positions count from the end.
type Index struct {
	Number int
}

// Sub selects a mapping entry by string key.
type Sub struct {
	Key string
}

// MemberMap explodes a sequence into its members, a string into its
// characters, or a mapping into its keys.
type MemberMap struct{}

// ChildMap explodes a mapping into its values.
type ChildMap struct{}

func (Index) pipe()     {}
func (Sub) pipe()       {}
func (MemberMap) pipe() {}
func (ChildMap) pipe()  {}

func (p Index) String() string   { return "index[" + strconv.Itoa(p.Number) + "]" }
func (p Sub) String() string     { return "sub[" + p.Key + "]" }
func (MemberMap) String() string { return "member_map" }
func (ChildMap) String() string  { return "child_map" }

// Pipeline is an ordered sequence of steps. A compiled pipeline holds no
// evaluation state and is safe for concurrent use.
type Pipeline []Pipe

// String renders the step chain for diagnostics.
func (p Pipeline) String() string {
	if len(p) == 0 {
		return "identity"
	}
	parts := make([]string, 0, len(p))
	for _, step := range p {
		parts = append(parts, step.String())
	}
	return strings.Join(parts, " | ")
}

// Compile lowers a query tree into a pipeline. The root compiles to the
// empty pipeline, which evaluates to the subject itself; operators append
// one step each, in query order.
func Compile(term ast.Term) (Pipeline, error) {
	switch current := term.(type) {
	case *ast.Root:
		return Pipeline{}, nil
	case *ast.IndexExpr:
		rest, err := Compile(current.Sequence)
		if err != nil {
			return nil, err
		}
		return append(rest, Index{Number: current.Item.Number}), nil
	case *ast.MemberMapExpr:
		rest, err := Compile(current.Sequence)
		if err != nil {
			return nil, err
		}
		return append(rest, MemberMap{}), nil
	case *ast.SubExpr:
		rest, err := Compile(current.Parent)
		if err != nil {
			return nil, err
		}
		return append(rest, Sub{Key: current.Child.Key}), nil
	case *ast.ChildMapExpr:
		rest, err := Compile(current.Parent)
		if err != nil {
			return nil, err
		}
		return append(rest, ChildMap{}), nil
	default:
		return nil, internalError("unexpected term %s", ast.TypeOf(term))
	}
}

// Eval runs the pipeline against a subject. In-capability lookups that
// find nothing yield nil, the absent marker; values that cannot support a
// step at all yield an error wrapping ErrEvaluation.
func (p Pipeline) Eval(subject any) (any, error) {
	current := subject
	for i, step := range p {
		switch s := step.(type) {
		case injection:
			next, err := s.eval(current)
			if err != nil {
				return nil, err
			}
			current = next
		case surjection:
			elements, err := s.explode(current)
			if err != nil {
				return nil, err
			}
			rest := p[i+1:]
			out := make([]any, 0, len(elements))
			for _, element := range elements {
				result, err := rest.Eval(element)
				if err != nil {
					return nil, err
				}
				out = append(out, result)
			}
			return out, nil
		default:
			return nil, internalError("step %s is neither injection nor surjection", step)
		}
	}
	return current, nil
}

func (s Index) eval(current any) (any, error) {
	switch value.KindOf(current) {
	case value.Array:
		items := current.([]any)
		idx := s.Number
		if idx < 0 {
			idx += len(items)
		}
		if idx < 0 || idx >= len(items) {
			return nil, nil
		}
		return items[idx], nil
	case value.String:
		runes := []rune(current.(string))
		idx := s.Number
		if idx < 0 {
			idx += len(runes)
		}
		if idx < 0 || idx >= len(runes) {
			return nil, nil
		}
		return string(runes[idx]), nil
	case value.Object:
		found, ok := value.Index(current, s.Number)
		if !ok {
			return nil, nil
		}
		return found, nil
	default:
		return nil, evaluationError(s, current)
	}
}

func (s Sub) eval(current any) (any, error) {
	switch value.KindOf(current) {
	case value.Object:
		found, ok := value.Sub(current, s.Key)
		if !ok {
			return nil, nil
		}
		return found, nil
	case value.Array, value.String:
		// lookup-capable shapes without string keys always miss
		return nil, nil
	default:
		return nil, evaluationError(s, current)
	}
}

func (s MemberMap) explode(current any) ([]any, error) {
	switch value.KindOf(current) {
	case value.Array:
		return current.([]any), nil
	case value.String:
		runes := []rune(current.(string))
		out := make([]any, 0, len(runes))
		for _, r := range runes {
			out = append(out, string(r))
		}
		return out, nil
	case value.Object:
		keys, _ := value.Keys(current)
		return keys, nil
	default:
		return nil, evaluationError(s, current)
	}
}

func (s ChildMap) explode(current any) ([]any, error) {
	if value.KindOf(current) != value.Object {
		return nil, evaluationError(s, current)
	}
	values, _ := value.Values(current)
	return values, nil
}
