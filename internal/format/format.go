// Package format renders query trees back to surface syntax.
package format

import (
	"strconv"

	"github.com/dsillman2000/jsque/internal/ast"
)

// Format renders a term as its canonical query string. Formatting a
// parsed query reproduces the canonical spelling, and parsing a formatted
// term rebuilds a structurally identical tree.
func Format(term ast.Term) (string, error) {
	switch current := term.(type) {
	case *ast.Root:
		return "@", nil
	case *ast.Identifier:
		return current.Key, nil
	case *ast.Index:
		return strconv.Itoa(current.Number), nil
	case *ast.IndexExpr:
		seq, err := Format(current.Sequence)
		if err != nil {
			return "", err
		}
		return seq + "[" + strconv.Itoa(current.Item.Number) + "]", nil
	case *ast.MemberMapExpr:
		seq, err := Format(current.Sequence)
		if err != nil {
			return "", err
		}
		return seq + "[*]", nil
	case *ast.SubExpr:
		parent, err := Format(current.Parent)
		if err != nil {
			return "", err
		}
		return parent + "." + current.Child.Key, nil
	case *ast.ChildMapExpr:
		parent, err := Format(current.Parent)
		if err != nil {
			return "", err
		}
		return parent + ".*", nil
	default:
		return "", formatError("unexpected term %s", ast.TypeOf(term))
	}
}
