package format

import (
	"strconv"
	"strings"

	"github.com/theory/jsonpath"

	"github.com/dsillman2000/jsque/internal/ast"
)

// JSONPath renders a term as an equivalent RFC 9535 JSONPath expression:
// the root anchors at '$', [n] and [*] carry over directly, .key uses the
// member-name shorthand when the key allows it and a bracket-quoted name
// otherwise, and .* becomes the wildcard member selector. The rendering is
// checked against the reference grammar before it is returned.
func JSONPath(term ast.Term) (string, error) {
	rendered, err := renderJSONPath(term)
	if err != nil {
		return "", err
	}
	if _, err := jsonpath.Parse(rendered); err != nil {
		return "", formatError("no JSONPath equivalent %q: %v", rendered, err)
	}
	return rendered, nil
}

func renderJSONPath(term ast.Term) (string, error) {
	switch current := term.(type) {
	case *ast.Root:
		return "$", nil
	case *ast.IndexExpr:
		seq, err := renderJSONPath(current.Sequence)
		if err != nil {
			return "", err
		}
		return seq + "[" + strconv.Itoa(current.Item.Number) + "]", nil
	case *ast.MemberMapExpr:
		seq, err := renderJSONPath(current.Sequence)
		if err != nil {
			return "", err
		}
		return seq + "[*]", nil
	case *ast.SubExpr:
		parent, err := renderJSONPath(current.Parent)
		if err != nil {
			return "", err
		}
		key := current.Child.Key
		if memberShorthand(key) {
			return parent + "." + key, nil
		}
		return parent + quoteMember(key), nil
	case *ast.ChildMapExpr:
		parent, err := renderJSONPath(current.Parent)
		if err != nil {
			return "", err
		}
		return parent + ".*", nil
	default:
		return "", formatError("unexpected term %s", ast.TypeOf(term))
	}
}

// memberShorthand reports whether key fits RFC 9535 member-name-shorthand:
// an ASCII letter or '_' followed by letters, digits, or '_'.
func memberShorthand(key string) bool {
	for i, r := range key {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return key != ""
}

func quoteMember(key string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(key)
	return "['" + escaped + "']"
}
