package ast

import (
	"fmt"

	yaml "github.com/goccy/go-yaml"
	yamlast "github.com/goccy/go-yaml/ast"

	"github.com/dsillman2000/jsque/internal/value"
)

// Tree is the interchange record of a term: a type tag, an optional scalar
// value, and child records. Value is nil exactly when the record carries
// no value key; defined values (including 0 and the empty string) are
// never nil.
type Tree struct {
	Type     string
	Value    any
	Children []*Tree
}

// ToTree converts a term into its interchange record.
func ToTree(t Term) *Tree {
	switch current := t.(type) {
	case *Root:
		return &Tree{Type: TypeRoot}
	case *Identifier:
		return &Tree{Type: TypeIdentifier, Value: current.Key}
	case *Index:
		return &Tree{Type: TypeIndex, Value: current.Number}
	case *IndexExpr:
		return &Tree{
			Type:     TypeIndexExpr,
			Children: []*Tree{ToTree(current.Sequence), ToTree(current.Item)},
		}
	case *MemberMapExpr:
		return &Tree{
			Type:     TypeMemberMap,
			Children: []*Tree{ToTree(current.Sequence)},
		}
	case *SubExpr:
		return &Tree{
			Type:     TypeSubExpr,
			Children: []*Tree{ToTree(current.Parent), ToTree(current.Child)},
		}
	case *ChildMapExpr:
		return &Tree{
			Type:     TypeChildMap,
			Children: []*Tree{ToTree(current.Parent)},
		}
	default:
		return nil
	}
}

// FromTree rebuilds a term from an interchange record, validating the type
// tag, child arity, and leaf value typing.
func FromTree(tree *Tree) (Term, error) {
	if tree == nil {
		return nil, structuralError("missing record")
	}

	switch tree.Type {
	case TypeRoot:
		if err := requireLeaf(tree); err != nil {
			return nil, err
		}
		if tree.Value != nil {
			return nil, structuralError("root takes no value")
		}
		return &Root{}, nil
	case TypeIdentifier:
		if err := requireLeaf(tree); err != nil {
			return nil, err
		}
		if tree.Value == nil {
			return nil, structuralError("identifier requires a value")
		}
		key, ok := tree.Value.(string)
		if !ok {
			return nil, structuralError("identifier requires a string value, got %T", tree.Value)
		}
		return &Identifier{Key: key}, nil
	case TypeIndex:
		if err := requireLeaf(tree); err != nil {
			return nil, err
		}
		if tree.Value == nil {
			return nil, structuralError("index requires a value")
		}
		number, ok := value.Int(tree.Value)
		if !ok {
			return nil, structuralError("index requires an integer value, got %T", tree.Value)
		}
		return &Index{Number: number}, nil
	case TypeIndexExpr:
		children, err := operatorChildren(tree, 2)
		if err != nil {
			return nil, err
		}
		return NewIndexExpr(children[0], children[1])
	case TypeMemberMap:
		children, err := operatorChildren(tree, 1)
		if err != nil {
			return nil, err
		}
		return &MemberMapExpr{Sequence: children[0]}, nil
	case TypeSubExpr:
		children, err := operatorChildren(tree, 2)
		if err != nil {
			return nil, err
		}
		return NewSubExpr(children[0], children[1])
	case TypeChildMap:
		children, err := operatorChildren(tree, 1)
		if err != nil {
			return nil, err
		}
		return &ChildMapExpr{Parent: children[0]}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedType, tree.Type)
	}
}

func requireLeaf(tree *Tree) error {
	if len(tree.Children) > 0 {
		return structuralError("%s takes no children", tree.Type)
	}
	return nil
}

func operatorChildren(tree *Tree, arity int) ([]Term, error) {
	if tree.Value != nil {
		return nil, structuralError("%s takes no value", tree.Type)
	}
	if len(tree.Children) != arity {
		return nil, structuralError("%s requires %d children, got %d", tree.Type, arity, len(tree.Children))
	}

	terms := make([]Term, 0, arity)
	for _, child := range tree.Children {
		term, err := FromTree(child)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, nil
}

// MarshalYAML emits record keys in canonical order: type, value, children.
// The value key appears whenever a value is defined, so falsy scalars like
// 0 survive the round trip.
func (t *Tree) MarshalYAML() (any, error) {
	out := yaml.MapSlice{{Key: "type", Value: t.Type}}
	if t.Value != nil {
		out = append(out, yaml.MapItem{Key: "value", Value: t.Value})
	}
	if len(t.Children) > 0 {
		out = append(out, yaml.MapItem{Key: "children", Value: t.Children})
	}
	return out, nil
}

// UnmarshalYAML accepts the mapping form produced by MarshalYAML. An
// explicit null value is treated the same as an omitted one; unknown keys
// are ignored.
func (t *Tree) UnmarshalYAML(node yamlast.Node) error {
	pairs, ok := mappingPairs(node)
	if !ok {
		return structuralError("record must be a mapping, got %T", node)
	}

	var parsed Tree
	seenType := false
	for _, pair := range pairs {
		keyNode, ok := pair.Key.(*yamlast.StringNode)
		if !ok {
			return structuralError("record keys must be strings, got %T", pair.Key)
		}

		switch keyNode.Value {
		case "type":
			strNode, ok := pair.Value.(*yamlast.StringNode)
			if !ok {
				return structuralError("type must be a string, got %T", pair.Value)
			}
			parsed.Type = strNode.Value
			seenType = true
		case "value":
			scalar, err := scalarValue(pair.Value)
			if err != nil {
				return err
			}
			parsed.Value = scalar
		case "children":
			seqNode, ok := pair.Value.(*yamlast.SequenceNode)
			if !ok {
				return structuralError("children must be a sequence, got %T", pair.Value)
			}
			children := make([]*Tree, 0, len(seqNode.Values))
			for _, item := range seqNode.Values {
				child := &Tree{}
				if err := child.UnmarshalYAML(item); err != nil {
					return err
				}
				children = append(children, child)
			}
			parsed.Children = children
		}
	}

	if !seenType {
		return structuralError("record missing type")
	}

	*t = parsed
	return nil
}

// mappingPairs tolerates goccy handing a single-pair mapping as a bare
// mapping value node.
func mappingPairs(node yamlast.Node) ([]*yamlast.MappingValueNode, bool) {
	switch n := node.(type) {
	case *yamlast.MappingNode:
		return n.Values, true
	case *yamlast.MappingValueNode:
		return []*yamlast.MappingValueNode{n}, true
	default:
		return nil, false
	}
}

func scalarValue(node yamlast.Node) (any, error) {
	switch n := node.(type) {
	case *yamlast.NullNode:
		return nil, nil
	case *yamlast.StringNode:
		return n.Value, nil
	case *yamlast.IntegerNode:
		switch v := n.Value.(type) {
		case int64:
			return v, nil
		case uint64:
			return v, nil
		default:
			return nil, structuralError("unexpected integer value type %T", n.Value)
		}
	default:
		return nil, structuralError("value must be a string or integer, got %T", node)
	}
}
