// Package ast defines the query syntax tree and its interchange form.
//
// A query is a chain of operations anchored at the subject root. The tree
// is closed: exactly three leaves (root, identifier, index) and four
// operators (idx_op, mmap_op, sub_op, cmap_op). Terms are immutable after
// construction and safe to share across goroutines.
package ast

// Type tags used in interchange records.
const (
	TypeRoot       = "root"
	TypeIdentifier = "identifier"
	TypeIndex      = "index"
	TypeIndexExpr  = "idx_op"
	TypeMemberMap  = "mmap_op"
	TypeSubExpr    = "sub_op"
	TypeChildMap   = "cmap_op"
)

// Term is one node of a parsed query. The set of implementations is
// closed; nothing outside this package satisfies it.
type Term interface {
	term()
}

// Root is the subject anchor '@'.
type Root struct{}

// Identifier is a mapping key. The empty key is legal.
type Identifier struct {
	Key string
}

// Index is a sequence position. Negative values count from the end.
type Index struct {
	Number int
}

// IndexExpr selects one member of a sequence expression: seq[n].
type IndexExpr struct {
	Sequence Term
	Item     *Index
}

// MemberMapExpr maps the rest of the query over a sequence's members:
// seq[*].
type MemberMapExpr struct {
	Sequence Term
}

// SubExpr descends into a mapping by key: parent.key.
type SubExpr struct {
	Parent Term
	Child  *Identifier
}

// ChildMapExpr maps the rest of the query over a mapping's values:
// parent.*.
type ChildMapExpr struct {
	Parent Term
}

func (*Root) term()          {}
func (*Identifier) term()    {}
func (*Index) term()         {}
func (*IndexExpr) term()     {}
func (*MemberMapExpr) term() {}
func (*SubExpr) term()       {}
func (*ChildMapExpr) term()  {}

// TypeOf reports the interchange type tag of a term.
func TypeOf(t Term) string {
	switch t.(type) {
	case *Root:
		return TypeRoot
	case *Identifier:
		return TypeIdentifier
	case *Index:
		return TypeIndex
	case *IndexExpr:
		return TypeIndexExpr
	case *MemberMapExpr:
		return TypeMemberMap
	case *SubExpr:
		return TypeSubExpr
	case *ChildMapExpr:
		return TypeChildMap
	default:
		return "unknown"
	}
}

// NewIndexExpr builds seq[item]. The item must be an index leaf.
func NewIndexExpr(sequence, item Term) (*IndexExpr, error) {
	index, ok := item.(*Index)
	if !ok {
		return nil, structuralError("idx_op item must be an index leaf, got %s", TypeOf(item))
	}
	return &IndexExpr{Sequence: sequence, Item: index}, nil
}

// NewSubExpr builds parent.child. The child must be an identifier leaf.
func NewSubExpr(parent, child Term) (*SubExpr, error) {
	identifier, ok := child.(*Identifier)
	if !ok {
		return nil, structuralError("sub_op child must be an identifier leaf, got %s", TypeOf(child))
	}
	return &SubExpr{Parent: parent, Child: identifier}, nil
}
