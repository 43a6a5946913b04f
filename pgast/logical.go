package pgast

import (
	"strings"

	"github.com/k0kubun/pgqb/escape"
)

// logicalGroupNode is a left-associative AND/OR conjunction of two or
// more expressions. AND/OR use this dedicated node rather than
// operatorNode so the n-ary flattened form (a AND b AND c) doesn't need
// a chain of binary Operator nodes.
type logicalGroupNode struct {
	kind     string // "AND" or "OR"
	children []Node
}

// And builds `a AND b AND c ...`. A single child is returned unwrapped.
func And(children ...Node) Node {
	return logicalGroup("AND", children)
}

// Or builds `a OR b OR c ...`. A single child is returned unwrapped.
func Or(children ...Node) Node {
	return logicalGroup("OR", children)
}

func logicalGroup(kind string, children []Node) Node {
	if len(children) == 1 {
		return children[0]
	}
	return &logicalGroupNode{kind: kind, children: children}
}

func (n *logicalGroupNode) CompileNode() (string, error) {
	myPrec := precedence[n.kind]
	parts := make([]string, len(n.children))
	for i, c := range n.children {
		s, err := c.CompileNode()
		if err != nil {
			return "", err
		}
		switch child := c.(type) {
		case *logicalGroupNode:
			// Nested AND/OR groups always parenthesize, per spec.md §4.5.
			s = "(" + s + ")"
		case *operatorNode:
			if childPrec, ok := precedence[child.op]; ok && childPrec <= myPrec {
				s = "(" + s + ")"
			}
		}
		parts[i] = s
	}
	return strings.Join(parts, " "+n.kind+" "), nil
}

func (n *logicalGroupNode) As(name string) Node   { return asNode(n, name) }
func (n *logicalGroupNode) In(values ...any) Node { return inNode(n, values...) }

// andEquals builds an AND of `col = val` pairs from an ordered mapping,
// used by WHERE/HAVING's mapping shape (spec.md §4.6).
func andEquals(pairs escape.Object) (Node, error) {
	nodes := make([]Node, len(pairs))
	for i, p := range pairs {
		nodes[i] = Op(Col(p.Key), "=", valueOrNode(p.Value))
	}
	return And(nodes...), nil
}
