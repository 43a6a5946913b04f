package pgast

import "github.com/k0kubun/pgqb/escape"

// columnNode is a 1..N segment column or path reference, e.g. "t"."col"
// or "t".*. Empty segments are tolerated and dropped by escape.Identifier.
type columnNode struct {
	parts []string
}

// Col builds a column/path reference from one or more dotted segments.
// A segment equal to "*" is a wildcard and is never quoted.
func Col(parts ...string) Expr {
	return &columnNode{parts: parts}
}

func (n *columnNode) CompileNode() (string, error) {
	return escape.Identifier(n.parts...)
}

func (n *columnNode) As(name string) Node   { return asNode(n, name) }
func (n *columnNode) In(values ...any) Node { return inNode(n, values...) }
