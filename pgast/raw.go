package pgast

// rawNode is an opaque SQL fragment, spliced verbatim.
type rawNode struct {
	text string
}

// Raw wraps an already-valid SQL fragment so it can be embedded in a
// larger tree without further escaping.
func Raw(text string) Expr {
	return &rawNode{text: text}
}

func (n *rawNode) CompileNode() (string, error) { return n.text, nil }
func (n *rawNode) As(name string) Node          { return asNode(n, name) }
func (n *rawNode) In(values ...any) Node        { return inNode(n, values...) }
