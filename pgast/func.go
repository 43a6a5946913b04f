package pgast

import "strings"

// funcNode is an aggregate or scalar function call, e.g. MIN(x).
type funcNode struct {
	name string
	args []Node
}

// Func builds a `name(arg1, arg2, ...)` call.
func Func(name string, args ...Node) Expr {
	return &funcNode{name: name, args: args}
}

// Min builds `MIN(arg)`.
func Min(arg Node) Expr { return Func("MIN", arg) }

// Max builds `MAX(arg)`.
func Max(arg Node) Expr { return Func("MAX", arg) }

func (n *funcNode) CompileNode() (string, error) {
	parts := make([]string, len(n.args))
	for i, a := range n.args {
		s, err := a.CompileNode()
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return n.name + "(" + strings.Join(parts, ", ") + ")", nil
}

func (n *funcNode) As(name string) Node   { return asNode(n, name) }
func (n *funcNode) In(values ...any) Node { return inNode(n, values...) }
