package pgast

import "github.com/k0kubun/pgqb/escape"

// precedence mirrors spec.md §4.5's table; higher binds tighter. AND/OR
// are included so compileOperand and logicalGroupNode can share one
// lookup when deciding whether a nested construct needs parentheses.
var precedence = map[string]int{
	"NOT": 6,
	"*":   5,
	"/":   5,
	"%":   5,
	"+":   4,
	"-":   4,
	"=":   3,
	"<>":  3,
	"<":   3,
	"<=":  3,
	">":   3,
	">=":  3,
	"IN":  2,
	"AND": 1,
	"OR":  0,
}

// operatorNode is a binary SQL operator, or a function-like binary
// construct such as IN.
type operatorNode struct {
	op          string
	left, right Node
}

// Op builds a binary operator node: `left op right`. IN is handled
// specially at compile time (spec.md §4.5): its right operand is flattened
// into a parenthesized, comma-separated list rather than rendered as
// `lhs IN ARRAY[...]`.
func Op(left Node, op string, right Node) Expr {
	return &operatorNode{op: op, left: left, right: right}
}

func (n *operatorNode) CompileNode() (string, error) {
	if n.op == "IN" {
		return n.compileIn()
	}

	leftStr, err := compileOperand(n.left, n.op)
	if err != nil {
		return "", err
	}
	rightStr, err := compileOperand(n.right, n.op)
	if err != nil {
		return "", err
	}
	return leftStr + " " + n.op + " " + rightStr, nil
}

func (n *operatorNode) compileIn() (string, error) {
	leftStr, err := compileOperand(n.left, "IN")
	if err != nil {
		return "", err
	}

	var inner string
	switch right := n.right.(type) {
	case *arrayValueNode:
		inner, err = right.csvElements()
	case *valueNode:
		inner, err = csvOfValue(right.v)
	default:
		inner, err = n.right.CompileNode()
	}
	if err != nil {
		return "", err
	}
	return leftStr + " IN (" + inner + ")", nil
}

// csvOfValue flattens a slice-shaped value (the common case for an IN
// right-hand side written as a bare Go slice rather than ArrayVal) into
// a comma-separated list of escaped elements. Non-slice values compile
// as a single-element list.
func csvOfValue(v any) (string, error) {
	elems, ok := v.([]any)
	if !ok {
		var err error
		elems, err = reflectSliceElems(v)
		if err != nil {
			s, verr := escape.Value(v)
			if verr != nil {
				return "", verr
			}
			return s, nil
		}
	}
	parts := make([]string, len(elems))
	for i, e := range elems {
		s, err := escape.Value(e)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out, nil
}

func (n *operatorNode) As(name string) Node   { return asNode(n, name) }
func (n *operatorNode) In(values ...any) Node { return inNode(n, values...) }

// compileOperand renders an operand of parentOp, parenthesizing it when
// it is itself an Operator or LogicalGroup of lower-or-equal precedence.
// Column/Value/Func operands never parenthesize; a SELECT or combined
// statement operand is always parenthesized as a subquery.
func compileOperand(n Node, parentOp string) (string, error) {
	s, err := n.CompileNode()
	if err != nil {
		return "", err
	}

	switch n.(type) {
	case *SelectStatement, *CombinedStatement:
		return "(" + s + ")", nil
	}

	parentPrec, ok := precedence[parentOp]
	if !ok {
		return s, nil
	}

	switch op := n.(type) {
	case *operatorNode:
		if childPrec, ok := precedence[op.op]; ok && childPrec <= parentPrec {
			return "(" + s + ")", nil
		}
	case *logicalGroupNode:
		childPrec := precedence["OR"]
		if op.kind == "AND" {
			childPrec = precedence["AND"]
		}
		if childPrec <= parentPrec {
			return "(" + s + ")", nil
		}
	}
	return s, nil
}

// In builds `lhs IN (v1, v2, ...)` from a literal value list, per
// spec.md §4.4.
func In(lhs Node, values ...any) Node {
	return inNode(lhs, values...)
}

// Like/ILike/IsNull/IsNotNull/Between are PostgreSQL predicate sugar the
// distilled spec doesn't name but any complete builder needs; see
// SPEC_FULL.md §6.

// Like builds `lhs LIKE pattern`.
func Like(lhs Node, pattern any) Node {
	return &operatorNode{op: "LIKE", left: lhs, right: valueOrNode(pattern)}
}

// ILike builds `lhs ILIKE pattern` (PostgreSQL's case-insensitive LIKE).
func ILike(lhs Node, pattern any) Node {
	return &operatorNode{op: "ILIKE", left: lhs, right: valueOrNode(pattern)}
}

// IsNull builds `lhs IS NULL`.
func IsNull(lhs Node) Node {
	return &postfixNode{op: "IS NULL", operand: lhs}
}

// IsNotNull builds `lhs IS NOT NULL`.
func IsNotNull(lhs Node) Node {
	return &postfixNode{op: "IS NOT NULL", operand: lhs}
}

// Between builds `lhs BETWEEN low AND high`.
func Between(lhs Node, low, high any) Node {
	return &betweenNode{operand: lhs, low: valueOrNode(low), high: valueOrNode(high)}
}

func valueOrNode(v any) Node {
	if n, ok := v.(Node); ok {
		return n
	}
	return Val(v)
}

type postfixNode struct {
	op      string
	operand Node
}

func (n *postfixNode) CompileNode() (string, error) {
	s, err := compileOperand(n.operand, "")
	if err != nil {
		return "", err
	}
	return s + " " + n.op, nil
}

func (n *postfixNode) As(name string) Node   { return asNode(n, name) }
func (n *postfixNode) In(values ...any) Node { return inNode(n, values...) }

type betweenNode struct {
	operand, low, high Node
}

func (n *betweenNode) CompileNode() (string, error) {
	s, err := compileOperand(n.operand, "")
	if err != nil {
		return "", err
	}
	lowStr, err := n.low.CompileNode()
	if err != nil {
		return "", err
	}
	highStr, err := n.high.CompileNode()
	if err != nil {
		return "", err
	}
	return s + " BETWEEN " + lowStr + " AND " + highStr, nil
}

func (n *betweenNode) As(name string) Node   { return asNode(n, name) }
func (n *betweenNode) In(values ...any) Node { return inNode(n, values...) }
