package pgast

import "github.com/k0kubun/pgqb/escape"

// valueNode carries any host scalar, array, or plain mapping, compiled
// through escape.Value.
type valueNode struct {
	v any
}

// Val wraps a host value (nil, bool, number, string, slice, or mapping)
// for escaping per spec.md §4.2.
func Val(v any) Expr {
	return &valueNode{v: v}
}

func (n *valueNode) CompileNode() (string, error) { return escape.Value(n.v) }
func (n *valueNode) As(name string) Node          { return asNode(n, name) }
func (n *valueNode) In(values ...any) Node        { return inNode(n, values...) }

// arrayValueNode always encodes v as an array: a non-empty slice renders
// as ARRAY[...], and a nil or empty slice as the empty array literal '{}'
// (where Value alone would render a bare nil as NULL).
type arrayValueNode struct {
	v any
}

// ArrayVal forces ARRAY literal encoding of v (expected to be a slice).
func ArrayVal(v any) Expr {
	return &arrayValueNode{v: v}
}

func (n *arrayValueNode) CompileNode() (string, error) {
	elems, err := n.elems()
	if err != nil {
		return "", err
	}
	return escape.Value(elems)
}

// csvElements renders the array's elements as a bare comma-separated
// list, used by the IN sugar (spec.md §4.4) which wants a parenthesized
// tuple rather than an ARRAY[...] constructor.
func (n *arrayValueNode) csvElements() (string, error) {
	elems, err := n.elems()
	if err != nil {
		return "", err
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

func (n *arrayValueNode) elems() ([]any, error) {
	if n.v == nil {
		return nil, nil
	}
	if elems, ok := n.v.([]any); ok {
		return elems, nil
	}
	// Reuse escape's reflection-based slice handling by round-tripping
	// through Value would lose per-element access, so fall back to a
	// small local conversion for concretely-typed slices.
	return reflectSliceElems(n.v)
}

func (n *arrayValueNode) As(name string) Node   { return asNode(n, name) }
func (n *arrayValueNode) In(values ...any) Node { return inNode(n, values...) }

// jsonValueNode forces JSON literal encoding of v, even when v is itself
// an array or scalar that Value would render differently.
type jsonValueNode struct {
	v any
}

// JSONVal forces JSON literal encoding of v.
func JSONVal(v any) Expr {
	return &jsonValueNode{v: v}
}

func (n *jsonValueNode) CompileNode() (string, error) { return escape.JSON(n.v) }
func (n *jsonValueNode) As(name string) Node          { return asNode(n, name) }
func (n *jsonValueNode) In(values ...any) Node        { return inNode(n, values...) }
