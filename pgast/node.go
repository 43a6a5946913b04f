// Package pgast is the query AST and compiler: factory functions build a
// tree of Nodes, and CompileNode walks that tree to PostgreSQL SQL text.
// The hierarchy is expressed the way the teacher's schema package
// expresses DDL elements (schema/ast.go) — plain structs with unexported
// fields and package-level factories — rather than a class hierarchy.
package pgast

import "errors"

// ErrQueryShape is returned when a builder is compiled in a state that
// cannot produce valid SQL (e.g. an INSERT with no target table).
var ErrQueryShape = errors.New("pgast: invalid query shape")

// Node is any element of the query AST.
type Node interface {
	// CompileNode renders the node to SQL text. It is deterministic and
	// side-effect free: compiling the same tree twice yields identical
	// output.
	CompileNode() (string, error)

	// As wraps the node so it is emitted with an `AS "name"` alias when
	// it appears in a projection context (a SELECT field or a RETURNING
	// column).
	As(name string) Node
}

// Expr is a Node that also supports the `IN` sugar from spec.md §4.4.
type Expr interface {
	Node
	In(values ...any) Node
}

func asNode(n Node, name string) Node {
	return &aliasedNode{inner: n, name: name}
}

func inNode(n Node, values ...any) Node {
	return &operatorNode{op: "IN", left: n, right: &arrayValueNode{v: values}}
}
