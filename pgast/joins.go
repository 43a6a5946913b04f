package pgast

import (
	"fmt"
	"strings"
)

// joinClause is one FROM-list JOIN: CROSS, INNER, LEFT OUTER, or RIGHT
// OUTER, with either a USING (columns) or ON (expression) condition —
// CROSS JOIN takes neither.
type joinClause struct {
	kind  string // "CROSS JOIN", "INNER JOIN", "LEFT OUTER JOIN", "RIGHT OUTER JOIN"
	table Node
	using []string
	on    Node
}

func newJoin(kind string, table any, cond any) (joinClause, error) {
	t, err := toTableNode(table)
	if err != nil {
		return joinClause{}, err
	}
	j := joinClause{kind: kind, table: t}
	if cond == nil {
		return j, nil
	}
	switch c := cond.(type) {
	case []string:
		j.using = c
	case Node:
		j.on = c
	default:
		return joinClause{}, fmt.Errorf("%w: JOIN condition must be a []string (USING) or Node (ON), got %T", ErrQueryShape, cond)
	}
	return j, nil
}

func (j joinClause) compile() (string, error) {
	tableStr, err := j.table.CompileNode()
	if err != nil {
		return "", err
	}
	switch {
	case len(j.using) > 0:
		cols := make([]string, len(j.using))
		for i, c := range j.using {
			q, err := Col(c).CompileNode()
			if err != nil {
				return "", err
			}
			cols[i] = q
		}
		return j.kind + " " + tableStr + " USING (" + strings.Join(cols, ", ") + ")", nil
	case j.on != nil:
		onStr, err := j.on.CompileNode()
		if err != nil {
			return "", err
		}
		return j.kind + " " + tableStr + " ON " + onStr, nil
	default:
		return j.kind + " " + tableStr, nil
	}
}

// toTableNode accepts a bare table name or a Node. A Node naming a full
// statement (SELECT/Combined, optionally aliased) is wrapped so it
// compiles as a parenthesized, aliased subquery rather than splicing its
// SQL in bare — the one place a table source and a projected expression
// render differently for the same aliasedNode wrapper.
func toTableNode(v any) (Node, error) {
	switch t := v.(type) {
	case Node:
		return &subqueryTableNode{inner: t}, nil
	case string:
		return Col(t), nil
	default:
		return nil, fmt.Errorf("%w: table reference must be a string or Node, got %T", ErrQueryShape, v)
	}
}

// subqueryTableNode renders a Node used as a FROM/JOIN table source:
// `(SELECT ...)` or, if aliased, `(SELECT ...) AS "alias"`. Any other
// Node renders bare, followed by `AS "alias"` when aliased.
type subqueryTableNode struct {
	inner Node
}

func (n *subqueryTableNode) CompileNode() (string, error) {
	sql, alias, err := projected(n.inner)
	if err != nil {
		return "", err
	}
	inner := n.inner
	if a, ok := inner.(*aliasedNode); ok {
		inner = a.inner
	}
	switch inner.(type) {
	case *SelectStatement, *CombinedStatement:
		sql = "(" + sql + ")"
	}
	if alias != "" {
		quoted, err := Col(alias).CompileNode()
		if err != nil {
			return "", err
		}
		sql += " AS " + quoted
	}
	return sql, nil
}

func (n *subqueryTableNode) As(name string) Node { return asNode(n.inner, name) }
func (n *subqueryTableNode) In(values ...any) Node {
	return inNode(n, values...)
}
