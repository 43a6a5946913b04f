package pgast

import (
	"fmt"
	"strings"

	"github.com/k0kubun/pgqb/internal/logging"
)

// CombinedStatement is a UNION/INTERSECT/EXCEPT tree (spec.md §4.7). Each
// operand may itself be a *CombinedStatement, in which case it renders
// parenthesized regardless of position — this is the one rule that makes
// both of spec.md's nesting examples fall out of the same code path
// instead of needing a left/right special case.
type CombinedStatement struct {
	op      string
	members []Node
	orderBy []orderItem
	offset  *int
	limit   *int
}

func combine(op string, members ...Node) *CombinedStatement {
	return &CombinedStatement{op: op, members: members}
}

// UNION combines statements with UNION (duplicate rows removed).
func UNION(members ...Node) *CombinedStatement { return combine("UNION", members...) }

// UNION_ALL combines statements with UNION ALL (duplicates kept).
func UNION_ALL(members ...Node) *CombinedStatement { return combine("UNION ALL", members...) }

// INTERSECT combines statements with INTERSECT.
func INTERSECT(members ...Node) *CombinedStatement { return combine("INTERSECT", members...) }

// INTERSECT_ALL combines statements with INTERSECT ALL.
func INTERSECT_ALL(members ...Node) *CombinedStatement { return combine("INTERSECT ALL", members...) }

// EXCEPT combines statements with EXCEPT.
func EXCEPT(members ...Node) *CombinedStatement { return combine("EXCEPT", members...) }

// EXCEPT_ALL combines statements with EXCEPT ALL.
func EXCEPT_ALL(members ...Node) *CombinedStatement { return combine("EXCEPT ALL", members...) }

// ORDER_BY appends one ordering expression to the combined result,
// applying to the statement as a whole rather than to any one member.
func (s *CombinedStatement) ORDER_BY(expr any, rest ...string) *CombinedStatement {
	item, err := newOrderItem(expr, rest...)
	if err != nil {
		s.orderBy = append(s.orderBy, orderItem{expr: &errNode{err: err}})
		return s
	}
	s.orderBy = append(s.orderBy, item)
	return s
}

// OFFSET sets the OFFSET clause on the combined result.
func (s *CombinedStatement) OFFSET(n int) *CombinedStatement {
	s.offset = intPtr(n)
	return s
}

// LIMIT sets the LIMIT clause on the combined result.
func (s *CombinedStatement) LIMIT(n int) *CombinedStatement {
	s.limit = intPtr(n)
	return s
}

// As wraps the statement so it renders with an alias when used as a
// subquery.
func (s *CombinedStatement) As(name string) Node { return asNode(s, name) }

func (s *CombinedStatement) CompileNode() (string, error) {
	if len(s.members) == 0 {
		err := fmt.Errorf("%w: %s has no members", ErrQueryShape, s.op)
		logging.QueryShapeFailure(s.op, err)
		return "", err
	}
	if len(s.members) == 1 {
		return s.members[0].CompileNode()
	}

	parts := make([]string, len(s.members))
	for i, m := range s.members {
		sql, err := m.CompileNode()
		if err != nil {
			return "", err
		}
		if _, ok := m.(*CombinedStatement); ok {
			sql = "(" + sql + ")"
		}
		parts[i] = sql
	}

	var b strings.Builder
	b.WriteString(strings.Join(parts, " "+s.op+" "))

	if len(s.orderBy) > 0 {
		sql, err := compileOrderBy(s.orderBy)
		if err != nil {
			return "", err
		}
		b.WriteString(" ")
		b.WriteString(sql)
	}

	if tail := compileOffsetLimit(s.offset, s.limit); tail != "" {
		b.WriteString(" ")
		b.WriteString(tail)
	}

	return b.String(), nil
}
