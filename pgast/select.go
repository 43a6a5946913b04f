package pgast

import (
	"strings"

	"github.com/k0kubun/pgqb/escape"
)

// cteClause is one WITH name AS (query) entry, SPEC_FULL.md §6's common
// table expression extension.
type cteClause struct {
	name  string
	query Node
}

// SelectStatement is the SELECT Query variant. Its methods return the
// same *SelectStatement so calls compose (spec.md §4.6/§9).
type SelectStatement struct {
	ctes     []cteClause
	distinct bool
	fields   []Node
	from     []Node
	joins    []joinClause
	where    Node
	groupBy  []Node
	having   Node
	orderBy  []orderItem
	offset   *int
	limit    *int
}

// SELECT starts a SELECT statement with the given projection fields (see
// normalizeField for accepted shapes). No fields means `SELECT *`.
func SELECT(fields ...any) *SelectStatement {
	s := &SelectStatement{}
	s.FIELD(fields...)
	return s
}

// WITH prefixes a common table expression onto the statement.
func (s *SelectStatement) WITH(name string, query Node) *SelectStatement {
	s.ctes = append(s.ctes, cteClause{name: name, query: query})
	return s
}

// FIELD appends one or more fields to the projection list.
func (s *SelectStatement) FIELD(fields ...any) *SelectStatement {
	if len(fields) == 0 {
		return s
	}
	nodes, err := normalizeFields(fields)
	if err != nil {
		s.fields = append(s.fields, &errNode{err: err})
		return s
	}
	s.fields = append(s.fields, nodes...)
	return s
}

// DISTINCT sets the DISTINCT flag, optionally replacing the field list.
func (s *SelectStatement) DISTINCT(fields ...any) *SelectStatement {
	s.distinct = true
	if len(fields) > 0 {
		s.fields = nil
		s.FIELD(fields...)
	}
	return s
}

// FROM appends FROM-list tables. Two or more tables compose as CROSS
// JOIN, per spec.md §4.6.
func (s *SelectStatement) FROM(tables ...any) *SelectStatement {
	for _, t := range tables {
		n, err := toTableNode(t)
		if err != nil {
			s.from = append(s.from, &errNode{err: err})
			continue
		}
		s.from = append(s.from, n)
	}
	return s
}

// WHERE accepts the shapes documented on buildCondition; repeated calls
// AND together.
func (s *SelectStatement) WHERE(args ...any) *SelectStatement {
	cond, err := buildCondition(args...)
	if err != nil {
		s.where = appendAnd(s.where, &errNode{err: err})
		return s
	}
	s.where = appendAnd(s.where, cond)
	return s
}

// HAVING accepts the same shapes as WHERE; repeated calls AND together.
func (s *SelectStatement) HAVING(args ...any) *SelectStatement {
	cond, err := buildCondition(args...)
	if err != nil {
		s.having = appendAnd(s.having, &errNode{err: err})
		return s
	}
	s.having = appendAnd(s.having, cond)
	return s
}

// GROUP_BY appends grouping expressions.
func (s *SelectStatement) GROUP_BY(exprs ...any) *SelectStatement {
	nodes, err := normalizeFields(exprs)
	if err != nil {
		s.groupBy = append(s.groupBy, &errNode{err: err})
		return s
	}
	s.groupBy = append(s.groupBy, nodes...)
	return s
}

// ORDER_BY appends one ordering expression; rest may supply a direction
// (ASC/DESC) and a nulls placement (NULLS FIRST/NULLS LAST).
func (s *SelectStatement) ORDER_BY(expr any, rest ...string) *SelectStatement {
	item, err := newOrderItem(expr, rest...)
	if err != nil {
		s.orderBy = append(s.orderBy, orderItem{expr: &errNode{err: err}})
		return s
	}
	s.orderBy = append(s.orderBy, item)
	return s
}

// OFFSET sets the OFFSET clause.
func (s *SelectStatement) OFFSET(n int) *SelectStatement {
	s.offset = intPtr(n)
	return s
}

// LIMIT sets the LIMIT clause.
func (s *SelectStatement) LIMIT(n int) *SelectStatement {
	s.limit = intPtr(n)
	return s
}

// CROSS_JOIN appends a CROSS JOIN.
func (s *SelectStatement) CROSS_JOIN(table any) *SelectStatement {
	j, err := newJoin("CROSS JOIN", table, nil)
	return s.appendJoin(j, err)
}

// INNER_JOIN appends an INNER JOIN with a USING column list or ON
// expression condition.
func (s *SelectStatement) INNER_JOIN(table any, cond any) *SelectStatement {
	j, err := newJoin("INNER JOIN", table, cond)
	return s.appendJoin(j, err)
}

// LEFT_JOIN appends a LEFT OUTER JOIN.
func (s *SelectStatement) LEFT_JOIN(table any, cond any) *SelectStatement {
	j, err := newJoin("LEFT OUTER JOIN", table, cond)
	return s.appendJoin(j, err)
}

// RIGHT_JOIN appends a RIGHT OUTER JOIN.
func (s *SelectStatement) RIGHT_JOIN(table any, cond any) *SelectStatement {
	j, err := newJoin("RIGHT OUTER JOIN", table, cond)
	return s.appendJoin(j, err)
}

func (s *SelectStatement) appendJoin(j joinClause, err error) *SelectStatement {
	if err != nil {
		s.joins = append(s.joins, joinClause{kind: "", table: &errNode{err: err}})
		return s
	}
	s.joins = append(s.joins, j)
	return s
}

// As wraps the statement so it renders with an alias when used as a
// subquery in a FROM list or projection.
func (s *SelectStatement) As(name string) Node { return asNode(s, name) }

// CompileNode renders the full SELECT statement.
func (s *SelectStatement) CompileNode() (string, error) {
	var b strings.Builder

	if len(s.ctes) > 0 {
		parts := make([]string, len(s.ctes))
		for i, c := range s.ctes {
			sql, err := c.query.CompileNode()
			if err != nil {
				return "", err
			}
			quoted, err := escape.Identifier(c.name)
			if err != nil {
				return "", err
			}
			parts[i] = quoted + " AS (" + sql + ")"
		}
		b.WriteString("WITH ")
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(" ")
	}

	b.WriteString("SELECT ")
	if s.distinct {
		b.WriteString("DISTINCT ")
	}

	if len(s.fields) == 0 {
		b.WriteString("*")
	} else {
		projStr, err := compileProjection(s.fields)
		if err != nil {
			return "", err
		}
		b.WriteString(projStr)
	}

	if len(s.from) > 0 {
		fromParts := make([]string, len(s.from))
		for i, f := range s.from {
			sql, err := f.CompileNode()
			if err != nil {
				return "", err
			}
			fromParts[i] = sql
		}
		b.WriteString(" FROM ")
		b.WriteString(strings.Join(fromParts, " CROSS JOIN "))
	}

	for _, j := range s.joins {
		sql, err := j.compile()
		if err != nil {
			return "", err
		}
		b.WriteString(" ")
		b.WriteString(sql)
	}

	if s.where != nil {
		sql, err := s.where.CompileNode()
		if err != nil {
			return "", err
		}
		b.WriteString(" WHERE ")
		b.WriteString(sql)
	}

	if len(s.groupBy) > 0 {
		parts := make([]string, len(s.groupBy))
		for i, g := range s.groupBy {
			sql, err := g.CompileNode()
			if err != nil {
				return "", err
			}
			parts[i] = sql
		}
		b.WriteString(" GROUP BY ")
		b.WriteString(strings.Join(parts, ", "))
	}

	if s.having != nil {
		sql, err := s.having.CompileNode()
		if err != nil {
			return "", err
		}
		b.WriteString(" HAVING ")
		b.WriteString(sql)
	}

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
