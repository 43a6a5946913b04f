package pgast

import (
	"fmt"
	"strings"

	"github.com/k0kubun/pgqb/internal/logging"
)

// DeleteStatement is the DELETE Query variant.
type DeleteStatement struct {
	table     Node
	where     Node
	returning []Node
	err       error
}

// DELETE starts a DELETE statement, optionally naming the target table
// immediately (equivalent to DELETE().FROM(table)).
func DELETE(table ...string) *DeleteStatement {
	s := &DeleteStatement{}
	if len(table) > 0 {
		s.FROM(table[0])
	}
	return s
}

// FROM sets the target table.
func (s *DeleteStatement) FROM(table string) *DeleteStatement {
	s.table = Col(table)
	return s
}

// WHERE accepts the shapes documented on buildCondition; repeated calls
// AND together. DELETE with no WHERE deletes every row, matching plain
// SQL semantics — callers that want a guard should add one explicitly.
func (s *DeleteStatement) WHERE(args ...any) *DeleteStatement {
	cond, err := buildCondition(args...)
	if err != nil {
		s.where = appendAnd(s.where, &errNode{err: err})
		return s
	}
	s.where = appendAnd(s.where, cond)
	return s
}

// RETURNING appends columns/expressions to the RETURNING list.
func (s *DeleteStatement) RETURNING(fields ...any) *DeleteStatement {
	nodes, err := normalizeFields(fields)
	if err != nil {
		s.err = err
		return s
	}
	s.returning = append(s.returning, nodes...)
	return s
}

// As wraps the statement so it renders with an alias when used as a
// subquery.
func (s *DeleteStatement) As(name string) Node { return asNode(s, name) }

func (s *DeleteStatement) CompileNode() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.table == nil {
		err := fmt.Errorf("%w: DELETE has no target table", ErrQueryShape)
		logging.QueryShapeFailure("DELETE", err)
		return "", err
	}

	tableStr, err := s.table.CompileNode()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("DELETE FROM ")
	b.WriteString(tableStr)

	if s.where != nil {
		sql, err := s.where.CompileNode()
		if err != nil {
			return "", err
		}
		b.WriteString(" WHERE ")
		b.WriteString(sql)
	}

	if len(s.returning) > 0 {
		sql, err := compileProjection(s.returning)
		if err != nil {
			return "", err
		}
		b.WriteString(" RETURNING ")
		b.WriteString(sql)
	}

	return b.String(), nil
}
