package pgast

import (
	"fmt"
	"strings"

	"github.com/k0kubun/pgqb/escape"
	"github.com/k0kubun/pgqb/internal/logging"
)

// UpdateStatement is the UPDATE Query variant.
type UpdateStatement struct {
	table     Node
	values    escape.Object
	where     Node
	returning []Node
	err       error
}

// UPDATE starts an UPDATE statement against the given table.
func UPDATE(table string) *UpdateStatement {
	return &UpdateStatement{table: Col(table)}
}

// VALUES sets the SET assignments. assignments is an escape.Object or
// map[string]any; each value is either a literal (escaped) or an
// expression Node (e.g. Op(Col("count"), "+", Val(1))).
func (s *UpdateStatement) VALUES(assignments any) *UpdateStatement {
	switch v := assignments.(type) {
	case escape.Object:
		s.values = append(s.values, v...)
	case map[string]any:
		s.values = append(s.values, orderedObject(v)...)
	default:
		s.err = fmt.Errorf("%w: UPDATE.VALUES expects a mapping, got %T", ErrQueryShape, assignments)
	}
	return s
}

// WHERE accepts the shapes documented on buildCondition; repeated calls
// AND together.
func (s *UpdateStatement) WHERE(args ...any) *UpdateStatement {
	cond, err := buildCondition(args...)
	if err != nil {
		s.where = appendAnd(s.where, &errNode{err: err})
		return s
	}
	s.where = appendAnd(s.where, cond)
	return s
}

// RETURNING appends columns/expressions to the RETURNING list.
func (s *UpdateStatement) RETURNING(fields ...any) *UpdateStatement {
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
func (s *UpdateStatement) As(name string) Node { return asNode(s, name) }

func (s *UpdateStatement) CompileNode() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.table == nil {
		err := fmt.Errorf("%w: UPDATE has no target table", ErrQueryShape)
		logging.QueryShapeFailure("UPDATE", err)
		return "", err
	}
	if len(s.values) == 0 {
		err := fmt.Errorf("%w: UPDATE has no assignments", ErrQueryShape)
		logging.QueryShapeFailure("UPDATE", err)
		return "", err
	}

	tableStr, err := s.table.CompileNode()
	if err != nil {
		return "", err
	}
	assignStr, err := compileAssignments(s.values)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(tableStr)
	b.WriteString(" SET ")
	b.WriteString(assignStr)

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
