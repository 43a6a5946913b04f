package pgast

import (
	"fmt"
	"strings"

	"github.com/k0kubun/pgqb/escape"
	"github.com/k0kubun/pgqb/internal/logging"
)

// InsertStatement is the INSERT Query variant.
type InsertStatement struct {
	table      Node
	columns    []string
	rows       []escape.Object
	onConflict *onConflictClause
	returning  []Node
	err        error
}

// INSERT starts an INSERT statement, optionally naming the target table
// immediately (equivalent to INSERT().INTO(table)).
func INSERT(table ...string) *InsertStatement {
	s := &InsertStatement{}
	if len(table) > 0 {
		s.INTO(table[0])
	}
	return s
}

// INTO sets the target table.
func (s *InsertStatement) INTO(table string) *InsertStatement {
	s.table = Col(table)
	return s
}

// VALUES appends one row (an escape.Object or map[string]any) or a slice
// of rows. Every row must share the same column order; when rows is a
// plain map, its keys are sorted for determinism (see orderedObject).
func (s *InsertStatement) VALUES(rows any) *InsertStatement {
	normalized, err := normalizeRows(rows)
	if err != nil {
		s.err = err
		return s
	}
	for _, row := range normalized {
		cols := columnsOf(row)
		if len(s.rows) == 0 {
			s.columns = cols
		} else if !sameColumns(s.columns, cols) {
			s.err = fmt.Errorf("%w: INSERT rows must share identical column order", ErrQueryShape)
			return s
		}
		s.rows = append(s.rows, row)
	}
	return s
}

// ON_CONFLICT starts an ON CONFLICT clause over the given conflict target
// columns (SPEC_FULL.md §6). Pass no columns for a bare ON CONFLICT.
func (s *InsertStatement) ON_CONFLICT(cols ...string) *OnConflictBuilder {
	c := &onConflictClause{columns: cols}
	s.onConflict = c
	return &OnConflictBuilder{stmt: s, clause: c}
}

// RETURNING appends columns/expressions to the RETURNING list.
func (s *InsertStatement) RETURNING(fields ...any) *InsertStatement {
	nodes, err := normalizeFields(fields)
	if err != nil {
		s.err = err
		return s
	}
	s.returning = append(s.returning, nodes...)
	return s
}

// As wraps the statement so it renders with an alias when used as a
// subquery (e.g. INSERT ... RETURNING used inside a WITH).
func (s *InsertStatement) As(name string) Node { return asNode(s, name) }

// OnConflictBuilder configures the DO NOTHING / DO UPDATE arm of an
// ON CONFLICT clause.
type OnConflictBuilder struct {
	stmt   *InsertStatement
	clause *onConflictClause
}

// DO_NOTHING finishes the clause as `ON CONFLICT ... DO NOTHING`.
func (b *OnConflictBuilder) DO_NOTHING() *InsertStatement {
	b.clause.doNothing = true
	return b.stmt
}

// DO_UPDATE finishes the clause as `ON CONFLICT ... DO UPDATE SET ...`.
// Values may be literals (escaped) or expression Nodes, the same rule as
// UPDATE.VALUES.
func (b *OnConflictBuilder) DO_UPDATE(assignments map[string]any) *InsertStatement {
	b.clause.updates = orderedObject(assignments)
	return b.stmt
}

type onConflictClause struct {
	columns   []string
	doNothing bool
	updates   escape.Object
}

func (c *onConflictClause) compile() (string, error) {
	var b strings.Builder
	b.WriteString("ON CONFLICT")
	if len(c.columns) > 0 {
		cols := make([]string, len(c.columns))
		for i, col := range c.columns {
			q, err := escape.Identifier(col)
			if err != nil {
				return "", err
			}
			cols[i] = q
		}
		b.WriteString(" (" + strings.Join(cols, ", ") + ")")
	}
	switch {
	case c.doNothing:
		b.WriteString(" DO NOTHING")
	case len(c.updates) > 0:
		assignStr, err := compileAssignments(c.updates)
		if err != nil {
			return "", err
		}
		b.WriteString(" DO UPDATE SET " + assignStr)
	default:
		return "", fmt.Errorf("%w: ON CONFLICT requires DO_NOTHING or DO_UPDATE", ErrQueryShape)
	}
	return b.String(), nil
}

func (s *InsertStatement) CompileNode() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.table == nil {
		err := fmt.Errorf("%w: INSERT has no target table", ErrQueryShape)
		logging.QueryShapeFailure("INSERT", err)
		return "", err
	}
	if len(s.rows) == 0 {
		err := fmt.Errorf("%w: INSERT has no VALUES", ErrQueryShape)
		logging.QueryShapeFailure("INSERT", err)
		return "", err
	}

	tableStr, err := s.table.CompileNode()
	if err != nil {
		return "", err
	}

	quotedCols := make([]string, len(s.columns))
	for i, c := range s.columns {
		q, err := escape.Identifier(c)
		if err != nil {
			return "", err
		}
		quotedCols[i] = q
	}

	rowStrs := make([]string, len(s.rows))
	for i, row := range s.rows {
		vals := make([]string, len(row))
		for j, kv := range row {
			v, err := escape.Value(kv.Value)
			if err != nil {
				return "", err
			}
			vals[j] = v
		}
		rowStrs[i] = "(" + strings.Join(vals, ", ") + ")"
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(tableStr)
	b.WriteString(" (")
	b.WriteString(strings.Join(quotedCols, ", "))
	b.WriteString(") VALUES ")
	b.WriteString(strings.Join(rowStrs, ", "))

	if s.onConflict != nil {
		sql, err := s.onConflict.compile()
		if err != nil {
			return "", err
		}
		b.WriteString(" ")
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

func normalizeRows(rows any) ([]escape.Object, error) {
	switch v := rows.(type) {
	case escape.Object:
		return []escape.Object{v}, nil
	case map[string]any:
		return []escape.Object{orderedObject(v)}, nil
	case []escape.Object:
		return v, nil
	case []map[string]any:
		out := make([]escape.Object, len(v))
		for i, m := range v {
			out[i] = orderedObject(m)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: VALUES expects a mapping or slice of mappings, got %T", ErrQueryShape, rows)
	}
}

func columnsOf(row escape.Object) []string {
	cols := make([]string, len(row))
	for i, kv := range row {
		cols[i] = kv.Key
	}
	return cols
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func compileAssignments(obj escape.Object) (string, error) {
	parts := make([]string, len(obj))
	for i, kv := range obj {
		col, err := escape.Identifier(kv.Key)
		if err != nil {
			return "", err
		}
		var valStr string
		if n, ok := kv.Value.(Node); ok {
			valStr, err = n.CompileNode()
		} else {
			valStr, err = escape.Value(kv.Value)
		}
		if err != nil {
			return "", err
		}
		parts[i] = col + " = " + valStr
	}
	return strings.Join(parts, ", "), nil
}
