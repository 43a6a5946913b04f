package pgast

import (
	"strconv"
	"strings"
)

// orderItem is one ORDER BY entry: an expression plus optional direction
// (ASC/DESC) and nulls ordering (NULLS FIRST/NULLS LAST).
type orderItem struct {
	expr      Node
	direction string
	nulls     string
}

func newOrderItem(expr any, rest ...string) (orderItem, error) {
	n, err := toColumnNode(expr)
	if err != nil {
		return orderItem{}, err
	}
	item := orderItem{expr: n}
	if len(rest) > 0 {
		item.direction = strings.ToUpper(rest[0])
	}
	if len(rest) > 1 {
		// Accept both "NULLS LAST" and a bare "LAST"; compile adds the
		// NULLS keyword itself.
		item.nulls = strings.TrimPrefix(strings.ToUpper(rest[1]), "NULLS ")
	}
	return item, nil
}

func (o orderItem) compile() (string, error) {
	s, err := o.expr.CompileNode()
	if err != nil {
		return "", err
	}
	if o.direction != "" {
		s += " " + o.direction
	}
	if o.nulls != "" {
		s += " NULLS " + o.nulls
	}
	return s, nil
}

func compileOrderBy(items []orderItem) (string, error) {
	if len(items) == 0 {
		return "", nil
	}
	parts := make([]string, len(items))
	for i, it := range items {
		s, err := it.compile()
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "ORDER BY " + strings.Join(parts, ", "), nil
}

func compileOffsetLimit(offset, limit *int) string {
	var parts []string
	if offset != nil {
		parts = append(parts, "OFFSET "+strconv.Itoa(*offset))
	}
	if limit != nil {
		parts = append(parts, "LIMIT "+strconv.Itoa(*limit))
	}
	return strings.Join(parts, " ")
}

func intPtr(n int) *int { return &n }
