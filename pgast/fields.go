package pgast

import (
	"fmt"
	"strings"

	"github.com/k0kubun/pgqb/escape"
)

// normalizeFields flattens the heterogeneous SELECT/RETURNING field
// shapes from spec.md §4.6 into a single ordered []Node, so the compiler
// only ever has to walk one uniform representation (spec.md §9's
// "normalize at entry" guidance).
//
// Accepted shapes per item: a string column name, a []any/[]string list
// of further items, an escape.Object mapping ({alias: true|"alias"|expr}),
// or a Node.
func normalizeFields(items []any) ([]Node, error) {
	var out []Node
	for _, item := range items {
		nodes, err := normalizeField(item)
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	return out, nil
}

func normalizeField(item any) ([]Node, error) {
	switch v := item.(type) {
	case Node:
		return []Node{v}, nil
	case string:
		return []Node{Col(v)}, nil
	case []string:
		out := make([]Node, len(v))
		for i, s := range v {
			out[i] = Col(s)
		}
		return out, nil
	case []any:
		return normalizeFields(v)
	case escape.Object:
		return fieldsFromMapping(v)
	case map[string]any:
		return fieldsFromMapping(orderedObject(v))
	default:
		return nil, fmt.Errorf("%w: unsupported field shape %T", ErrQueryShape, item)
	}
}

func fieldsFromMapping(obj escape.Object) ([]Node, error) {
	out := make([]Node, len(obj))
	for i, kv := range obj {
		switch val := kv.Value.(type) {
		case bool:
			if !val {
				return nil, fmt.Errorf("%w: field mapping value for %q must be true, a string alias, or an expression", ErrQueryShape, kv.Key)
			}
			out[i] = Col(kv.Key)
		case string:
			out[i] = Col(kv.Key).As(val)
		case Node:
			out[i] = val.As(kv.Key)
		default:
			return nil, fmt.Errorf("%w: field mapping value for %q must be true, a string alias, or an expression", ErrQueryShape, kv.Key)
		}
	}
	return out, nil
}

// compileProjection renders a projection-context field list (SELECT's
// field list, RETURNING), honoring aliasedNode's AS clause.
func compileProjection(fields []Node) (string, error) {
	parts := make([]string, len(fields))
	for i, f := range fields {
		sql, alias, err := projected(f)
		if err != nil {
			return "", err
		}
		if alias != "" {
			quoted, err := escape.Identifier(alias)
			if err != nil {
				return "", err
			}
			sql = sql + " AS " + quoted
		}
		parts[i] = sql
	}
	return strings.Join(parts, ", "), nil
}
