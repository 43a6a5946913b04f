package pgast

import (
	"fmt"

	"github.com/k0kubun/pgqb/escape"
)

// buildCondition normalizes the four WHERE/HAVING shapes from spec.md
// §4.6 into a single predicate Node:
//
//	(col, op, val)  -> Op(Col(col), op, Val(val))
//	(col, val)      -> Op(Col(col), "=", Val(val))
//	(mapping)       -> AND of col = val for each pair
//	(exprNode)      -> used as-is
func buildCondition(args ...any) (Node, error) {
	switch len(args) {
	case 1:
		switch v := args[0].(type) {
		case Node:
			return v, nil
		case escape.Object:
			return andEquals(v)
		case map[string]any:
			return andEquals(orderedObject(v))
		default:
			return nil, fmt.Errorf("%w: ambiguous WHERE/HAVING shape %T", ErrQueryShape, v)
		}
	case 2:
		col, err := toColumnNode(args[0])
		if err != nil {
			return nil, err
		}
		return Op(col, "=", valueOrNode(args[1])), nil
	case 3:
		col, err := toColumnNode(args[0])
		if err != nil {
			return nil, err
		}
		op, ok := args[1].(string)
		if !ok {
			return nil, fmt.Errorf("%w: WHERE/HAVING operator must be a string, got %T", ErrQueryShape, args[1])
		}
		return Op(col, op, valueOrNode(args[2])), nil
	default:
		return nil, fmt.Errorf("%w: WHERE/HAVING expects 1 to 3 arguments, got %d", ErrQueryShape, len(args))
	}
}

func toColumnNode(v any) (Node, error) {
	switch c := v.(type) {
	case Node:
		return c, nil
	case string:
		return Col(c), nil
	default:
		return nil, fmt.Errorf("%w: column reference must be a string or Node, got %T", ErrQueryShape, v)
	}
}

// appendAnd folds a new predicate into an existing one, ANDing repeated
// WHERE/HAVING calls together per spec.md §4.6.
func appendAnd(existing, next Node) Node {
	if existing == nil {
		return next
	}
	return And(existing, next)
}
