package pgast

import (
	"fmt"
	"reflect"

	"github.com/k0kubun/pgqb/escape"
)

// reflectSliceElems converts a concretely-typed slice or array (e.g.
// []int) into []any so callers can inspect individual elements, the same
// convenience escape.Value applies internally for scalar slices.
func reflectSliceElems(v any) ([]any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %T is not a slice", escape.ErrUnsupportedValue, v)
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}
