package pgast

import (
	"github.com/k0kubun/pgqb/escape"
	"github.com/k0kubun/pgqb/internal/util"
)

// orderedObject gives a deterministic (sorted-key) order to a plain Go
// map, since spec.md's mapping shapes want caller-controlled insertion
// order and Go maps have none. Callers that care about order should pass
// an escape.Object directly.
func orderedObject(m map[string]any) escape.Object {
	obj := make(escape.Object, 0, len(m))
	for k, v := range util.CanonicalMapIter(m) {
		obj = append(obj, escape.KV{Key: k, Value: v})
	}
	return obj
}
