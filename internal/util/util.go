// Package util carries the teacher's small generic helpers
// (util/util.go) that this repo still has a use for: deterministic
// iteration over a plain Go map, needed anywhere a caller passes a bare
// map[string]any where spec.md's mapping shapes want a stable order.
package util

import (
	"iter"
	"sort"
)

// CanonicalMapIter returns an iterator that yields map entries in sorted
// key order, so a map[string]any passed to SELECT/WHERE/VALUES compiles
// to the same SQL on every run despite Go's randomized map iteration.
func CanonicalMapIter[T any](m map[string]T) iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}
