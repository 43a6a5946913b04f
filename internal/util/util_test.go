package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalMapIterSortsKeys(t *testing.T) {
	m := map[string]int{"c": 3, "a": 1, "b": 2}
	var keys []string
	var vals []int
	for k, v := range CanonicalMapIter(m) {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, []int{1, 2, 3}, vals)
}

func TestCanonicalMapIterStopsEarly(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	var keys []string
	for k := range CanonicalMapIter(m) {
		keys = append(keys, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}
