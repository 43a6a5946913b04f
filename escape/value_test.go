package escape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueScalars(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "NULL"},
		{true, "TRUE"},
		{false, "FALSE"},
		{0, "0"},
		{42, "42"},
		{-7, "-7"},
		{int64(9999999999), "9999999999"},
		{3.5, "3.5"},
	}
	for _, c := range cases {
		got, err := Value(c.in)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestValueNonFiniteFloats(t *testing.T) {
	got, err := Value(math.NaN())
	assert.NoError(t, err)
	assert.Equal(t, "'NaN'", got)

	got, err = Value(math.Inf(1))
	assert.NoError(t, err)
	assert.Equal(t, "'Infinity'", got)

	got, err = Value(math.Inf(-1))
	assert.NoError(t, err)
	assert.Equal(t, "'-Infinity'", got)
}

func TestValuePlainString(t *testing.T) {
	got, err := Value("hello world")
	assert.NoError(t, err)
	assert.Equal(t, "'hello world'", got)
}

func TestValueStringNeedingEscape(t *testing.T) {
	got, err := Value("'text'")
	assert.NoError(t, err)
	assert.Equal(t, `E'\'text\''`, got)
}

func TestValueStringControlChars(t *testing.T) {
	got, err := Value("line1\nline2\ttab")
	assert.NoError(t, err)
	assert.Equal(t, `E'line1\nline2\ttab'`, got)
}

func TestValueStringRejectsNUL(t *testing.T) {
	_, err := Value("bad\x00string")
	assert.ErrorIs(t, err, ErrInvalidString)
}

func TestValueEmptyArray(t *testing.T) {
	got, err := Value([]any{})
	assert.NoError(t, err)
	assert.Equal(t, "'{}'", got)
}

func TestValueArray(t *testing.T) {
	got, err := Value([]any{42, 23})
	assert.NoError(t, err)
	assert.Equal(t, "ARRAY[42, 23]", got)
}

func TestValueNestedArray(t *testing.T) {
	got, err := Value([]any{[]any{0}, []any{1}})
	assert.NoError(t, err)
	assert.Equal(t, "ARRAY[[0], [1]]", got)
}

func TestValueConcreteSliceType(t *testing.T) {
	got, err := Value([]int{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, "ARRAY[1, 2, 3]", got)
}

func TestValueEmptyObject(t *testing.T) {
	got, err := Value(Object{})
	assert.NoError(t, err)
	assert.Equal(t, "'{}'", got)
}

func TestValueObjectPreservesInsertionOrder(t *testing.T) {
	got, err := Value(Object{{Key: "b", Value: 1}, {Key: "a", Value: 2}})
	assert.NoError(t, err)
	assert.Equal(t, `'{"b":1,"a":2}'`, got)
}

func TestValueObjectEscapesEmbeddedQuote(t *testing.T) {
	got, err := Value(Object{{Key: "name", Value: "it's"}})
	assert.NoError(t, err)
	assert.Equal(t, `'{"name":"it''s"}'`, got)
}

func TestValueMapSortsKeysForDeterminism(t *testing.T) {
	got, err := Value(map[string]any{"z": 1, "a": 2})
	assert.NoError(t, err)
	assert.Equal(t, `'{"a":2,"z":1}'`, got)
}

func TestJSONForcesJSONEvenForArrays(t *testing.T) {
	got, err := JSON([]any{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, "'[1,2,3]'", got)
}

func TestJSONScalar(t *testing.T) {
	got, err := JSON("hi")
	assert.NoError(t, err)
	assert.Equal(t, `'"hi"'`, got)
}

func TestValueUnsupported(t *testing.T) {
	_, err := Value(func() {})
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}
