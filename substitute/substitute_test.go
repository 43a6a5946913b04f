package substitute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteQuestionMarks(t *testing.T) {
	got, err := Substitute("a = ?, b = '?''?', c = ?", []any{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, `a = 1, b = '?''?', c = 2`, got)
}

func TestSubstituteDollarPlaceholders(t *testing.T) {
	got, err := Substitute("a = $1 AND b = $2", []any{"x", 5})
	assert.NoError(t, err)
	assert.Equal(t, `a = 'x' AND b = 5`, got)
}

func TestSubstituteMixedPlaceholders(t *testing.T) {
	got, err := Substitute("a = ? AND b = $1", []any{1})
	assert.NoError(t, err)
	assert.Equal(t, "a = 1 AND b = 1", got)
}

func TestSubstituteInertInsideDoubleQuotedIdentifier(t *testing.T) {
	got, err := Substitute(`"weird?col" = ?`, []any{1})
	assert.NoError(t, err)
	assert.Equal(t, `"weird?col" = 1`, got)
}

func TestSubstituteEStringBackslashEscape(t *testing.T) {
	got, err := Substitute(`x = E'a\'?b' AND y = ?`, []any{7})
	assert.NoError(t, err)
	assert.Equal(t, `x = E'a\'?b' AND y = 7`, got)
}

func TestSubstituteMissingBindQuestionMark(t *testing.T) {
	_, err := Substitute("a = ?, b = ?", []any{1})
	assert.ErrorIs(t, err, ErrMissingBind)
}

func TestSubstituteMissingBindDollar(t *testing.T) {
	_, err := Substitute("a = $2", []any{1})
	assert.ErrorIs(t, err, ErrMissingBind)
}

func TestSubstituteUnterminatedLiteral(t *testing.T) {
	_, err := Substitute("a = 'unterminated", nil)
	assert.ErrorIs(t, err, ErrLexError)
}

func TestSubstituteDollarWithoutDigitsIsLiteral(t *testing.T) {
	got, err := Substitute("price $ amount", nil)
	assert.NoError(t, err)
	assert.Equal(t, "price $ amount", got)
}
