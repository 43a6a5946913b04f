package pgast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionNestedAsSecondMember(t *testing.T) {
	sql, err := UNION(
		SELECT("a").FROM("x"),
		UNION(SELECT("a").FROM("y"), SELECT("a").FROM("z")),
	).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT "a" FROM "x" UNION (SELECT "a" FROM "y" UNION SELECT "a" FROM "z")`, sql)
}

func TestUnionNestedAsFirstMember(t *testing.T) {
	sql, err := UNION(
		UNION(SELECT("a").FROM("x"), SELECT("a").FROM("y")),
		SELECT("a").FROM("z"),
	).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `(SELECT "a" FROM "x" UNION SELECT "a" FROM "y") UNION SELECT "a" FROM "z"`, sql)
}

func TestUnionAllIntersectExcept(t *testing.T) {
	sql, err := UNION_ALL(SELECT("a").FROM("x"), SELECT("a").FROM("y")).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT "a" FROM "x" UNION ALL SELECT "a" FROM "y"`, sql)

	sql, err = INTERSECT(SELECT("a").FROM("x"), SELECT("a").FROM("y")).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT "a" FROM "x" INTERSECT SELECT "a" FROM "y"`, sql)

	sql, err = EXCEPT_ALL(SELECT("a").FROM("x"), SELECT("a").FROM("y")).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT "a" FROM "x" EXCEPT ALL SELECT "a" FROM "y"`, sql)
}

func TestCombinedOrderByOffsetLimit(t *testing.T) {
	sql, err := UNION(SELECT("a").FROM("x"), SELECT("a").FROM("y")).
		ORDER_BY("a").
		OFFSET(1).
		LIMIT(2).
		CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT "a" FROM "x" UNION SELECT "a" FROM "y" ORDER BY "a" OFFSET 1 LIMIT 2`, sql)
}

func TestCombinedNoMembersErrors(t *testing.T) {
	_, err := UNION().CompileNode()
	assert.ErrorIs(t, err, ErrQueryShape)
}

func TestCombinedSingleMemberIsPassthrough(t *testing.T) {
	sql, err := UNION(SELECT("a").FROM("x")).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT "a" FROM "x"`, sql)
}
