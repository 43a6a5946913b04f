package pgast

import (
	"testing"

	"github.com/k0kubun/pgqb/escape"
	"github.com/stretchr/testify/assert"
)

func TestSelectStar(t *testing.T) {
	sql, err := SELECT().FROM("x").CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "x"`, sql)
}

func TestSelectFieldListAndWhereIn(t *testing.T) {
	sql, err := SELECT([]string{"a", "b", "c"}).FROM("x").WHERE("a", "IN", []any{42, 23}).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT "a", "b", "c" FROM "x" WHERE "a" IN (42, 23)`, sql)
}

func TestSelectDistinct(t *testing.T) {
	sql, err := SELECT("a").DISTINCT().FROM("x").CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT DISTINCT "a" FROM "x"`, sql)
}

func TestSelectDistinctReplacesFields(t *testing.T) {
	sql, err := SELECT("a").DISTINCT("b", "c").FROM("x").CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT DISTINCT "b", "c" FROM "x"`, sql)
}

func TestSelectFieldMapping(t *testing.T) {
	mapping := escape.Object{
		{Key: "id", Value: true},
		{Key: "name", Value: "full_name"},
		{Key: "total", Value: Min(Col("price"))},
	}
	sql, err := SELECT(mapping).FROM("x").CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT "id", "name" AS "full_name", MIN("price") AS "total" FROM "x"`, sql)
}

func TestSelectMultipleFromIsCrossJoin(t *testing.T) {
	sql, err := SELECT().FROM("x", "y").CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "x" CROSS JOIN "y"`, sql)
}

func TestSelectWhereTwoArgDefaultsToEquals(t *testing.T) {
	sql, err := SELECT().FROM("x").WHERE("a", 1).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "x" WHERE "a" = 1`, sql)
}

func TestSelectWhereMappingAndsKeys(t *testing.T) {
	mapping := escape.Object{{Key: "a", Value: 1}, {Key: "b", Value: 2}}
	sql, err := SELECT().FROM("x").WHERE(mapping).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "x" WHERE "a" = 1 AND "b" = 2`, sql)
}

func TestSelectRepeatedWhereAnds(t *testing.T) {
	sql, err := SELECT().FROM("x").WHERE("a", 1).WHERE("b", 2).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "x" WHERE "a" = 1 AND "b" = 2`, sql)
}

func TestSelectGroupByHaving(t *testing.T) {
	sql, err := SELECT("a", Min(Col("price")).As("m")).FROM("x").
		GROUP_BY("a").
		HAVING(Min(Col("price")), ">", 10).
		CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT "a", MIN("price") AS "m" FROM "x" GROUP BY "a" HAVING MIN("price") > 10`, sql)
}

func TestSelectOrderByDirectionNulls(t *testing.T) {
	sql, err := SELECT().FROM("x").
		ORDER_BY("a").
		ORDER_BY("b", "desc", "nulls last").
		CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "x" ORDER BY "a", "b" DESC NULLS LAST`, sql)
}

func TestSelectOffsetLimit(t *testing.T) {
	sql, err := SELECT().FROM("x").OFFSET(5).LIMIT(10).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "x" OFFSET 5 LIMIT 10`, sql)
}

func TestSelectInnerJoinUsing(t *testing.T) {
	sql, err := SELECT().FROM("x").INNER_JOIN("y", []string{"id"}).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "x" INNER JOIN "y" USING ("id")`, sql)
}

func TestSelectLeftJoinOn(t *testing.T) {
	sql, err := SELECT().FROM("x").LEFT_JOIN("y", Op(Col("x", "id"), "=", Col("y", "x_id"))).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "x" LEFT OUTER JOIN "y" ON "x"."id" = "y"."x_id"`, sql)
}

func TestSelectRightJoin(t *testing.T) {
	sql, err := SELECT().FROM("x").RIGHT_JOIN("y", []string{"id"}).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "x" RIGHT OUTER JOIN "y" USING ("id")`, sql)
}

func TestSelectCrossJoinMethod(t *testing.T) {
	sql, err := SELECT().FROM("x").CROSS_JOIN("y").CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "x" CROSS JOIN "y"`, sql)
}

func TestSelectWith(t *testing.T) {
	cte := SELECT("id").FROM("x")
	sql, err := SELECT("id").FROM("recent").WITH("recent", cte).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `WITH "recent" AS (SELECT "id" FROM "x") SELECT "id" FROM "recent"`, sql)
}

func TestSelectSubqueryAlias(t *testing.T) {
	sub := SELECT("id").FROM("x").As("sub")
	sql, err := SELECT("id").FROM(sub).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `SELECT "id" FROM (SELECT "id" FROM "x") AS "sub"`, sql)
}

func TestSelectWhereAmbiguousShapeErrors(t *testing.T) {
	_, err := SELECT().FROM("x").WHERE(42).CompileNode()
	assert.ErrorIs(t, err, ErrQueryShape)
}

func TestSelectOperatorPrecedenceDivisionOverAddition(t *testing.T) {
	expr := Op(Col("a"), "/", Op(Col("b"), "+", Val(1)))
	sql, err := expr.CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `"a" / ("b" + 1)`, sql)
}

func TestCaseExpression(t *testing.T) {
	expr := Case().
		WHEN(Op(Col("a"), ">", Val(0)), Raw("'positive'")).
		WHEN(Op(Col("a"), "<", Val(0)), Raw("'negative'")).
		ELSE(Raw("'zero'"))
	sql, err := expr.CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `CASE WHEN "a" > 0 THEN 'positive' WHEN "a" < 0 THEN 'negative' ELSE 'zero' END`, sql)
}
