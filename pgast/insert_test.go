package pgast

import (
	"testing"

	"github.com/k0kubun/pgqb/escape"
	"github.com/stretchr/testify/assert"
)

func TestInsertBasicValuesReturning(t *testing.T) {
	row := escape.Object{
		{Key: "a", Value: 0},
		{Key: "b", Value: false},
		{Key: "c", Value: "String"},
	}
	sql, err := INSERT("x").VALUES(row).RETURNING("a", "b", "c").CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `INSERT INTO "x" ("a", "b", "c") VALUES (0, FALSE, 'String') RETURNING "a", "b", "c"`, sql)
}

func TestInsertIntoMethod(t *testing.T) {
	row := escape.Object{{Key: "a", Value: 1}}
	sql, err := INSERT().INTO("x").VALUES(row).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `INSERT INTO "x" ("a") VALUES (1)`, sql)
}

func TestInsertMultipleRows(t *testing.T) {
	rows := []escape.Object{
		{{Key: "a", Value: 1}, {Key: "b", Value: 2}},
		{{Key: "a", Value: 3}, {Key: "b", Value: 4}},
	}
	sql, err := INSERT("x").VALUES(rows).CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `INSERT INTO "x" ("a", "b") VALUES (1, 2), (3, 4)`, sql)
}

func TestInsertRowsWithDifferentColumnOrderErrors(t *testing.T) {
	rows := []escape.Object{
		{{Key: "a", Value: 1}, {Key: "b", Value: 2}},
		{{Key: "b", Value: 2}, {Key: "a", Value: 1}},
	}
	_, err := INSERT("x").VALUES(rows).CompileNode()
	assert.ErrorIs(t, err, ErrQueryShape)
}

func TestInsertNoTableErrors(t *testing.T) {
	row := escape.Object{{Key: "a", Value: 1}}
	_, err := INSERT().VALUES(row).CompileNode()
	assert.ErrorIs(t, err, ErrQueryShape)
}

func TestInsertNoValuesErrors(t *testing.T) {
	_, err := INSERT("x").CompileNode()
	assert.ErrorIs(t, err, ErrQueryShape)
}

func TestInsertOnConflictDoNothing(t *testing.T) {
	row := escape.Object{{Key: "id", Value: 1}}
	sql, err := INSERT("x").VALUES(row).ON_CONFLICT("id").DO_NOTHING().CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `INSERT INTO "x" ("id") VALUES (1) ON CONFLICT ("id") DO NOTHING`, sql)
}

func TestInsertOnConflictDoUpdate(t *testing.T) {
	row := escape.Object{{Key: "id", Value: 1}, {Key: "count", Value: 1}}
	sql, err := INSERT("x").VALUES(row).
		ON_CONFLICT("id").
		DO_UPDATE(map[string]any{"count": Op(Col("x", "count"), "+", Val(1))}).
		CompileNode()
	assert.NoError(t, err)
	assert.Equal(t, `INSERT INTO "x" ("id", "count") VALUES (1, 1) ON CONFLICT ("id") DO UPDATE SET "count" = "x"."count" + 1`, sql)
}
