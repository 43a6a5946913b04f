// Package pgvalidate catches compiler bugs that emit syntactically
// invalid PostgreSQL by round-tripping compiled SQL through the real
// libpg_query bindings, the same parser the teacher's
// database/postgres/parser.go uses to read DDL back off a live server.
package pgvalidate

import (
	"fmt"

	pg_query "github.com/pganalyze/pg_query_go/v6"
)

// Validate parses sql with libpg_query and returns a descriptive error if
// it is not syntactically valid PostgreSQL. A pgast compiler that never
// fails Validate on its own test suite is never emitting malformed SQL.
func Validate(sql string) error {
	if _, err := pg_query.Parse(sql); err != nil {
		return fmt.Errorf("pgvalidate: %q is not valid PostgreSQL: %w", sql, err)
	}
	return nil
}

// MustValidate is Validate's panic-on-failure form, for callers where a
// parse failure is always a bug rather than a recoverable condition.
func MustValidate(sql string) {
	if err := Validate(sql); err != nil {
		panic(err)
	}
}
