// Command pgqb is a small demo/debug CLI around the pgast query builder:
// it reads a named query definition (table, columns, filters) from YAML
// and prints the compiled SQL, the same flag/logging conventions as the
// teacher's cmd/psqldef.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goccy/go-yaml"
	flags "github.com/jessevdk/go-flags"
	"github.com/k0kubun/pgqb/internal/logging"
	"github.com/k0kubun/pgqb/internal/util"
	"github.com/k0kubun/pgqb/pgast"
	"github.com/k0kubun/pgqb/pgvalidate"
	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"
)

var version string

// queryDef is the YAML shape cmd/pgqb accepts: enough to build a single
// SELECT, mirroring the subset of spec.md §4.6's SELECT surface a simple
// config file can express.
type queryDef struct {
	Table   string            `yaml:"table"`
	Fields  []string          `yaml:"fields"`
	Where   map[string]any    `yaml:"where"`
	OrderBy []string          `yaml:"order_by"`
	Limit   *int              `yaml:"limit"`
	Offset  *int              `yaml:"offset"`
	Joins   []joinDef         `yaml:"joins"`
	Aliases map[string]string `yaml:"aliases"`
}

type joinDef struct {
	Kind  string   `yaml:"kind"` // inner, left, right, cross
	Table string   `yaml:"table"`
	Using []string `yaml:"using"`
}

func main() {
	logging.Init()

	var opts struct {
		File     string `short:"f" long:"file" description:"Read the query definition from this YAML file, rather than stdin" value-name:"filename" default:"-"`
		Inspect  bool   `long:"inspect" description:"Dump the parsed node tree instead of compiled SQL"`
		Validate bool   `long:"validate" description:"Validate the compiled SQL with libpg_query before printing"`
		Help     bool   `long:"help" description:"Show this help"`
		Version  bool   `long:"version" description:"Show this version"`
	}

	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[option...]"
	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		return
	}
	if opts.Version {
		fmt.Println(version)
		return
	}

	var src []byte
	var err error
	if opts.File == "-" {
		src, err = readAll(os.Stdin)
	} else {
		src, err = os.ReadFile(opts.File)
	}
	if err != nil {
		log.Fatal(err)
	}

	var def queryDef
	if err := yaml.Unmarshal(src, &def); err != nil {
		log.Fatal(err)
	}

	stmt, err := build(def)
	if err != nil {
		log.Fatal(err)
	}

	if opts.Inspect {
		pp.ColoringEnabled = term.IsTerminal(int(os.Stdout.Fd()))
		pp.Println(stmt)
		return
	}

	sql, err := stmt.CompileNode()
	if err != nil {
		log.Fatal(err)
	}

	if opts.Validate {
		if err := pgvalidate.Validate(sql); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println(sql)
}

func readAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

// build translates a queryDef into a *pgast.SelectStatement, the way the
// teacher's schema parsers translate a config shape into AST nodes before
// handing them to a generator.
func build(def queryDef) (*pgast.SelectStatement, error) {
	if def.Table == "" {
		return nil, fmt.Errorf("pgqb: query definition has no table")
	}

	var fields []any
	if len(def.Fields) > 0 {
		for _, f := range def.Fields {
			fields = append(fields, f)
		}
	}
	for col, alias := range util.CanonicalMapIter(def.Aliases) {
		fields = append(fields, map[string]any{col: alias})
	}

	stmt := pgast.SELECT(fields...).FROM(def.Table)

	for _, j := range def.Joins {
		var cond any
		if len(j.Using) > 0 {
			cond = j.Using
		}
		switch j.Kind {
		case "inner":
			stmt.INNER_JOIN(j.Table, cond)
		case "left":
			stmt.LEFT_JOIN(j.Table, cond)
		case "right":
			stmt.RIGHT_JOIN(j.Table, cond)
		case "cross", "":
			stmt.CROSS_JOIN(j.Table)
		default:
			return nil, fmt.Errorf("pgqb: unknown join kind %q", j.Kind)
		}
	}

	if len(def.Where) > 0 {
		stmt.WHERE(def.Where)
	}
	for _, ord := range def.OrderBy {
		stmt.ORDER_BY(ord)
	}
	if def.Offset != nil {
		stmt.OFFSET(*def.Offset)
	}
	if def.Limit != nil {
		stmt.LIMIT(*def.Limit)
	}

	return stmt, nil
}
