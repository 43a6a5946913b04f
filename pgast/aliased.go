package pgast

// aliasedNode adds `AS "name"` on emission, but only when compiled in a
// projection context (spec.md §3's Aliased invariant). CompileNode here
// therefore renders just the inner expression; field-list compilation
// (select.go, insert.go's RETURNING) special-cases *aliasedNode to
// render the AS clause explicitly.
type aliasedNode struct {
	inner Node
	name  string
}

func (n *aliasedNode) CompileNode() (string, error) {
	return n.inner.CompileNode()
}

func (n *aliasedNode) As(name string) Node {
	return &aliasedNode{inner: n.inner, name: name}
}

func (n *aliasedNode) In(values ...any) Node { return inNode(n, values...) }

// projected renders n for a projection context: if n is an alias
// wrapper, its AS clause is included and its alias name returned;
// otherwise n compiles normally with no alias.
func projected(n Node) (sql string, alias string, err error) {
	if a, ok := n.(*aliasedNode); ok {
		sql, err = a.inner.CompileNode()
		if err != nil {
			return "", "", err
		}
		return sql, a.name, nil
	}
	sql, err = n.CompileNode()
	if err != nil {
		return "", "", err
	}
	return sql, "", nil
}
