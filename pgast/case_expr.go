package pgast

import "strings"

// caseNode is a CASE WHEN ... THEN ... [ELSE ...] END expression. Not
// named by spec.md but a natural extension of its expression surface
// (SPEC_FULL.md §6), grounded in the same tagged-variant shape as every
// other node here rather than a special-cased mini-language.
type caseNode struct {
	whens []whenClause
	els   Node
}

type whenClause struct {
	cond, then Node
}

// CaseBuilder accumulates WHEN/THEN branches before being closed with
// ELSE or END.
type CaseBuilder struct {
	node *caseNode
}

// Case starts a CASE expression.
func Case() *CaseBuilder {
	return &CaseBuilder{node: &caseNode{}}
}

// WHEN appends a `WHEN cond THEN then` branch.
func (b *CaseBuilder) WHEN(cond, then Node) *CaseBuilder {
	b.node.whens = append(b.node.whens, whenClause{cond: cond, then: then})
	return b
}

// ELSE closes the CASE expression with an ELSE branch.
func (b *CaseBuilder) ELSE(els Node) Expr {
	b.node.els = els
	return b.node
}

// END closes the CASE expression with no ELSE branch.
func (b *CaseBuilder) END() Expr {
	return b.node
}

func (n *caseNode) CompileNode() (string, error) {
	var b strings.Builder
	b.WriteString("CASE")
	for _, w := range n.whens {
		condStr, err := w.cond.CompileNode()
		if err != nil {
			return "", err
		}
		thenStr, err := w.then.CompileNode()
		if err != nil {
			return "", err
		}
		b.WriteString(" WHEN ")
		b.WriteString(condStr)
		b.WriteString(" THEN ")
		b.WriteString(thenStr)
	}
	if n.els != nil {
		elsStr, err := n.els.CompileNode()
		if err != nil {
			return "", err
		}
		b.WriteString(" ELSE ")
		b.WriteString(elsStr)
	}
	b.WriteString(" END")
	return b.String(), nil
}

func (n *caseNode) As(name string) Node   { return asNode(n, name) }
func (n *caseNode) In(values ...any) Node { return inNode(n, values...) }
