package ast

import (
	"bytes"
)

// Node is the base interface for all AST nodes
type Node interface {
	TokenLiteral() string
	String() string
}

// Expression represents one boolean sub-expression of a query
type Expression interface {
	Node
	expressionNode()
}

// TermExpr represents a single search term
type TermExpr struct {
	TokenLiteralValue string // The token literal (e.g. "grep")
	Value             string // The normalized term
}

func (t *TermExpr) expressionNode()      {}
func (t *TermExpr) TokenLiteral() string { return t.TokenLiteralValue }
func (t *TermExpr) String() string       { return t.Value }

// AndExpr: a AND b AND c — n-ary, adjacent ANDs flatten into one node so
// the planner sees all conjuncts as siblings
type AndExpr struct {
	Children []Expression
}

func (e *AndExpr) expressionNode()      {}
func (e *AndExpr) TokenLiteral() string { return "AND" }
func (e *AndExpr) String() string       { return joinChildren(e.Children, " AND ") }

// OrExpr: a OR b OR c — n-ary, same flattening as AndExpr
type OrExpr struct {
	Children []Expression
}

func (e *OrExpr) expressionNode()      {}
func (e *OrExpr) TokenLiteral() string { return "OR" }
func (e *OrExpr) String() string       { return joinChildren(e.Children, " OR ") }

// AndNotExpr: positive ANDNOT n1 ANDNOT n2 — the positive clause plus the
// negated clauses subtracted from it
type AndNotExpr struct {
	Positive  Expression
	Negatives []Expression
}

func (e *AndNotExpr) expressionNode()      {}
func (e *AndNotExpr) TokenLiteral() string { return "ANDNOT" }
func (e *AndNotExpr) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(e.Positive.String())
	for _, n := range e.Negatives {
		out.WriteString(" ANDNOT ")
		out.WriteString(n.String())
	}
	out.WriteString(")")
	return out.String()
}

func joinChildren(children []Expression, sep string) string {
	var out bytes.Buffer
	out.WriteString("(")
	for i, c := range children {
		if i > 0 {
			out.WriteString(sep)
		}
		out.WriteString(c.String())
	}
	out.WriteString(")")
	return out.String()
}
