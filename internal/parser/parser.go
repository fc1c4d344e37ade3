// Package parser turns a boolean query string into an AST. Operator
// precedence is AND over OR over ANDNOT, and runs of the same operator
// flatten into one n-ary node so the planner can reorder all siblings of a
// combinator at once.
package parser

import (
	"fmt"
	"strings"

	"github.com/leengari/mini-search/internal/parser/ast"
	"github.com/leengari/mini-search/internal/parser/lexer"
)

type Parser struct {
	tokens  []lexer.Token
	curPos  int
	curTok  lexer.Token
	peekTok lexer.Token
}

func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens, curPos: 0}
	// Read two tokens to set curTok and peekTok
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.curPos < len(p.tokens) {
		p.peekTok = p.tokens[p.curPos]
		p.curPos++
	} else {
		p.peekTok = lexer.Token{Type: lexer.EOF}
	}
}

// Parse parses a complete query expression.
func (p *Parser) Parse() (ast.Expression, error) {
	if p.curTok.Type == lexer.EOF {
		return nil, fmt.Errorf("empty query")
	}

	expr, err := p.parseAndNot()
	if err != nil {
		return nil, err
	}

	if p.curTok.Type != lexer.EOF {
		return nil, fmt.Errorf("unexpected token %q at line %d, col %d",
			p.curTok.Literal, p.curTok.Line, p.curTok.Column)
	}

	return expr, nil
}

// parseAndNot: or_expr (ANDNOT or_expr)*
func (p *Parser) parseAndNot() (ast.Expression, error) {
	positive, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	var negatives []ast.Expression
	for p.curTok.Type == lexer.ANDNOT {
		p.nextToken()
		neg, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		negatives = append(negatives, neg)
	}

	if len(negatives) == 0 {
		return positive, nil
	}
	return &ast.AndNotExpr{Positive: positive, Negatives: negatives}, nil
}

// parseOr: and_expr (OR and_expr)*
func (p *Parser) parseOr() (ast.Expression, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	children := []ast.Expression{first}
	for p.curTok.Type == lexer.OR {
		p.nextToken()
		child, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	if len(children) == 1 {
		return first, nil
	}
	return &ast.OrExpr{Children: children}, nil
}

// parseAnd: primary (AND primary)*
func (p *Parser) parseAnd() (ast.Expression, error) {
	first, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	children := []ast.Expression{first}
	for p.curTok.Type == lexer.AND {
		p.nextToken()
		child, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	if len(children) == 1 {
		return first, nil
	}
	return &ast.AndExpr{Children: children}, nil
}

// parsePrimary: TERM | STRING | '(' expression ')'
func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.curTok.Type {
	case lexer.TERM, lexer.STRING:
		expr := &ast.TermExpr{
			TokenLiteralValue: p.curTok.Literal,
			Value:             strings.ToLower(p.curTok.Literal),
		}
		p.nextToken()
		return expr, nil

	case lexer.PAREN_OPEN:
		p.nextToken()
		expr, err := p.parseAndNot()
		if err != nil {
			return nil, err
		}
		if p.curTok.Type != lexer.PAREN_CLOSE {
			return nil, fmt.Errorf("expected ), got %q", p.curTok.Literal)
		}
		p.nextToken()
		return expr, nil

	default:
		return nil, fmt.Errorf("expected term or (, got %q at line %d, col %d",
			p.curTok.Literal, p.curTok.Line, p.curTok.Column)
	}
}

// ParseQuery tokenizes and parses a query string in one step.
func ParseQuery(query string) (ast.Expression, error) {
	tokens, err := lexer.Tokenize(query)
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse()
}
