// Package ast defines the abstract syntax tree produced by the parser.
//
// Every node implements Node; Expression and Statement mark nodes that
// produce a value or perform an action, respectively (spec.md §3's AST node
// variant list). Declaration marks the top-level/local declaration forms
// (constants, variables, functions, procedures) that are neither: they bind
// names rather than execute or evaluate. The set of concrete node types is
// flat and closed, one per syntactic construct, the same shape as the
// teacher's internal/ast package and as the tagged union in
// original_source/interpreter.c's ASTNodeType enum.
package ast

import "github.com/eap-lang/eap/internal/lexer"

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Expression is a node that produces a runtime value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Declaration is a top-level or local binding form: a constant, variable,
// function, or procedure declaration.
type Declaration interface {
	Node
	declarationNode()
}

// Program is the AST root: a name, the program's declarations in source
// order, and the main body's statements in source order (spec.md §3).
type Program struct {
	Token        lexer.Token // the ALGORITHM token
	Name         string
	Declarations []Declaration
	Body         []Statement
}

func (p *Program) TokenLiteral() string     { return p.Token.Literal }
func (p *Program) Pos() lexer.Position      { return p.Token.Pos }
func (p *Program) String() string {
	out := "ALGORITHM " + p.Name + "\n"
	for _, d := range p.Declarations {
		out += d.String() + "\n"
	}
	out += "BEGIN\n"
	for _, s := range p.Body {
		out += "  " + s.String() + "\n"
	}
	out += "END\n"
	return out
}
