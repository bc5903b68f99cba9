package ast

import "github.com/eap-lang/eap/internal/lexer"

// Identifier references a constant, scalar variable, or function name.
type Identifier struct {
	Token lexer.Token
	Name  string
}

func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) Pos() lexer.Position  { return i.Token.Pos }
func (i *Identifier) expressionNode()      {}
func (i *Identifier) String() string       { return i.Name }

// Literal is a fixed integer, real, boolean, or string value baked into the
// source text, tagged with its base type (spec.md §3).
type Literal struct {
	Token lexer.Token
	Value interface{}
	Type  BaseType
}

func (l *Literal) TokenLiteral() string { return l.Token.Literal }
func (l *Literal) Pos() lexer.Position  { return l.Token.Pos }
func (l *Literal) expressionNode()      {}
func (l *Literal) String() string       { return l.Token.Literal }

// ArrayAccess reads one element of an array variable, indexed by one
// expression per declared dimension.
type ArrayAccess struct {
	Token   lexer.Token // the array name token
	Name    string
	Indices []Expression
}

func (a *ArrayAccess) TokenLiteral() string { return a.Token.Literal }
func (a *ArrayAccess) Pos() lexer.Position  { return a.Token.Pos }
func (a *ArrayAccess) expressionNode()      {}
func (a *ArrayAccess) String() string {
	out := a.Name + "["
	for i, idx := range a.Indices {
		if i > 0 {
			out += ", "
		}
		out += idx.String()
	}
	return out + "]"
}

// BinaryExpr is a two-operand arithmetic, comparison, or logical
// expression. Op holds the operator's token type rather than a bare string
// so the evaluator and transpiler switch on the same enum the lexer
// produced.
type BinaryExpr struct {
	Token lexer.Token // the operator token
	Op    lexer.TokenType
	Left  Expression
	Right Expression
}

func (b *BinaryExpr) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpr) Pos() lexer.Position  { return b.Token.Pos }
func (b *BinaryExpr) expressionNode()      {}
func (b *BinaryExpr) String() string {
	return "(" + b.Left.String() + " " + b.Token.Literal + " " + b.Right.String() + ")"
}

// UnaryExpr is a single-operand prefix expression: unary minus or NOT.
type UnaryExpr struct {
	Token   lexer.Token
	Op      lexer.TokenType
	Operand Expression
}

func (u *UnaryExpr) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpr) Pos() lexer.Position  { return u.Token.Pos }
func (u *UnaryExpr) expressionNode()      {}
func (u *UnaryExpr) String() string {
	return "(" + u.Token.Literal + u.Operand.String() + ")"
}

// CallExpr invokes a function or procedure by name with an ordered
// argument list. The same node serves as an expression (a function call
// used for its result) and, wrapped in a CallStatement, as a standalone
// procedure call (spec.md §3's statement-or-expression call node).
type CallExpr struct {
	Token  lexer.Token // the callee name token
	Callee string
	Args   []Expression
}

func (c *CallExpr) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpr) Pos() lexer.Position  { return c.Token.Pos }
func (c *CallExpr) expressionNode()      {}
func (c *CallExpr) String() string {
	out := c.Callee + "("
	for i, a := range c.Args {
		if i > 0 {
			out += ", "
		}
		out += a.String()
	}
	return out + ")"
}
