package ast

import "github.com/eap-lang/eap/internal/lexer"

// Assignment stores Value into Target, which is either an *Identifier
// (scalar) or an *ArrayAccess (indexed element).
type Assignment struct {
	Token  lexer.Token // the ASSIGN token
	Target Expression
	Value  Expression
}

func (a *Assignment) TokenLiteral() string { return a.Token.Literal }
func (a *Assignment) Pos() lexer.Position  { return a.Token.Pos }
func (a *Assignment) statementNode()       {}
func (a *Assignment) String() string {
	return a.Target.String() + " := " + a.Value.String() + ";"
}

// Print writes each argument to standard output in order. EOLN appearing
// among Args is resolved by the evaluator to a newline, not printed as a
// value (spec.md §4.4).
type Print struct {
	Token lexer.Token
	Args  []Expression
}

func (p *Print) TokenLiteral() string { return p.Token.Literal }
func (p *Print) Pos() lexer.Position  { return p.Token.Pos }
func (p *Print) statementNode()       {}
func (p *Print) String() string {
	out := "PRINT("
	for i, a := range p.Args {
		if i > 0 {
			out += ", "
		}
		out += a.String()
	}
	return out + ");"
}

// Read stores one input value per target, in order. Each target is either
// an *Identifier or an *ArrayAccess.
type Read struct {
	Token   lexer.Token
	Targets []Expression
}

func (r *Read) TokenLiteral() string { return r.Token.Literal }
func (r *Read) Pos() lexer.Position  { return r.Token.Pos }
func (r *Read) statementNode()       {}
func (r *Read) String() string {
	out := "READ("
	for i, t := range r.Targets {
		if i > 0 {
			out += ", "
		}
		out += t.String()
	}
	return out + ");"
}

// If is the IF/THEN/ELSE conditional. Else is nil when the source omits
// the ELSE clause.
type If struct {
	Token lexer.Token
	Cond  Expression
	Then  []Statement
	Else  []Statement
}

func (i *If) TokenLiteral() string { return i.Token.Literal }
func (i *If) Pos() lexer.Position  { return i.Token.Pos }
func (i *If) statementNode()       {}
func (i *If) String() string {
	out := "IF " + i.Cond.String() + " THEN ... "
	if i.Else != nil {
		out += "ELSE ... "
	}
	return out + "END-IF;"
}

// For is the counted FOR loop. Step is nil when the source omits STEP,
// which the evaluator treats as a step of 1 (spec.md §4.4).
type For struct {
	Token lexer.Token
	Var   string
	Start Expression
	End   Expression
	Step  Expression
	Body  []Statement
}

func (f *For) TokenLiteral() string { return f.Token.Literal }
func (f *For) Pos() lexer.Position  { return f.Token.Pos }
func (f *For) statementNode()       {}
func (f *For) String() string {
	return "FOR " + f.Var + " := " + f.Start.String() + " TO " + f.End.String() + " ... END-FOR;"
}

// While is the pre-tested WHILE loop and the post-tested REPEAT/UNTIL loop,
// which share a representation distinguished by IsUntil (spec.md §3): a
// WHILE node tests Cond before each iteration and loops while it is true; a
// REPEAT/UNTIL node (IsUntil set) runs Body once unconditionally and then
// loops while Cond is false.
type While struct {
	Token   lexer.Token
	Cond    Expression
	Body    []Statement
	IsUntil bool
}

func (w *While) TokenLiteral() string { return w.Token.Literal }
func (w *While) Pos() lexer.Position  { return w.Token.Pos }
func (w *While) statementNode()       {}
func (w *While) String() string {
	if w.IsUntil {
		return "REPEAT ... UNTIL " + w.Cond.String() + ";"
	}
	return "WHILE " + w.Cond.String() + " ... END-WHILE;"
}

// CallStatement wraps a CallExpr used standalone, as a procedure
// invocation rather than a value-producing subexpression.
type CallStatement struct {
	Call *CallExpr
}

func (c *CallStatement) TokenLiteral() string { return c.Call.TokenLiteral() }
func (c *CallStatement) Pos() lexer.Position  { return c.Call.Pos() }
func (c *CallStatement) statementNode()       {}
func (c *CallStatement) String() string       { return c.Call.String() + ";" }
