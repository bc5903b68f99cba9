package ast

import "github.com/eap-lang/eap/internal/lexer"

// ConstDecl binds a name to a constant expression in the CONSTANTS section.
type ConstDecl struct {
	Token lexer.Token // the identifier token
	Name  string
	Value Expression
}

func (c *ConstDecl) TokenLiteral() string { return c.Token.Literal }
func (c *ConstDecl) Pos() lexer.Position  { return c.Token.Pos }
func (c *ConstDecl) declarationNode()     {}
func (c *ConstDecl) String() string {
	return c.Name + " = " + c.Value.String() + ";"
}

// VarDecl declares a scalar or array variable in the DATA section (or a
// function/procedure's local block). Bounds is empty for a scalar and holds
// one Bound per dimension for an array.
type VarDecl struct {
	Token    lexer.Token // the identifier token
	Name     string
	BaseType BaseType
	Bounds   []Bound
}

func (v *VarDecl) TokenLiteral() string { return v.Token.Literal }
func (v *VarDecl) Pos() lexer.Position  { return v.Token.Pos }
func (v *VarDecl) declarationNode()     {}
func (v *VarDecl) IsArray() bool        { return len(v.Bounds) > 0 }
func (v *VarDecl) String() string {
	out := v.Name + ": "
	if v.IsArray() {
		out += "ARRAY["
		for i, b := range v.Bounds {
			if i > 0 {
				out += ", "
			}
			out += b.From.String() + ".." + b.To.String()
		}
		out += "] OF "
	}
	out += v.BaseType.String() + ";"
	return out
}

// Parameter is one entry of a function or procedure's INTERFACE block.
type Parameter struct {
	Name     string
	BaseType BaseType
	IsArray  bool
	ByRef    bool // true for OUTPUT (and INPUT/OUTPUT) parameters
}

func (p Parameter) String() string {
	if p.ByRef {
		return p.Name + " (by reference)"
	}
	return p.Name + " (by value)"
}

// FuncDecl and ProcDecl are declared separately because a function binds an
// implicit return slot named after the function and a procedure does not;
// otherwise the two share the same shape (spec.md §3).

// FuncDecl declares a FUNCTION: parameters, local declarations, a body, and
// a return type. The function's own name doubles as its result variable.
type FuncDecl struct {
	Token      lexer.Token
	Name       string
	ReturnType BaseType
	Params     []Parameter
	Locals     []Declaration
	Body       []Statement
}

func (f *FuncDecl) TokenLiteral() string { return f.Token.Literal }
func (f *FuncDecl) Pos() lexer.Position  { return f.Token.Pos }
func (f *FuncDecl) declarationNode()     {}
func (f *FuncDecl) String() string {
	return "FUNCTION " + f.Name + " -> " + f.ReturnType.String()
}

// ProcDecl declares a PROCEDURE: parameters, local declarations, a body,
// and no result slot.
type ProcDecl struct {
	Token  lexer.Token
	Name   string
	Params []Parameter
	Locals []Declaration
	Body   []Statement
}

func (p *ProcDecl) TokenLiteral() string { return p.Token.Literal }
func (p *ProcDecl) Pos() lexer.Position  { return p.Token.Pos }
func (p *ProcDecl) declarationNode()     {}
func (p *ProcDecl) String() string {
	return "PROCEDURE " + p.Name
}
