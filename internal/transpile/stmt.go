package transpile

import (
	"fmt"

	"github.com/eap-lang/eap/internal/ast"
	"github.com/eap-lang/eap/internal/lexer"
	"github.com/eap-lang/eap/pkg/ident"
)

func (t *Transpiler) emitStatement(stmt ast.Statement, indent string) error {
	switch s := stmt.(type) {
	case *ast.Assignment:
		return t.emitAssignment(s, indent)
	case *ast.Print:
		return t.emitPrint(s, indent)
	case *ast.Read:
		return t.emitRead(s, indent)
	case *ast.If:
		return t.emitIf(s, indent)
	case *ast.For:
		return t.emitFor(s, indent)
	case *ast.While:
		return t.emitWhile(s, indent)
	case *ast.CallStatement:
		call, err := t.callToC(s.Call)
		if err != nil {
			return err
		}
		fmt.Fprintf(&t.out, "%s%s;\n", indent, call)
		return nil
	default:
		return fmt.Errorf("transpile: unsupported statement at %s", stmt.Pos())
	}
}

func (t *Transpiler) emitAssignment(a *ast.Assignment, indent string) error {
	value, err := t.exprToC(a.Value)
	if err != nil {
		return err
	}
	switch target := a.Target.(type) {
	case *ast.Identifier:
		fmt.Fprintf(&t.out, "%s%s = %s;\n", indent, t.identifierToC(target.Name), value)
	case *ast.ArrayAccess:
		lhs, err := t.arrayAccessToC(target)
		if err != nil {
			return err
		}
		fmt.Fprintf(&t.out, "%s%s = %s;\n", indent, lhs, value)
	default:
		return fmt.Errorf("transpile: unsupported assignment target at %s", a.Pos())
	}
	return nil
}

// emitPrint writes each argument with printf, one call per argument, since
// the source format is inferred per value rather than built as a single
// format string (spec.md §4.5's print-format-inference note): a value whose
// static type cannot be determined defaults to the integer specifier.
func (t *Transpiler) emitPrint(p *ast.Print, indent string) error {
	wroteValue := false
	for _, arg := range p.Args {
		if isEolnRef(arg) {
			fmt.Fprintf(&t.out, "%sprintf(\"\\n\");\n", indent)
			wroteValue = false
			continue
		}
		if wroteValue {
			fmt.Fprintf(&t.out, "%sprintf(\" \");\n", indent)
		}
		expr, err := t.exprToC(arg)
		if err != nil {
			return err
		}
		switch t.inferType(arg) {
		case ast.Real:
			fmt.Fprintf(&t.out, "%sprintf(\"%%g\", %s);\n", indent, expr)
		case ast.Boolean:
			fmt.Fprintf(&t.out, "%sprintf(\"%%s\", (%s) ? \"TRUE\" : \"FALSE\");\n", indent, expr)
		case ast.StringType, ast.Character:
			fmt.Fprintf(&t.out, "%sprintf(\"%%s\", %s);\n", indent, expr)
		default:
			fmt.Fprintf(&t.out, "%sprintf(\"%%ld\", (long)(%s));\n", indent, expr)
		}
		wroteValue = true
	}
	return nil
}

func isEolnRef(e ast.Expression) bool {
	id, ok := e.(*ast.Identifier)
	return ok && lexer.IsEndOfLineConstant(id.Name)
}

func (t *Transpiler) emitRead(r *ast.Read, indent string) error {
	for _, target := range r.Targets {
		spec, lvalue, err := t.scanfTarget(target)
		if err != nil {
			return err
		}
		fmt.Fprintf(&t.out, "%sscanf(\"%s\", %s);\n", indent, spec, lvalue)
	}
	return nil
}

func (t *Transpiler) scanfTarget(target ast.Expression) (spec, lvalue string, err error) {
	typ := t.inferType(target)
	switch v := target.(type) {
	case *ast.Identifier:
		lvalue = "&" + t.identifierToC(v.Name)
	case *ast.ArrayAccess:
		addr, err := t.arrayAccessToC(v)
		if err != nil {
			return "", "", err
		}
		lvalue = "&" + addr
	default:
		return "", "", fmt.Errorf("transpile: unsupported read target at %s", target.Pos())
	}
	switch typ {
	case ast.Real:
		spec = "%lf"
	case ast.StringType, ast.Character:
		spec = "%255s"
	default:
		spec = "%ld"
	}
	return spec, lvalue, nil
}

func (t *Transpiler) emitIf(s *ast.If, indent string) error {
	cond, err := t.exprToC(s.Cond)
	if err != nil {
		return err
	}
	fmt.Fprintf(&t.out, "%sif (%s) {\n", indent, cond)
	for _, st := range s.Then {
		if err := t.emitStatement(st, indent+"    "); err != nil {
			return err
		}
	}
	if s.Else != nil {
		fmt.Fprintf(&t.out, "%s} else {\n", indent)
		for _, st := range s.Else {
			if err := t.emitStatement(st, indent+"    "); err != nil {
				return err
			}
		}
	}
	fmt.Fprintf(&t.out, "%s}\n", indent)
	return nil
}

// emitFor chooses <= when the step is a non-negative literal or cannot be
// determined to be negative, and >= when the step is a negative literal;
// a non-literal step defaults to the ascending comparison, the same
// documented default spec.md §9 records for the transpiler's open question
// on this point.
func (t *Transpiler) emitFor(s *ast.For, indent string) error {
	start, err := t.exprToC(s.Start)
	if err != nil {
		return err
	}
	end, err := t.exprToC(s.End)
	if err != nil {
		return err
	}
	step := "1"
	descending := false
	if s.Step != nil {
		step, err = t.exprToC(s.Step)
		if err != nil {
			return err
		}
		switch st := s.Step.(type) {
		case *ast.Literal:
			descending = st.Type == ast.Integer && st.Value.(int64) < 0
		case *ast.UnaryExpr:
			// The parser yields "-1" as unary minus applied to the literal 1.
			if lit, ok := st.Operand.(*ast.Literal); ok && st.Op == lexer.MINUS && lit.Type == ast.Integer {
				descending = lit.Value.(int64) > 0
			}
		}
	}
	varName := sanitize(s.Var)
	t.varTypes[ident.Normalize(s.Var)] = ast.Integer

	cmp := "<="
	if descending {
		cmp = ">="
	}
	fmt.Fprintf(&t.out, "%slong %s;\n", indent, varName)
	fmt.Fprintf(&t.out, "%sfor (%s = %s; %s %s %s; %s += %s) {\n", indent, varName, start, varName, cmp, end, varName, step)
	for _, st := range s.Body {
		if err := t.emitStatement(st, indent+"    "); err != nil {
			return err
		}
	}
	fmt.Fprintf(&t.out, "%s}\n", indent)
	return nil
}

func (t *Transpiler) emitWhile(s *ast.While, indent string) error {
	cond, err := t.exprToC(s.Cond)
	if err != nil {
		return err
	}
	if s.IsUntil {
		fmt.Fprintf(&t.out, "%sdo {\n", indent)
		for _, st := range s.Body {
			if err := t.emitStatement(st, indent+"    "); err != nil {
				return err
			}
		}
		fmt.Fprintf(&t.out, "%s} while (!(%s));\n", indent, cond)
		return nil
	}
	fmt.Fprintf(&t.out, "%swhile (%s) {\n", indent, cond)
	for _, st := range s.Body {
		if err := t.emitStatement(st, indent+"    "); err != nil {
			return err
		}
	}
	fmt.Fprintf(&t.out, "%s}\n", indent)
	return nil
}

// inferType statically determines the base type of an expression from
// declared variable/array types and literal shapes, defaulting to Integer
// wherever it cannot (spec.md §9's documented print-format default).
func (t *Transpiler) inferType(e ast.Expression) ast.BaseType {
	switch expr := e.(type) {
	case *ast.Literal:
		return expr.Type
	case *ast.Identifier:
		if typ, ok := t.varTypes[ident.Normalize(expr.Name)]; ok {
			return typ
		}
		return ast.Integer
	case *ast.ArrayAccess:
		if typ, ok := t.varTypes[ident.Normalize(expr.Name)]; ok {
			return typ
		}
		return ast.Integer
	case *ast.UnaryExpr:
		if expr.Op == lexer.NOT {
			return ast.Boolean
		}
		return t.inferType(expr.Operand)
	case *ast.BinaryExpr:
		switch expr.Op {
		case lexer.EQUALS, lexer.NOT_EQUALS, lexer.LESS_THAN, lexer.GREATER_THAN,
			lexer.LESS_EQUALS, lexer.GREATER_EQUALS, lexer.AND, lexer.OR:
			return ast.Boolean
		case lexer.DIVIDE:
			return ast.Real
		}
		lt, rt := t.inferType(expr.Left), t.inferType(expr.Right)
		if lt == ast.StringType || rt == ast.StringType {
			return ast.StringType
		}
		if lt == ast.Real || rt == ast.Real {
			return ast.Real
		}
		return ast.Integer
	case *ast.CallExpr:
		if fn, ok := t.funcs[ident.Normalize(expr.Callee)]; ok {
			return fn.ReturnType
		}
		return ast.Integer
	default:
		return ast.Integer
	}
}
