package transpile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eap-lang/eap/internal/ast"
	"github.com/eap-lang/eap/internal/lexer"
	"github.com/eap-lang/eap/pkg/ident"
)

var binaryOpText = map[lexer.TokenType]string{
	lexer.PLUS: "+", lexer.MINUS: "-", lexer.MULTIPLY: "*",
	lexer.EQUALS: "==", lexer.NOT_EQUALS: "!=",
	lexer.LESS_THAN: "<", lexer.GREATER_THAN: ">",
	lexer.LESS_EQUALS: "<=", lexer.GREATER_EQUALS: ">=",
	lexer.AND: "&&", lexer.OR: "||",
}

func (t *Transpiler) exprToC(e ast.Expression) (string, error) {
	switch expr := e.(type) {
	case *ast.Literal:
		return t.literalToC(expr)
	case *ast.Identifier:
		return t.identifierToC(expr.Name), nil
	case *ast.ArrayAccess:
		return t.arrayAccessToC(expr)
	case *ast.UnaryExpr:
		inner, err := t.exprToC(expr.Operand)
		if err != nil {
			return "", err
		}
		if expr.Op == lexer.NOT {
			return fmt.Sprintf("(!%s)", inner), nil
		}
		return fmt.Sprintf("(-%s)", inner), nil
	case *ast.BinaryExpr:
		return t.binaryToC(expr)
	case *ast.CallExpr:
		return t.callToC(expr)
	default:
		return "", fmt.Errorf("transpile: unsupported expression at %s", e.Pos())
	}
}

func (t *Transpiler) literalToC(l *ast.Literal) (string, error) {
	switch l.Type {
	case ast.Integer:
		return strconv.FormatInt(l.Value.(int64), 10), nil
	case ast.Real:
		return strconv.FormatFloat(l.Value.(float64), 'g', -1, 64), nil
	case ast.Boolean:
		if l.Value.(bool) {
			return "true", nil
		}
		return "false", nil
	default:
		return strconv.Quote(l.Value.(string)), nil
	}
}

// identifierToC resolves a bare name reference. Inside a function body, a
// reference to the function's own name reads its result slot rather than a
// variable of that name (spec.md §4.5).
func (t *Transpiler) identifierToC(name string) string {
	if t.currentFuncName != "" && ident.Normalize(name) == t.currentFuncName {
		return t.currentResultVar
	}
	if lexer.IsEndOfLineConstant(name) {
		return `"\n"`
	}
	return sanitize(name)
}

func (t *Transpiler) arrayAccessToC(a *ast.ArrayAccess) (string, error) {
	indices := make([]string, len(a.Indices))
	for i, idxExpr := range a.Indices {
		s, err := t.exprToC(idxExpr)
		if err != nil {
			return "", err
		}
		indices[i] = s
	}
	name := sanitize(a.Name)
	idxLiteral := fmt.Sprintf("(long[]){%s}", strings.Join(indices, ", "))
	offset := fmt.Sprintf("eap_offset(%d, %s_origin, %s_extent, %s)", len(indices), name, name, idxLiteral)
	return fmt.Sprintf("%s[%s]", name, offset), nil
}

func (t *Transpiler) binaryToC(b *ast.BinaryExpr) (string, error) {
	left, err := t.exprToC(b.Left)
	if err != nil {
		return "", err
	}
	right, err := t.exprToC(b.Right)
	if err != nil {
		return "", err
	}

	switch b.Op {
	case lexer.DIVIDE:
		return fmt.Sprintf("(((double)(%s)) / ((double)(%s)))", left, right), nil
	case lexer.DIV:
		return fmt.Sprintf("((long)(%s) / (long)(%s))", left, right), nil
	case lexer.MOD:
		return fmt.Sprintf("((long)(%s) %% (long)(%s))", left, right), nil
	}
	if op, ok := binaryOpText[b.Op]; ok {
		return fmt.Sprintf("(%s %s %s)", left, op, right), nil
	}
	return "", fmt.Errorf("transpile: unsupported operator %v at %s", b.Op, b.Pos())
}

func (t *Transpiler) callToC(c *ast.CallExpr) (string, error) {
	name := ident.Normalize(c.Callee)
	var params []ast.Parameter
	if fn, ok := t.funcs[name]; ok {
		params = fn.Params
	} else if proc, ok := t.procs[name]; ok {
		params = proc.Params
	} else {
		return "", fmt.Errorf("transpile: call to undeclared %q at %s", c.Callee, c.Pos())
	}
	if len(params) != len(c.Args) {
		return "", fmt.Errorf("transpile: %q expects %d argument(s), got %d", c.Callee, len(params), len(c.Args))
	}

	args := make([]string, 0, len(c.Args))
	for i, argExpr := range c.Args {
		param := params[i]
		switch {
		case param.IsArray:
			id, ok := argExpr.(*ast.Identifier)
			if !ok {
				return "", fmt.Errorf("transpile: argument to array parameter %q must be a plain array name", param.Name)
			}
			base := sanitize(id.Name)
			args = append(args, base, base+"_origin", base+"_extent")
		case param.ByRef:
			switch arg := argExpr.(type) {
			case *ast.Identifier:
				args = append(args, "&"+t.identifierToC(arg.Name))
			case *ast.ArrayAccess:
				s, err := t.arrayAccessToC(arg)
				if err != nil {
					return "", err
				}
				args = append(args, "&"+s)
			default:
				return "", fmt.Errorf("transpile: argument to reference parameter %q must be a variable or array element", param.Name)
			}
		default:
			s, err := t.exprToC(argExpr)
			if err != nil {
				return "", err
			}
			args = append(args, s)
		}
	}
	return fmt.Sprintf("%s(%s)", sanitize(c.Callee), strings.Join(args, ", ")), nil
}
