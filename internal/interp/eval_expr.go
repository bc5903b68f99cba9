package interp

import (
	"strings"

	"github.com/eap-lang/eap/internal/ast"
	cerrors "github.com/eap-lang/eap/internal/errors"
	"github.com/eap-lang/eap/internal/lexer"
)

func (it *Interpreter) evalExpr(e ast.Expression, env *Environment) (Value, error) {
	switch expr := e.(type) {
	case *ast.Literal:
		return literalValue(expr), nil
	case *ast.Identifier:
		if v, ok := env.Get(expr.Name); ok {
			return v, nil
		}
		return Value{}, cerrors.NewRuntime(expr.Pos(), it.source, "undefined identifier %q", expr.Name)
	case *ast.ArrayAccess:
		return it.evalArrayAccess(expr, env)
	case *ast.BinaryExpr:
		return it.evalBinary(expr, env)
	case *ast.UnaryExpr:
		return it.evalUnary(expr, env)
	case *ast.CallExpr:
		return it.call(expr, env)
	default:
		return Value{}, cerrors.NewRuntime(e.Pos(), it.source, "unsupported expression")
	}
}

func literalValue(l *ast.Literal) Value {
	switch l.Type {
	case ast.Integer:
		return IntVal(l.Value.(int64))
	case ast.Real:
		return RealVal(l.Value.(float64))
	case ast.Boolean:
		return BoolVal(l.Value.(bool))
	default:
		return StringVal(l.Value.(string))
	}
}

func (it *Interpreter) evalArrayAccess(a *ast.ArrayAccess, env *Environment) (Value, error) {
	arrVal, ok := env.Get(a.Name)
	if !ok || arrVal.Kind != KindArray {
		return Value{}, cerrors.NewRuntime(a.Pos(), it.source, "%q is not an array", a.Name)
	}
	indices, err := it.evalIndices(a.Indices, env)
	if err != nil {
		return Value{}, err
	}
	v, err := arrVal.Arr.Get(indices)
	if err != nil {
		return Value{}, cerrors.NewRuntime(a.Pos(), it.source, "%s", err)
	}
	return v, nil
}

func (it *Interpreter) evalUnary(u *ast.UnaryExpr, env *Environment) (Value, error) {
	v, err := it.evalExpr(u.Operand, env)
	if err != nil {
		return Value{}, err
	}
	switch u.Op {
	case lexer.MINUS:
		if v.Kind == KindReal {
			return RealVal(-v.Real), nil
		}
		if v.Kind == KindInt {
			return IntVal(-v.Int), nil
		}
		return Value{}, cerrors.NewRuntime(u.Pos(), it.source, "unary - requires a numeric operand, found %s", v.Kind)
	case lexer.NOT:
		return BoolVal(!v.Truthy()), nil
	default:
		return Value{}, cerrors.NewRuntime(u.Pos(), it.source, "unsupported unary operator")
	}
}

// evalBinary implements spec.md §4.4's arithmetic promotion, comparison,
// and logical-operator rules. AND/OR always evaluate both operands: the
// language has no short-circuit evaluation.
func (it *Interpreter) evalBinary(b *ast.BinaryExpr, env *Environment) (Value, error) {
	left, err := it.evalExpr(b.Left, env)
	if err != nil {
		return Value{}, err
	}
	right, err := it.evalExpr(b.Right, env)
	if err != nil {
		return Value{}, err
	}

	switch b.Op {
	case lexer.AND:
		return BoolVal(left.Truthy() && right.Truthy()), nil
	case lexer.OR:
		return BoolVal(left.Truthy() || right.Truthy()), nil
	case lexer.PLUS:
		return arithmetic(left, right, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }), nil
	case lexer.MINUS:
		return arithmetic(left, right, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }), nil
	case lexer.MULTIPLY:
		return arithmetic(left, right, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }), nil
	case lexer.DIVIDE:
		if right.AsFloat() == 0 {
			return Value{}, cerrors.NewRuntime(b.Pos(), it.source, "division by zero")
		}
		return RealVal(left.AsFloat() / right.AsFloat()), nil
	case lexer.DIV:
		ri := int64(right.AsFloat())
		if ri == 0 {
			return Value{}, cerrors.NewRuntime(b.Pos(), it.source, "division by zero")
		}
		return IntVal(int64(left.AsFloat()) / ri), nil
	case lexer.MOD:
		ri := int64(right.AsFloat())
		if ri == 0 {
			return Value{}, cerrors.NewRuntime(b.Pos(), it.source, "division by zero")
		}
		return IntVal(int64(left.AsFloat()) % ri), nil
	case lexer.EQUALS, lexer.NOT_EQUALS, lexer.LESS_THAN, lexer.GREATER_THAN, lexer.LESS_EQUALS, lexer.GREATER_EQUALS:
		return compare(left, right, b.Op), nil
	default:
		return Value{}, cerrors.NewRuntime(b.Pos(), it.source, "unsupported binary operator")
	}
}

// arithmetic promotes to real whenever either operand is real; two
// integers stay integers (spec.md §4.4).
func arithmetic(left, right Value, intOp func(int64, int64) int64, realOp func(float64, float64) float64) Value {
	if left.Kind == KindReal || right.Kind == KindReal {
		return RealVal(realOp(left.AsFloat(), right.AsFloat()))
	}
	return IntVal(intOp(left.Int, right.Int))
}

// compare implements every relational operator. Numeric operands are
// always lifted to real before comparing, so "1 = 1.0" reads true
// (spec.md §4.4); strings compare lexicographically; booleans compare only
// for equality.
func compare(left, right Value, op lexer.TokenType) Value {
	if isNumeric(left) && isNumeric(right) {
		a, b := left.AsFloat(), right.AsFloat()
		return BoolVal(compareOp(op, cmpFloat(a, b)))
	}
	if left.Kind == KindString && right.Kind == KindString {
		return BoolVal(compareOp(op, strings.Compare(left.Str, right.Str)))
	}
	if left.Kind == KindBool && right.Kind == KindBool {
		switch op {
		case lexer.EQUALS:
			return BoolVal(left.Bool == right.Bool)
		case lexer.NOT_EQUALS:
			return BoolVal(left.Bool != right.Bool)
		}
	}
	return BoolVal(false)
}

func isNumeric(v Value) bool { return v.Kind == KindInt || v.Kind == KindReal }

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareOp(op lexer.TokenType, cmp int) bool {
	switch op {
	case lexer.EQUALS:
		return cmp == 0
	case lexer.NOT_EQUALS:
		return cmp != 0
	case lexer.LESS_THAN:
		return cmp < 0
	case lexer.GREATER_THAN:
		return cmp > 0
	case lexer.LESS_EQUALS:
		return cmp <= 0
	case lexer.GREATER_EQUALS:
		return cmp >= 0
	default:
		return false
	}
}
