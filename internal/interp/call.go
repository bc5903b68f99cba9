package interp

import (
	"github.com/eap-lang/eap/internal/ast"
	cerrors "github.com/eap-lang/eap/internal/errors"
	"github.com/eap-lang/eap/pkg/ident"
)

// writeback remembers how to copy a by-reference parameter's final value
// back into the caller's scope once a call returns.
type writeback struct {
	paramName string
	target    ast.Expression
	env       *Environment
}

// call invokes the function or procedure named by expr.Callee. Array
// handles are always shared directly with the callee regardless of the
// parameter's declared passing mode, matching spec.md §4.4's array-aliasing
// rule; every other by-reference parameter is copied in and copied back out
// by assignment once the body returns, and only identifier or array-element
// argument forms are eligible for that copy-back.
func (it *Interpreter) call(expr *ast.CallExpr, callerEnv *Environment) (Value, error) {
	name := ident.Normalize(expr.Callee)

	var params []ast.Parameter
	var locals []ast.Declaration
	var body []ast.Statement
	var returnType *ast.BaseType

	if fn, ok := it.funcs[name]; ok {
		params, locals, body = fn.Params, fn.Locals, fn.Body
		rt := fn.ReturnType
		returnType = &rt
	} else if proc, ok := it.procs[name]; ok {
		params, locals, body = proc.Params, proc.Locals, proc.Body
	} else {
		return Value{}, cerrors.NewRuntime(expr.Pos(), it.source, "undefined procedure or function %q", expr.Callee)
	}

	if len(expr.Args) != len(params) {
		return Value{}, cerrors.NewRuntime(expr.Pos(), it.source, "%q expects %d argument(s), got %d", expr.Callee, len(params), len(expr.Args))
	}

	it.debugf("call %s (%d args)", expr.Callee, len(expr.Args))

	calleeEnv := NewEnvironment(it.root)
	var writebacks []writeback

	for i, param := range params {
		argExpr := expr.Args[i]

		if handle, ok := arrayHandle(argExpr, callerEnv); ok {
			calleeEnv.Define(param.Name, ArrayVal(handle))
			continue
		}

		argVal, err := it.evalExpr(argExpr, callerEnv)
		if err != nil {
			return Value{}, err
		}
		calleeEnv.Define(param.Name, argVal)

		if param.ByRef && isAssignableForm(argExpr) {
			writebacks = append(writebacks, writeback{paramName: param.Name, target: argExpr, env: callerEnv})
		}
	}

	if returnType != nil {
		// Spec.md §4.4 pre-binds the result slot to "a real zero," not a
		// zero of the function's declared return type.
		calleeEnv.Define(expr.Callee, RealVal(0))
	}

	for _, decl := range locals {
		if v, ok := decl.(*ast.VarDecl); ok {
			if err := it.declareVar(v, calleeEnv); err != nil {
				return Value{}, err
			}
		}
	}

	if err := it.execBlock(body, calleeEnv); err != nil {
		return Value{}, err
	}

	for _, wb := range writebacks {
		final, _ := calleeEnv.Get(wb.paramName)
		if err := it.assignTo(wb.target, final, wb.env); err != nil {
			return Value{}, err
		}
	}

	if returnType != nil {
		result, _ := calleeEnv.Get(expr.Callee)
		return result, nil
	}
	return NoneVal(), nil
}

// arrayHandle reports whether argExpr is a plain identifier currently
// bound to an array, and if so returns the shared *Array.
func arrayHandle(argExpr ast.Expression, env *Environment) (*Array, bool) {
	id, ok := argExpr.(*ast.Identifier)
	if !ok {
		return nil, false
	}
	v, ok := env.Get(id.Name)
	if !ok || v.Kind != KindArray {
		return nil, false
	}
	return v.Arr, true
}

func isAssignableForm(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.ArrayAccess:
		return true
	default:
		return false
	}
}
