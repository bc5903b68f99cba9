// Package interp evaluates a Program AST directly, tree-walking style,
// against a chained lexical Environment (spec.md §4.4). The runtime value
// representation is a six-way tagged variant — integer, real, boolean,
// string, array, or none — mirroring original_source/interpreter.c's
// RuntimeValue union and the teacher's own small-value-struct convention
// (go-dws's internal/interp/runtime/primitives.go).
package interp

import (
	"strconv"

	"github.com/eap-lang/eap/internal/ast"
)

// Kind tags which field of a Value is meaningful.
type Kind int

const (
	KindInt Kind = iota
	KindReal
	KindBool
	KindString
	KindArray
	KindNone
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "INTEGER"
	case KindReal:
		return "REAL"
	case KindBool:
		return "BOOLEAN"
	case KindString:
		return "STRING"
	case KindArray:
		return "ARRAY"
	default:
		return "NONE"
	}
}

// Value is a runtime value of one of the six kinds.
type Value struct {
	Kind Kind
	Int  int64
	Real float64
	Bool bool
	Str  string
	Arr  *Array
}

func IntVal(v int64) Value      { return Value{Kind: KindInt, Int: v} }
func RealVal(v float64) Value   { return Value{Kind: KindReal, Real: v} }
func BoolVal(v bool) Value      { return Value{Kind: KindBool, Bool: v} }
func StringVal(v string) Value  { return Value{Kind: KindString, Str: v} }
func ArrayVal(a *Array) Value   { return Value{Kind: KindArray, Arr: a} }
func NoneVal() Value            { return Value{Kind: KindNone} }

// ZeroValue returns a declaration's default value, by base type: zero,
// 0.0, FALSE, or the empty string (spec.md §3's variable default values).
func ZeroValue(t ast.BaseType) Value {
	switch t {
	case ast.Integer:
		return IntVal(0)
	case ast.Real:
		return RealVal(0)
	case ast.Boolean:
		return BoolVal(false)
	default:
		return StringVal("")
	}
}

// AsFloat converts an int or real Value to float64. Any other kind is a
// caller error (the evaluator only calls this after a type check).
func (v Value) AsFloat() float64 {
	if v.Kind == KindInt {
		return float64(v.Int)
	}
	return v.Real
}

// Truthy implements the language's truthiness rule: booleans by their own
// value, numbers by non-zero, strings by non-empty. Arrays and none are
// never truthy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindInt:
		return v.Int != 0
	case KindReal:
		return v.Real != 0
	case KindString:
		return v.Str != ""
	default:
		return false
	}
}

// Format renders v the way PRINT writes it to standard output.
func (v Value) Format() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindReal:
		return strconv.FormatFloat(v.Real, 'g', -1, 64)
	case KindBool:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	case KindString:
		return v.Str
	case KindArray:
		return "<array>"
	default:
		return ""
	}
}
