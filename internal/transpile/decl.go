package transpile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eap-lang/eap/internal/ast"
	"github.com/eap-lang/eap/pkg/ident"
)

// offsetHelper is emitted once per translation unit. It flattens an
// arbitrary-dimension, arbitrary-origin index tuple into a single array
// offset, the generated-C equivalent of the interpreter's sparse-map array
// object (spec.md §4.5's array-bounds side table, realized as data instead
// of as interpreter state).
const offsetHelper = `static long eap_offset(int ndims, const long *origin, const long *extent, const long *idx) {
    long offset = 0;
    for (int d = 0; d < ndims; d++) {
        long stride = 1;
        for (int k = d + 1; k < ndims; k++) stride *= extent[k];
        offset += (idx[d] - origin[d]) * stride;
    }
    return offset;
}
`

func (t *Transpiler) emitGlobal(v *ast.VarDecl) error {
	name := sanitize(v.Name)
	if !v.IsArray() {
		fmt.Fprintf(&t.out, "static %s %s = %s;\n", cType(v.BaseType), name, zeroLiteral(v.BaseType))
		return nil
	}

	info, err := t.resolveBounds(v.Bounds)
	if err != nil {
		return fmt.Errorf("array %q: %w", v.Name, err)
	}
	t.arrays[ident.Normalize(v.Name)] = info

	fmt.Fprintf(&t.out, "static %s %s[%d];\n", cType(v.BaseType), name, info.size())
	fmt.Fprintf(&t.out, "static const long %s_origin[] = {%s};\n", name, joinInts(info.origins))
	fmt.Fprintf(&t.out, "static const long %s_extent[] = {%s};\n", name, joinInts(info.extents))
	return nil
}

// resolveBounds requires every dimension's bounds to fold to integer
// literals, since C needs the array's flattened size at compile time. A
// program whose DATA section computes a bound from, say, a named constant
// still works: foldInt resolves CONSTANTS-section references recorded by
// recordConst, just not arbitrary runtime expressions.
func (t *Transpiler) resolveBounds(bounds []ast.Bound) (arrayInfo, error) {
	var info arrayInfo
	for _, b := range bounds {
		from, err := t.foldInt(b.From)
		if err != nil {
			return arrayInfo{}, fmt.Errorf("lower bound must be a constant expression: %w", err)
		}
		to, err := t.foldInt(b.To)
		if err != nil {
			return arrayInfo{}, fmt.Errorf("upper bound must be a constant expression: %w", err)
		}
		info.origins = append(info.origins, from)
		info.extents = append(info.extents, to-from+1)
	}
	return info, nil
}

// foldInt evaluates a constant-shaped integer expression: a literal, a
// named constant, or +, - and * combinations of those. It does not handle
// general arithmetic, only what an array bound plausibly contains.
func (t *Transpiler) foldInt(e ast.Expression) (int64, error) {
	switch expr := e.(type) {
	case *ast.Literal:
		if expr.Type != ast.Integer {
			return 0, fmt.Errorf("non-integer literal in constant position")
		}
		return expr.Value.(int64), nil
	case *ast.UnaryExpr:
		v, err := t.foldInt(expr.Operand)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case *ast.BinaryExpr:
		l, err := t.foldInt(expr.Left)
		if err != nil {
			return 0, err
		}
		r, err := t.foldInt(expr.Right)
		if err != nil {
			return 0, err
		}
		switch expr.Token.Literal {
		case "+":
			return l + r, nil
		case "-":
			return l - r, nil
		case "*":
			return l * r, nil
		}
		return 0, fmt.Errorf("unsupported operator %q in constant expression", expr.Token.Literal)
	case *ast.Identifier:
		if v, ok := t.constInts[ident.Normalize(expr.Name)]; ok {
			return v, nil
		}
		return 0, fmt.Errorf("identifier %q is not a known integer constant", expr.Name)
	default:
		return 0, fmt.Errorf("expression is not a constant")
	}
}

func joinInts(vals []int64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ", ")
}

func zeroLiteral(b ast.BaseType) string {
	switch b {
	case ast.Integer:
		return "0"
	case ast.Real:
		return "0.0"
	case ast.Boolean:
		return "false"
	case ast.Character:
		return "'\\0'"
	default:
		return `""`
	}
}

// constExpr renders a CONSTANTS-section value as C.
func (t *Transpiler) constExpr(e ast.Expression) (string, error) {
	return t.exprToC(e)
}

func (t *Transpiler) recordConst(name string, e ast.Expression) {
	if t.constInts == nil {
		t.constInts = make(map[string]int64)
	}
	if v, err := t.foldInt(e); err == nil {
		t.constInts[ident.Normalize(name)] = v
	}
}

func (t *Transpiler) paramList(params []ast.Parameter) string {
	var parts []string
	for _, p := range params {
		name := sanitize(p.Name)
		switch {
		case p.IsArray:
			parts = append(parts, fmt.Sprintf("%s *%s, const long *%s_origin, const long *%s_extent", cType(p.BaseType), name, name, name))
		case p.ByRef:
			parts = append(parts, fmt.Sprintf("%s *%s", cType(p.BaseType), name))
		default:
			parts = append(parts, fmt.Sprintf("%s %s", cType(p.BaseType), name))
		}
	}
	if len(parts) == 0 {
		return "void"
	}
	return strings.Join(parts, ", ")
}

func (t *Transpiler) emitForwardDecl(name string, retType *ast.BaseType, params []ast.Parameter) {
	ret := "void"
	if retType != nil {
		ret = cType(*retType)
	}
	fmt.Fprintf(&t.out, "static %s %s(%s);\n", ret, sanitize(name), t.paramList(params))
}

func (t *Transpiler) emitProc(p *ast.ProcDecl) error {
	fmt.Fprintf(&t.out, "static void %s(%s) {\n", sanitize(p.Name), t.paramList(p.Params))
	if err := t.emitLocals(p.Locals); err != nil {
		return err
	}
	for _, s := range p.Body {
		if err := t.emitStatement(s, "    "); err != nil {
			return err
		}
	}
	t.out.WriteString("}\n\n")
	return nil
}

func (t *Transpiler) emitFunc(f *ast.FuncDecl) error {
	resultVar := sanitize(f.Name) + "_result"
	fmt.Fprintf(&t.out, "static %s %s(%s) {\n", cType(f.ReturnType), sanitize(f.Name), t.paramList(f.Params))
	fmt.Fprintf(&t.out, "    %s %s = %s;\n", cType(f.ReturnType), resultVar, zeroLiteral(f.ReturnType))

	prevName, prevVar := t.currentFuncName, t.currentResultVar
	t.currentFuncName, t.currentResultVar = ident.Normalize(f.Name), resultVar
	defer func() { t.currentFuncName, t.currentResultVar = prevName, prevVar }()

	if err := t.emitLocals(f.Locals); err != nil {
		return err
	}
	for _, s := range f.Body {
		if err := t.emitStatement(s, "    "); err != nil {
			return err
		}
	}
	fmt.Fprintf(&t.out, "    return %s;\n}\n\n", resultVar)
	return nil
}

func (t *Transpiler) emitLocals(locals []ast.Declaration) error {
	for _, decl := range locals {
		v, ok := decl.(*ast.VarDecl)
		if !ok {
			continue
		}
		t.varTypes[ident.Normalize(v.Name)] = v.BaseType
		name := sanitize(v.Name)
		if !v.IsArray() {
			fmt.Fprintf(&t.out, "    %s %s = %s;\n", cType(v.BaseType), name, zeroLiteral(v.BaseType))
			continue
		}
		info, err := t.resolveBounds(v.Bounds)
		if err != nil {
			return fmt.Errorf("local array %q: %w", v.Name, err)
		}
		t.arrays[ident.Normalize(v.Name)] = info
		fmt.Fprintf(&t.out, "    static %s %s[%d];\n", cType(v.BaseType), name, info.size())
		fmt.Fprintf(&t.out, "    static const long %s_origin[] = {%s};\n", name, joinInts(info.origins))
		fmt.Fprintf(&t.out, "    static const long %s_extent[] = {%s};\n", name, joinInts(info.extents))
	}
	return nil
}
