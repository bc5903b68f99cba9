// Package transpile lowers a Program AST to standalone C source text
// (spec.md §4.5). It mirrors the side-table approach of
// original_source/interpreter.c's CodeGenerator: rather than carrying type
// and bound information on every AST node, the transpiler builds one table
// mapping each array name to its per-dimension origin and extent, and a
// second mapping each variable name to its base type, and consults both at
// every access site it emits.
package transpile

import (
	"fmt"
	"strings"

	"github.com/eap-lang/eap/internal/ast"
	"github.com/eap-lang/eap/pkg/ident"
)

// arrayInfo records one array variable's per-dimension bounds, resolved to
// literal integers at transpile time. Non-constant bounds are rejected:
// C needs the flattened size at compile time.
type arrayInfo struct {
	origins []int64
	extents []int64
}

func (a arrayInfo) size() int64 {
	total := int64(1)
	for _, e := range a.extents {
		total *= e
	}
	return total
}

// Transpiler holds the side tables built while walking declarations, and
// the buffer the C source is assembled into.
type Transpiler struct {
	out      strings.Builder
	varTypes map[string]ast.BaseType
	arrays   map[string]arrayInfo
	funcs    map[string]*ast.FuncDecl
	procs    map[string]*ast.ProcDecl

	// constInts records every CONSTANTS-section value that folds to a
	// plain integer, so array bounds elsewhere may reference it.
	constInts map[string]int64

	// currentFuncName and currentResultVar are set while emitting a
	// function body: an assignment or reference to the function's own
	// name inside its body targets the result slot instead of an
	// ordinary variable (spec.md §4.5's "<function>_result" convention).
	currentFuncName   string
	currentResultVar string
}

// Transpile renders prog as a complete C translation unit.
func Transpile(prog *ast.Program) (string, error) {
	t := &Transpiler{
		varTypes: make(map[string]ast.BaseType),
		arrays:   make(map[string]arrayInfo),
		funcs:    make(map[string]*ast.FuncDecl),
		procs:    make(map[string]*ast.ProcDecl),
	}
	return t.run(prog)
}

func (t *Transpiler) run(prog *ast.Program) (string, error) {
	fmt.Fprintf(&t.out, "/* generated from %q; do not edit by hand */\n", prog.Name)
	t.out.WriteString("#include <stdio.h>\n#include <stdbool.h>\n#include <string.h>\n\n")
	t.out.WriteString(offsetHelper)
	t.out.WriteString("\n")

	var consts []*ast.ConstDecl
	var globals []*ast.VarDecl
	for _, decl := range prog.Declarations {
		switch d := decl.(type) {
		case *ast.ConstDecl:
			consts = append(consts, d)
		case *ast.VarDecl:
			globals = append(globals, d)
			t.varTypes[ident.Normalize(d.Name)] = d.BaseType
		case *ast.FuncDecl:
			t.funcs[ident.Normalize(d.Name)] = d
			for _, p := range d.Params {
				t.varTypes[ident.Normalize(p.Name)] = p.BaseType
			}
		case *ast.ProcDecl:
			t.procs[ident.Normalize(d.Name)] = d
			for _, p := range d.Params {
				t.varTypes[ident.Normalize(p.Name)] = p.BaseType
			}
		}
	}

	for _, c := range consts {
		expr, err := t.constExpr(c.Value)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&t.out, "#define %s (%s)\n", sanitize(c.Name), expr)
		t.recordConst(c.Name, c.Value)
	}
	t.out.WriteString("\n")

	for _, g := range globals {
		if err := t.emitGlobal(g); err != nil {
			return "", err
		}
	}
	t.out.WriteString("\n")

	for _, name := range sortedKeys(t.procs) {
		t.emitForwardDecl(t.procs[name].Name, nil, t.procs[name].Params)
	}
	for _, name := range sortedKeys(t.funcs) {
		fn := t.funcs[name]
		t.emitForwardDecl(fn.Name, &fn.ReturnType, fn.Params)
	}
	t.out.WriteString("\n")

	for _, name := range sortedKeys(t.procs) {
		if err := t.emitProc(t.procs[name]); err != nil {
			return "", err
		}
	}
	for _, name := range sortedKeys(t.funcs) {
		if err := t.emitFunc(t.funcs[name]); err != nil {
			return "", err
		}
	}

	t.out.WriteString("int main(void) {\n")
	for _, stmt := range prog.Body {
		if err := t.emitStatement(stmt, "    "); err != nil {
			return "", err
		}
	}
	t.out.WriteString("    return 0;\n}\n")
	return t.out.String(), nil
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

// sanitize maps a source identifier onto a C identifier. Hyphens (legal in
// this language's identifiers, illegal in C's) become underscores, so
// "A-B" and "A_B" map to the same C name; the result is upper-cased so it
// reads the same way the interpreter's case-insensitive identifiers do.
func sanitize(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func cType(b ast.BaseType) string {
	switch b {
	case ast.Integer:
		return "long"
	case ast.Real:
		return "double"
	case ast.Boolean:
		return "bool"
	case ast.Character:
		return "char"
	default:
		return "char *"
	}
}
