package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/eap-lang/eap/internal/ast"
	cerrors "github.com/eap-lang/eap/internal/errors"
	"github.com/eap-lang/eap/internal/lexer"
	"github.com/eap-lang/eap/pkg/ident"
)

// Interpreter evaluates one Program against standard input/output.
type Interpreter struct {
	out    io.Writer
	words  *bufio.Scanner
	debug  bool
	source string

	funcs map[string]*ast.FuncDecl
	procs map[string]*ast.ProcDecl
	root  *Environment
}

// New creates an Interpreter. source is kept only to render source-line
// context in runtime diagnostics (internal/errors.CompilerError.Format).
func New(out io.Writer, in io.Reader, source string, debug bool) *Interpreter {
	words := bufio.NewScanner(in)
	words.Split(bufio.ScanWords)
	return &Interpreter{
		out:    out,
		words:  words,
		debug:  debug,
		source: source,
		funcs:  make(map[string]*ast.FuncDecl),
		procs:  make(map[string]*ast.ProcDecl),
	}
}

// debugf writes a trace line to standard error when debug mode is on, the
// same stderr-only, flag-gated convention the CLI's --debug switch follows
// for the lexer and parser stages.
func (it *Interpreter) debugf(format string, args ...interface{}) {
	if it.debug {
		fmt.Fprintf(os.Stderr, "[interp] "+format+"\n", args...)
	}
}

// Run evaluates prog in four steps (spec.md §4.4): seed the root scope with
// the end-of-line constant, evaluate constants and register every
// subroutine by name, evaluate variable and array declarations, then
// execute the main body.
func (it *Interpreter) Run(prog *ast.Program) error {
	it.root = NewEnvironment(nil)
	it.root.Define(lexer.EndOfLineConstant, StringVal("\n"))

	for _, decl := range prog.Declarations {
		switch d := decl.(type) {
		case *ast.ConstDecl:
			v, err := it.evalExpr(d.Value, it.root)
			if err != nil {
				return err
			}
			it.root.Define(d.Name, v)
		case *ast.FuncDecl:
			it.funcs[ident.Normalize(d.Name)] = d
		case *ast.ProcDecl:
			it.procs[ident.Normalize(d.Name)] = d
		}
	}

	for _, decl := range prog.Declarations {
		if v, ok := decl.(*ast.VarDecl); ok {
			if err := it.declareVar(v, it.root); err != nil {
				return err
			}
		}
	}

	return it.execBlock(prog.Body, it.root)
}

// declareVar binds a fresh zero-valued scalar, or a freshly allocated empty
// Array, into env.
func (it *Interpreter) declareVar(v *ast.VarDecl, env *Environment) error {
	if !v.IsArray() {
		env.Define(v.Name, ZeroValue(v.BaseType))
		return nil
	}
	dims := make([]Dimension, len(v.Bounds))
	for i, b := range v.Bounds {
		from, err := it.evalInt(b.From, env)
		if err != nil {
			return err
		}
		to, err := it.evalInt(b.To, env)
		if err != nil {
			return err
		}
		dims[i] = Dimension{From: from, To: to}
	}
	env.Define(v.Name, ArrayVal(NewArray(dims)))
	return nil
}

func (it *Interpreter) execBlock(stmts []ast.Statement, env *Environment) error {
	for _, s := range stmts {
		if err := it.execStmt(s, env); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execStmt(stmt ast.Statement, env *Environment) error {
	switch s := stmt.(type) {
	case *ast.Assignment:
		v, err := it.evalExpr(s.Value, env)
		if err != nil {
			return err
		}
		return it.assignTo(s.Target, v, env)
	case *ast.Print:
		return it.execPrint(s, env)
	case *ast.Read:
		return it.execRead(s, env)
	case *ast.If:
		cond, err := it.evalExpr(s.Cond, env)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return it.execBlock(s.Then, env)
		}
		return it.execBlock(s.Else, env)
	case *ast.For:
		return it.execFor(s, env)
	case *ast.While:
		return it.execWhile(s, env)
	case *ast.CallStatement:
		_, err := it.call(s.Call, env)
		return err
	default:
		return cerrors.NewRuntime(stmt.Pos(), it.source, "unsupported statement")
	}
}

func (it *Interpreter) execPrint(s *ast.Print, env *Environment) error {
	var b strings.Builder
	wroteValue := false
	for _, arg := range s.Args {
		if isEolnRef(arg) {
			b.WriteString("\n")
			wroteValue = false
			continue
		}
		v, err := it.evalExpr(arg, env)
		if err != nil {
			return err
		}
		if wroteValue {
			b.WriteString(" ")
		}
		b.WriteString(v.Format())
		wroteValue = true
	}
	_, err := io.WriteString(it.out, b.String())
	return err
}

func isEolnRef(e ast.Expression) bool {
	id, ok := e.(*ast.Identifier)
	return ok && lexer.IsEndOfLineConstant(id.Name)
}

// execRead assigns one value per target, inferring each value's kind from
// the shape of the next whitespace-delimited input token: an integer
// literal, a real literal, or else a bare string. Input
// exhausted before a target is satisfied assigns integer -1 (spec.md §4.4).
func (it *Interpreter) execRead(s *ast.Read, env *Environment) error {
	for _, target := range s.Targets {
		v := it.readOneValue()
		if err := it.assignTo(target, v, env); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) readOneValue() Value {
	if !it.words.Scan() {
		return IntVal(-1)
	}
	tok := it.words.Text()
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return IntVal(n)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return RealVal(f)
	}
	return StringVal(tok)
}

func (it *Interpreter) execFor(s *ast.For, env *Environment) error {
	start, err := it.evalInt(s.Start, env)
	if err != nil {
		return err
	}
	end, err := it.evalInt(s.End, env)
	if err != nil {
		return err
	}
	step := int64(1)
	if s.Step != nil {
		step, err = it.evalInt(s.Step, env)
		if err != nil {
			return err
		}
	}
	// A loop variable declared nowhere else is created here, in the scope
	// the loop runs in (not the root scope a plain assignment would use).
	setVar := func(i int64) {
		if !env.SetExisting(s.Var, IntVal(i)) {
			env.Define(s.Var, IntVal(i))
		}
	}
	for i := start; (step >= 0 && i <= end) || (step < 0 && i >= end); i += step {
		if step == 0 {
			// A zero step never advances; run the body exactly once and
			// stop rather than loop forever.
			setVar(i)
			if err := it.execBlock(s.Body, env); err != nil {
				return err
			}
			break
		}
		setVar(i)
		if err := it.execBlock(s.Body, env); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execWhile(s *ast.While, env *Environment) error {
	if s.IsUntil {
		for {
			if err := it.execBlock(s.Body, env); err != nil {
				return err
			}
			cond, err := it.evalExpr(s.Cond, env)
			if err != nil {
				return err
			}
			if cond.Truthy() {
				return nil
			}
		}
	}
	for {
		cond, err := it.evalExpr(s.Cond, env)
		if err != nil {
			return err
		}
		if !cond.Truthy() {
			return nil
		}
		if err := it.execBlock(s.Body, env); err != nil {
			return err
		}
	}
}

// assignTo stores v into target, which is either an *ast.Identifier (a
// plain rebind-or-create, spec.md §4.4) or an *ast.ArrayAccess (an indexed
// write against the array's own bounds).
func (it *Interpreter) assignTo(target ast.Expression, v Value, env *Environment) error {
	switch t := target.(type) {
	case *ast.Identifier:
		env.Assign(t.Name, v)
		return nil
	case *ast.ArrayAccess:
		return it.assignArrayElement(t, v, env)
	default:
		return cerrors.NewRuntime(target.Pos(), it.source, "invalid assignment target")
	}
}

func (it *Interpreter) assignArrayElement(t *ast.ArrayAccess, v Value, env *Environment) error {
	arrVal, ok := env.Get(t.Name)
	if !ok || arrVal.Kind != KindArray {
		return cerrors.NewRuntime(t.Pos(), it.source, "%q is not an array", t.Name)
	}
	indices, err := it.evalIndices(t.Indices, env)
	if err != nil {
		return err
	}
	if err := arrVal.Arr.Set(indices, v); err != nil {
		return cerrors.NewRuntime(t.Pos(), it.source, "%s", err)
	}
	return nil
}

func (it *Interpreter) evalIndices(exprs []ast.Expression, env *Environment) ([]int64, error) {
	indices := make([]int64, len(exprs))
	for i, e := range exprs {
		v, err := it.evalInt(e, env)
		if err != nil {
			return nil, err
		}
		indices[i] = v
	}
	return indices, nil
}

func (it *Interpreter) evalInt(e ast.Expression, env *Environment) (int64, error) {
	v, err := it.evalExpr(e, env)
	if err != nil {
		return 0, err
	}
	switch v.Kind {
	case KindInt:
		return v.Int, nil
	case KindReal:
		return int64(v.Real), nil
	default:
		return 0, cerrors.NewRuntime(e.Pos(), it.source, "expected a numeric value, found %s", v.Kind)
	}
}
