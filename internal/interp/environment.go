package interp

import "github.com/eap-lang/eap/pkg/ident"

// Environment is a lexically chained, case-insensitive variable scope,
// backed by ident.Map the way the teacher's own Environment wraps
// go-dws's Environment around a case-insensitive identifier map. Global
// scope is the root Environment with a nil Outer; every subroutine call
// gets a fresh Environment whose Outer points directly at root, since
// subroutine bodies see globals but never a caller's locals (spec.md §4.4).
type Environment struct {
	vars  *ident.Map[Value]
	Outer *Environment
}

// NewEnvironment creates a scope chained to outer (nil for the root scope).
func NewEnvironment(outer *Environment) *Environment {
	return &Environment{vars: ident.NewMap[Value](), Outer: outer}
}

// Define binds name in this scope, shadowing any outer binding.
func (e *Environment) Define(name string, v Value) {
	e.vars.Set(name, v)
}

// Get resolves name by walking outward from this scope.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.Outer {
		if v, ok := env.vars.Get(name); ok {
			return v, true
		}
	}
	return Value{}, false
}

// SetExisting assigns to the nearest scope in the chain that already binds
// name, leaving the binding in place. It reports whether such a scope was
// found.
func (e *Environment) SetExisting(name string, v Value) bool {
	for env := e; env != nil; env = env.Outer {
		if _, ok := env.vars.Get(name); ok {
			env.vars.Set(name, v)
			return true
		}
	}
	return false
}

// Assign stores v under name: it rebinds an existing variable anywhere in
// the chain, or, if name is unbound everywhere, defines a brand new one in
// the root scope (spec.md §4.4's implicit-declaration-by-assignment rule).
func (e *Environment) Assign(name string, v Value) {
	if e.SetExisting(name, v) {
		return
	}
	e.root().Define(name, v)
}

// root walks outward to the outermost (global) scope.
func (e *Environment) root() *Environment {
	env := e
	for env.Outer != nil {
		env = env.Outer
	}
	return env
}
