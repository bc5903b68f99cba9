// Command eap runs or transpiles an EAP Pseudocode source file. It wires
// together, in order, the encoding-normalizing reader, the lexer, the
// parser, and either the tree-walking evaluator or the C transpiler
// (spec.md §6), the same pipeline shape the teacher's own dwscript command
// wires its lexer/parser/interpreter stages through (go-dws's
// cmd/dwscript/cmd/root.go).
package main

import (
	"fmt"
	"os"

	"github.com/eap-lang/eap/cmd/eap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
