// Package cmd holds the eap command-line program, built on Cobra the way
// the teacher's own CLI is (go-dws's cmd/dwscript/cmd).
package cmd

import (
	"fmt"
	"os"

	"github.com/eap-lang/eap/internal/ast"
	cerrors "github.com/eap-lang/eap/internal/errors"
	"github.com/eap-lang/eap/internal/interp"
	"github.com/eap-lang/eap/internal/lexer"
	"github.com/eap-lang/eap/internal/parser"
	"github.com/eap-lang/eap/internal/reader"
	"github.com/eap-lang/eap/internal/transpile"
	"github.com/spf13/cobra"
)

var (
	debug     bool
	transpileOut bool
)

// rootCmd both defines the top-level "eap" command and, having no
// subcommands of its own, is the command that actually runs: "eap FILE"
// runs the interpreter, "eap --transpile FILE" prints generated C instead.
var rootCmd = &cobra.Command{
	Use:           "eap FILE",
	Short:         "Run or transpile an EAP Pseudocode program",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(c *cobra.Command, args []string) error {
		return runFile(args[0])
	},
}

func init() {
	rootCmd.Flags().BoolVar(&debug, "debug", false, "trace lexing, parsing, and evaluation to standard error")
	rootCmd.Flags().BoolVar(&transpileOut, "transpile", false, "emit a C translation instead of running the program")
}

// Execute runs the command and returns any error. main exits 1 and prints
// it; a successful run, or a program that completed with its own non-zero
// logic, both return nil here (spec.md §6's exit-code contract covers only
// load/parse/runtime failures, not program content).
func Execute() error {
	return rootCmd.Execute()
}

func runFile(path string) error {
	source, err := reader.ReadFile(path)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	tokens, err := l.Tokenize()
	if err != nil {
		return fmt.Errorf("lexical error: %w", err)
	}
	if debug {
		fmt.Fprintf(os.Stderr, "[lexer] %d tokens\n", len(tokens))
	}

	p := parser.New(tokens, source)
	prog, err := p.Parse()
	if err != nil {
		return reportParse(err)
	}
	if debug {
		fmt.Fprintf(os.Stderr, "[parser] program %q, %d declaration(s), %d body statement(s)\n",
			prog.Name, len(prog.Declarations), len(prog.Body))
	}

	if transpileOut {
		return runTranspile(prog)
	}
	return runInterp(prog, source)
}

func reportParse(err error) error {
	if ce, ok := err.(*cerrors.CompilerError); ok {
		return fmt.Errorf("%s", ce.Format())
	}
	return err
}

func runInterp(prog *ast.Program, source string) error {
	it := interp.New(os.Stdout, os.Stdin, source, debug)
	if err := it.Run(prog); err != nil {
		if ce, ok := err.(*cerrors.CompilerError); ok {
			return fmt.Errorf("%s", ce.Format())
		}
		return err
	}
	return nil
}

func runTranspile(prog *ast.Program) error {
	out, err := transpile.Transpile(prog)
	if err != nil {
		return err
	}
	_, err = fmt.Print(out)
	return err
}
