// Package errors formats the two diagnostic registers that carry a source
// position: syntax errors from the parser and runtime errors from the
// evaluator (spec.md §7). File-level failures that precede parsing — a
// missing file, an unlexable byte, an unterminated string — are plain
// descriptive sentences returned as ordinary errors from reader and lexer
// and do not go through this package.
//
// The shape follows the teacher's own CompilerError (go-dws's
// internal/errors/errors.go): a message, a source position, and a
// source-line-plus-caret rendering for terminal output.
package errors

import (
	"fmt"
	"strings"

	"github.com/eap-lang/eap/internal/lexer"
)

// Kind selects the diagnostic register a CompilerError is reported under.
type Kind int

const (
	Syntax Kind = iota
	Runtime
)

func (k Kind) label() string {
	if k == Runtime {
		return "Runtime Error"
	}
	return "Syntax Error"
}

// CompilerError is a positioned diagnostic with enough context to render a
// source line and a caret pointing at the offending column. History holds
// the literal text of the tokens consumed immediately before the error, in
// source order, for diagnosing unexpected-token failures (spec.md §4.3,
// §7).
type CompilerError struct {
	Kind    Kind
	Message string
	Pos     lexer.Position
	Source  string
	History []string
}

// NewSyntax builds a parser-stage diagnostic with no token history.
func NewSyntax(pos lexer.Position, source, format string, args ...interface{}) *CompilerError {
	return NewSyntaxWithHistory(pos, source, nil, format, args...)
}

// NewSyntaxWithHistory builds a parser-stage diagnostic carrying the
// literal text of the tokens consumed right before the error, oldest
// first.
func NewSyntaxWithHistory(pos lexer.Position, source string, history []string, format string, args ...interface{}) *CompilerError {
	return &CompilerError{Kind: Syntax, Message: fmt.Sprintf(format, args...), Pos: pos, Source: source, History: history}
}

// NewRuntime builds an evaluator-stage diagnostic.
func NewRuntime(pos lexer.Position, source, format string, args ...interface{}) *CompilerError {
	return &CompilerError{Kind: Runtime, Message: fmt.Sprintf(format, args...), Pos: pos, Source: source}
}

// Error implements error with a single-line rendering: "<Kind> at <pos>:
// <message>".
func (e *CompilerError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind.label(), e.Pos, e.Message)
}

// Format renders the full diagnostic: the single-line message followed by
// the offending source line and a caret under the offending column.
func (e *CompilerError) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", e.Kind.label(), e.Message)
	fmt.Fprintf(&b, "  --> line %d, column %d\n", e.Pos.Line, e.Pos.Column)
	if line, ok := getSourceLine(e.Source, e.Pos.Line); ok {
		fmt.Fprintf(&b, "  %s\n", line)
		fmt.Fprintf(&b, "  %s^\n", strings.Repeat(" ", caretOffset(e.Pos.Column)))
	}
	if len(e.History) > 0 {
		fmt.Fprintf(&b, "  preceding tokens: %s\n", strings.Join(e.History, " "))
	}
	return b.String()
}

func caretOffset(column int) int {
	if column <= 1 {
		return 0
	}
	return column - 1
}

func getSourceLine(source string, line int) (string, bool) {
	if line < 1 {
		return "", false
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return "", false
	}
	return lines[line-1], true
}
