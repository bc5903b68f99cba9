package errors

import (
	"strings"
	"testing"

	"github.com/eap-lang/eap/internal/lexer"
)

func TestFormatIncludesSourceLineAndCaret(t *testing.T) {
	src := "ALGORITHM T\nBEGIN\nx := ;\nEND"
	err := NewRuntime(lexer.Position{Line: 3, Column: 6}, src, "unexpected token")
	out := err.Format()
	for _, want := range []string{"Runtime Error: unexpected token", "x := ;", "^"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q, got:\n%s", want, out)
		}
	}
}

func TestFormatIncludesTokenHistoryWhenPresent(t *testing.T) {
	src := "ALGORITHM T\nBEGIN\nx := ;\nEND"
	err := NewSyntaxWithHistory(lexer.Position{Line: 3, Column: 6}, src, []string{"x", ":="}, "unexpected token %q", ";")
	out := err.Format()
	if !strings.Contains(out, "preceding tokens: x :=") {
		t.Errorf("Format() missing token history, got:\n%s", out)
	}
}

func TestFormatOmitsHistoryLineWhenEmpty(t *testing.T) {
	err := NewSyntax(lexer.Position{Line: 1, Column: 1}, "ALGORITHM T", "boom")
	if strings.Contains(err.Format(), "preceding tokens") {
		t.Errorf("Format() should not mention token history when none was recorded, got:\n%s", err.Format())
	}
}

func TestErrorLabelsDistinguishSyntaxAndRuntime(t *testing.T) {
	syn := NewSyntax(lexer.Position{Line: 1, Column: 1}, "", "bad token")
	run := NewRuntime(lexer.Position{Line: 1, Column: 1}, "", "bad value")
	if !strings.HasPrefix(syn.Error(), "Syntax Error") {
		t.Errorf("syntax Error() = %q, want Syntax Error prefix", syn.Error())
	}
	if !strings.HasPrefix(run.Error(), "Runtime Error") {
		t.Errorf("runtime Error() = %q, want Runtime Error prefix", run.Error())
	}
}
