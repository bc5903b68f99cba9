package transpile

import (
	"strings"
	"testing"

	"github.com/eap-lang/eap/internal/lexer"
	"github.com/eap-lang/eap/internal/parser"
)

func transpileSource(t *testing.T, src string) string {
	t.Helper()
	tokens, err := lexer.New(src).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	prog, err := parser.New(tokens, src).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	out, err := Transpile(prog)
	if err != nil {
		t.Fatalf("Transpile() error = %v", err)
	}
	return out
}

func TestTranspileEmitsMainAndIncludes(t *testing.T) {
	out := transpileSource(t, `
ALGORITHM T
DATA
x: INTEGER;
BEGIN
x := 1 + 2;
PRINT(x);
END`)
	for _, want := range []string{"#include <stdio.h>", "int main(void)", "return 0;"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTranspileArrayDeclarationEmitsOriginAndExtentTables(t *testing.T) {
	out := transpileSource(t, `
ALGORITHM T
DATA
a: ARRAY[5..10] OF INTEGER;
BEGIN
a[5] := 1;
END`)
	if !strings.Contains(out, "A_origin[] = {5}") {
		t.Errorf("expected an origin table for A, got:\n%s", out)
	}
	if !strings.Contains(out, "A_extent[] = {6}") {
		t.Errorf("expected an extent table for A (10-5+1=6), got:\n%s", out)
	}
	if !strings.Contains(out, "eap_offset(1, A_origin, A_extent") {
		t.Errorf("expected an index access through eap_offset, got:\n%s", out)
	}
}

func TestTranspileFunctionUsesResultSlot(t *testing.T) {
	out := transpileSource(t, `
ALGORITHM T
FUNCTION SUM(a, b): INTEGER
INTERFACE
INPUT
a, b: INTEGER;
BEGIN
SUM := a + b;
END-FUNCTION
BEGIN
END`)
	if !strings.Contains(out, "SUM_result") {
		t.Errorf("expected a SUM_result slot, got:\n%s", out)
	}
}

func TestTranspileRepeatUntilBecomesDoWhile(t *testing.T) {
	out := transpileSource(t, `
ALGORITHM T
DATA
i: INTEGER;
BEGIN
REPEAT
  i := i + 1;
UNTIL i >= 10;
END`)
	if !strings.Contains(out, "do {") || !strings.Contains(out, "} while (!(") {
		t.Errorf("expected a negated do/while translation, got:\n%s", out)
	}
}

func TestTranspilePrintDoesNotSeparateAfterEoln(t *testing.T) {
	out := transpileSource(t, `
ALGORITHM T
DATA
a, b: INTEGER;
BEGIN
a := 1;
b := 2;
PRINT(a, EOLN, b);
END`)
	if strings.Contains(out, "printf(\"\\n\");\n    printf(\" \");") {
		t.Errorf("expected no separator printed right after EOLN, got:\n%s", out)
	}
}

func TestTranspileByRefArrayElementArgumentTakesAddress(t *testing.T) {
	out := transpileSource(t, `
ALGORITHM T
DATA
a: ARRAY[1..3] OF INTEGER;
PROCEDURE BUMP(x)
INTERFACE
OUTPUT
x: INTEGER;
BEGIN
x := x + 1;
END-PROCEDURE
BEGIN
CALCULATE BUMP(a[1]);
END`)
	if !strings.Contains(out, "&A[eap_offset(1, A_origin, A_extent") {
		t.Errorf("expected an address-of array-element argument, got:\n%s", out)
	}
}

func TestTranspileNonConstantArrayBoundIsRejected(t *testing.T) {
	tokens, err := lexer.New(`
ALGORITHM T
DATA
n: INTEGER;
a: ARRAY[1..n] OF INTEGER;
BEGIN
END`).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	prog, err := parser.New(tokens, "").Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := Transpile(prog); err == nil {
		t.Fatal("expected an error for a non-constant array bound")
	}
}
