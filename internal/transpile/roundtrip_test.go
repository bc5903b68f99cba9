package transpile

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eap-lang/eap/internal/interp"
	"github.com/eap-lang/eap/internal/lexer"
	"github.com/eap-lang/eap/internal/parser"
)

// findCC locates a C compiler the way the teacher's own integration tests
// locate a "go build" toolchain before shelling out to it.
func findCC(t *testing.T) string {
	t.Helper()
	for _, name := range []string{"cc", "gcc", "clang"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	t.Skip("no C compiler on PATH, skipping transpile round-trip test")
	return ""
}

// TestTranspileRunInterpretRoundTrip checks spec.md §8 property 7: running
// a program directly through the interpreter and running its transpiled-
// then-compiled C translation must produce identical stdout.
func TestTranspileRunInterpretRoundTrip(t *testing.T) {
	cc := findCC(t)

	programs := []struct {
		name string
		src  string
	}{
		{
			name: "arithmetic_and_separators",
			src: `
ALGORITHM T
DATA
a, b: INTEGER;
BEGIN
a := 3;
b := 4;
PRINT(a, b);
PRINT(EOLN);
PRINT(a, EOLN, b);
END`,
		},
		{
			name: "array_and_loop",
			src: `
ALGORITHM T
DATA
i: INTEGER;
a: ARRAY[5..7] OF INTEGER;
BEGIN
FOR i := 5 TO 7
  a[i] := i * i;
END-FOR
PRINT(a[5]);
PRINT(EOLN);
PRINT(a[6]);
PRINT(EOLN);
PRINT(a[7]);
END`,
		},
		{
			name: "by_ref_array_element",
			src: `
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
a[2] := 10;
CALCULATE BUMP(a[2]);
PRINT(a[2]);
END`,
		},
		{
			name: "repeat_until",
			src: `
ALGORITHM T
DATA
i: INTEGER;
BEGIN
i := 1;
REPEAT
  PRINT(i);
  PRINT(EOLN);
  i := i + 1;
UNTIL i > 3;
END`,
		},
	}

	for _, p := range programs {
		t.Run(p.name, func(t *testing.T) {
			tokens, err := lexer.New(p.src).Tokenize()
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			prog, err := parser.New(tokens, p.src).Parse()
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			var interpOut strings.Builder
			it := interp.New(&interpOut, strings.NewReader(""), p.src, false)
			if err := it.Run(prog); err != nil {
				t.Fatalf("interp.Run() error = %v", err)
			}

			cSource, err := Transpile(prog)
			if err != nil {
				t.Fatalf("Transpile() error = %v", err)
			}

			dir := t.TempDir()
			cPath := filepath.Join(dir, "program.c")
			if err := os.WriteFile(cPath, []byte(cSource), 0o644); err != nil {
				t.Fatalf("failed to write generated C: %v", err)
			}
			binPath := filepath.Join(dir, "program")
			build := exec.Command(cc, cPath, "-o", binPath)
			if out, err := build.CombinedOutput(); err != nil {
				t.Fatalf("compiling generated C failed: %v\n%s\n%s", err, cSource, out)
			}

			run := exec.Command(binPath)
			cOut, err := run.Output()
			if err != nil {
				t.Fatalf("running compiled program failed: %v", err)
			}

			if got, want := string(cOut), interpOut.String(); got != want {
				t.Errorf("transpiled program output = %q, want %q (interpreter output)\nC source:\n%s", got, want, cSource)
			}
		})
	}
}
