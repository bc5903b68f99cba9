package interp

import (
	"strings"
	"testing"

	"github.com/eap-lang/eap/internal/lexer"
	"github.com/eap-lang/eap/internal/parser"
	"github.com/gkampitakis/go-snaps/snaps"
)

// fixtures exercises the full reader-free pipeline (lexer, parser,
// evaluator) against a handful of complete programs and snapshots their
// stdout, the same end-to-end fixture-table shape the teacher's own
// interpreter tests use (go-dws's internal/interp/fixture_test.go).
var fixtures = []struct {
	name  string
	src   string
	stdin string
}{
	{
		name: "bilingual_keywords",
		src: `
ΑΛΓΟΡΙΘΜΟΣ ΑΘΡΟΙΣΜΑ
ΔΕΔΟΜΕΝΑ
x: ΑΚΕΡΑΙΑ;
ΑΡΧΗ
x := 2 * 3;
ΓΡΑΨΕ(x);
ΤΕΛΟΣ`,
	},
	{
		name: "nested_if_and_loop",
		src: `
ALGORITHM NESTED
DATA
i, total: INTEGER;
BEGIN
total := 0;
FOR i := 1 TO 5
  IF i MOD 2 = 0 THEN
    total := total + i;
  END-IF
END-FOR
PRINT(total);
END`,
	},
	{
		name: "recursive_function",
		src: `
ALGORITHM FACT
DATA
result: INTEGER;
FUNCTION FACTORIAL(n): INTEGER
INTERFACE
INPUT
n: INTEGER;
BEGIN
IF n <= 1 THEN
  FACTORIAL := 1;
ELSE
  FACTORIAL := n * FACTORIAL(n - 1);
END-IF
END-FUNCTION
BEGIN
result := FACTORIAL(5);
PRINT(result);
END`,
	},
}

func TestFixtures(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			tokens, err := lexer.New(fx.src).Tokenize()
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			prog, err := parser.New(tokens, fx.src).Parse()
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			var out strings.Builder
			it := New(&out, strings.NewReader(fx.stdin), fx.src, false)
			if err := it.Run(prog); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			snaps.MatchSnapshot(t, out.String())
		})
	}
}
