package ast

import (
	"strings"
	"testing"

	"github.com/eap-lang/eap/internal/lexer"
)

func TestProgramStringIncludesDeclarationsAndBody(t *testing.T) {
	prog := &Program{
		Token: lexer.Token{Type: lexer.ALGORITHM, Literal: "ALGORITHM"},
		Name:  "DEMO",
		Declarations: []Declaration{
			&ConstDecl{Name: "N", Value: &Literal{Token: lexer.Token{Literal: "3"}, Value: int64(3), Type: Integer}},
			&VarDecl{Name: "x", BaseType: Integer},
		},
		Body: []Statement{
			&Print{Args: []Expression{&Identifier{Name: "x"}}},
		},
	}
	s := prog.String()
	for _, want := range []string{"ALGORITHM DEMO", "N = 3;", "x: INTEGER;", "BEGIN", "END"} {
		if !strings.Contains(s, want) {
			t.Errorf("Program.String() missing %q, got:\n%s", want, s)
		}
	}
}

func TestArrayVarDeclString(t *testing.T) {
	v := &VarDecl{
		Name:     "table",
		BaseType: Real,
		Bounds: []Bound{
			{
				From: &Literal{Token: lexer.Token{Literal: "1"}, Value: int64(1), Type: Integer},
				To:   &Literal{Token: lexer.Token{Literal: "10"}, Value: int64(10), Type: Integer},
			},
		},
	}
	if !v.IsArray() {
		t.Fatal("expected IsArray() to be true for a declaration with bounds")
	}
	s := v.String()
	if !strings.Contains(s, "ARRAY[1..10] OF REAL") {
		t.Errorf("VarDecl.String() = %q, want it to contain ARRAY[1..10] OF REAL", s)
	}
}

func TestBinaryExprString(t *testing.T) {
	b := &BinaryExpr{
		Token: lexer.Token{Literal: "+"},
		Left:  &Literal{Token: lexer.Token{Literal: "1"}, Value: int64(1), Type: Integer},
		Right: &Literal{Token: lexer.Token{Literal: "2"}, Value: int64(2), Type: Integer},
	}
	if got, want := b.String(), "(1 + 2)"; got != want {
		t.Errorf("BinaryExpr.String() = %q, want %q", got, want)
	}
}
